// Package session holds the per-login session context. The session owns the
// authoritative in-memory copies of the user's collections; the document
// store is only a durable mirror written behind it.
package session

import (
	"sync"

	"github.com/fintrackpro/fintrack_app/internal/core/domain"
)

// Session is created on login and discarded on logout. All core mutation
// operations take it explicitly; there is no ambient session state.
//
// Mutation entry points run to completion under the session lock, which gives
// the single-logical-writer guarantee: one mutation finishes against memory
// before the next one starts.
type Session struct {
	mu sync.Mutex

	User domain.User

	Accounts     []domain.Account
	Transactions []domain.Transaction
	Stocks       []domain.StockHolding

	// LoadFailed marks a session whose initial fetch failed. The session
	// stays logged in with empty collections; a reload retries.
	LoadFailed bool

	// Seeded records whether this login wrote the first-time seed dataset.
	Seeded bool
}

// New creates a session for the given identity with empty collections.
func New(user domain.User) *Session {
	return &Session{User: user}
}

// Lock acquires the session's mutation lock.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session's mutation lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// View returns copies of the three collections, taken under the lock, for
// read-only consumers such as the aggregation handlers.
func (s *Session) View() ([]domain.Account, []domain.Transaction, []domain.StockHolding) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := make([]domain.Account, len(s.Accounts))
	copy(accounts, s.Accounts)
	transactions := make([]domain.Transaction, len(s.Transactions))
	copy(transactions, s.Transactions)
	stocks := make([]domain.StockHolding, len(s.Stocks))
	copy(stocks, s.Stocks)

	return accounts, transactions, stocks
}
