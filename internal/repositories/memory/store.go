// Package memory provides a map-backed document store used by tests and
// local development without a database.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/fintrackpro/fintrack_app/internal/apperrors"
	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackpro/fintrack_app/internal/core/ports/repositories"
)

// Store keeps every document as raw JSON, mirroring how the durable store
// holds serialized records. It implements both the document store and the
// user repository ports.
type Store struct {
	mu    sync.RWMutex
	users map[string]domain.User
	docs  map[string]map[portsrepo.Kind]map[string]json.RawMessage
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users: make(map[string]domain.User),
		docs:  make(map[string]map[portsrepo.Kind]map[string]json.RawMessage),
	}
}

var (
	_ portsrepo.DocumentStore  = (*Store)(nil)
	_ portsrepo.UserRepository = (*Store)(nil)
)

// SaveUser upserts the profile record.
func (s *Store) SaveUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.UserID] = user
	return nil
}

// FindUserByID retrieves a profile record.
func (s *Store) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

// SeedIfEmpty writes the seed snapshot as one batch iff the user's account
// sub-collection is empty. The whole batch lands under a single lock
// acquisition, giving the all-or-nothing guarantee of the seed write.
func (s *Store) SeedIfEmpty(_ context.Context, userID string, seed portsrepo.Snapshot) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.docs[userID][portsrepo.KindAccount]) > 0 {
		return false, nil
	}

	for _, acc := range seed.Accounts {
		if err := s.putLocked(userID, portsrepo.KindAccount, acc.AccountID, acc); err != nil {
			return false, err
		}
	}
	for _, txn := range seed.Transactions {
		if err := s.putLocked(userID, portsrepo.KindTransaction, txn.TransactionID, txn); err != nil {
			return false, err
		}
	}
	for _, st := range seed.Stocks {
		if err := s.putLocked(userID, portsrepo.KindStock, st.StockID, st); err != nil {
			return false, err
		}
	}
	return true, nil
}

// FetchAll loads the user's three sub-collections. Transactions come back
// sorted descending by date.
func (s *Store) FetchAll(_ context.Context, userID string) (*portsrepo.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &portsrepo.Snapshot{
		Accounts:     []domain.Account{},
		Transactions: []domain.Transaction{},
		Stocks:       []domain.StockHolding{},
	}

	for _, raw := range s.docs[userID][portsrepo.KindAccount] {
		var acc domain.Account
		if err := json.Unmarshal(raw, &acc); err != nil {
			return nil, fmt.Errorf("failed to decode account document: %w", err)
		}
		snap.Accounts = append(snap.Accounts, acc)
	}
	for _, raw := range s.docs[userID][portsrepo.KindTransaction] {
		var txn domain.Transaction
		if err := json.Unmarshal(raw, &txn); err != nil {
			return nil, fmt.Errorf("failed to decode transaction document: %w", err)
		}
		snap.Transactions = append(snap.Transactions, txn)
	}
	for _, raw := range s.docs[userID][portsrepo.KindStock] {
		var st domain.StockHolding
		if err := json.Unmarshal(raw, &st); err != nil {
			return nil, fmt.Errorf("failed to decode stock document: %w", err)
		}
		snap.Stocks = append(snap.Stocks, st)
	}

	sort.Slice(snap.Accounts, func(i, j int) bool {
		return snap.Accounts[i].AccountID < snap.Accounts[j].AccountID
	})
	sort.Slice(snap.Transactions, func(i, j int) bool {
		return snap.Transactions[i].Date.After(snap.Transactions[j].Date)
	})
	sort.Slice(snap.Stocks, func(i, j int) bool {
		return snap.Stocks[i].StockID < snap.Stocks[j].StockID
	})
	return snap, nil
}

// Upsert writes the full document for one entity.
func (s *Store) Upsert(_ context.Context, userID string, kind portsrepo.Kind, entityID string, doc any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putLocked(userID, kind, entityID, doc)
}

// UpsertPartial merges fields into the stored document, creating it when
// missing (matching a merge-write against a document store).
func (s *Store) UpsertPartial(_ context.Context, userID string, kind portsrepo.Kind, entityID string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := make(map[string]any)
	if raw, ok := s.docs[userID][kind][entityID]; ok {
		if err := json.Unmarshal(raw, &merged); err != nil {
			return fmt.Errorf("failed to decode document for partial update: %w", err)
		}
	}
	for k, v := range fields {
		merged[k] = v
	}
	return s.putLocked(userID, kind, entityID, merged)
}

// Delete removes one document. Missing documents are not an error.
func (s *Store) Delete(_ context.Context, userID string, kind portsrepo.Kind, entityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs[userID][kind], entityID)
	return nil
}

// Count returns the number of documents in one sub-collection. Test helper.
func (s *Store) Count(userID string, kind portsrepo.Kind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs[userID][kind])
}

func (s *Store) putLocked(userID string, kind portsrepo.Kind, entityID string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if s.docs[userID] == nil {
		s.docs[userID] = make(map[portsrepo.Kind]map[string]json.RawMessage)
	}
	if s.docs[userID][kind] == nil {
		s.docs[userID][kind] = make(map[string]json.RawMessage)
	}
	s.docs[userID][kind][entityID] = raw
	return nil
}
