package services

import (
	"context"

	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	"github.com/fintrackpro/fintrack_app/internal/core/session"
)

// ReconcilerSvcFacade is the state reconciliation engine: every mutation
// updates the session's in-memory collections synchronously and schedules the
// minimal set of persistence writes asynchronously. Persistence failures are
// logged, never surfaced back into memory.
type ReconcilerSvcFacade interface {
	// ReplaceAccounts diffs next against the current account collection by
	// ID using structural equality: changed or added entries schedule an
	// upsert, removed entries schedule a delete. It returns next as the new
	// authoritative collection.
	ReplaceAccounts(ctx context.Context, s *session.Session, next []domain.Account) []domain.Account

	// InsertTransaction validates the referenced account(s), prepends the
	// transaction to the sequence, applies the balance cascade in one
	// in-memory step, and schedules the transaction upsert plus the partial
	// balance upsert(s). On validation failure nothing changes.
	// It returns the updated transaction sequence and account collection.
	InsertTransaction(ctx context.Context, s *session.Session, txn domain.Transaction) ([]domain.Transaction, []domain.Account, error)

	// ReplaceStocks applies the same diff policy as ReplaceAccounts; stock
	// changes never cascade to other entities.
	ReplaceStocks(ctx context.Context, s *session.Session, next []domain.StockHolding) []domain.StockHolding

	// SeedIfEmpty writes the default dataset iff the user's store is empty
	// and reports whether seeding occurred.
	SeedIfEmpty(ctx context.Context, s *session.Session) (bool, error)

	// Load replaces the session collections with the store's current content.
	Load(ctx context.Context, s *session.Session) error
}
