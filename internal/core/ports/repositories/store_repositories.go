package repositories

import (
	"context"

	"github.com/fintrackpro/fintrack_app/internal/core/domain"
)

// Kind names a per-user sub-collection in the document store.
type Kind string

const (
	KindAccount     Kind = "accounts"
	KindTransaction Kind = "transactions"
	KindStock       Kind = "stocks"
)

// Snapshot is the full financial dataset of one user as read from the store.
type Snapshot struct {
	Accounts     []domain.Account
	Transactions []domain.Transaction
	Stocks       []domain.StockHolding
}

// StoreReader defines read operations against the per-user document store.
type StoreReader interface {
	// FetchAll loads every document of the user's three sub-collections.
	// Transactions are returned sorted descending by date.
	FetchAll(ctx context.Context, userID string) (*Snapshot, error)
}

// StoreWriter defines write operations against the per-user document store.
// Writes to different documents carry no cross-operation atomicity guarantee;
// the seed batch is the single exception.
type StoreWriter interface {
	// SeedIfEmpty writes the seed snapshot as one all-or-nothing batch if and
	// only if the user's account sub-collection is empty. It returns whether
	// seeding occurred.
	SeedIfEmpty(ctx context.Context, userID string, seed Snapshot) (bool, error)

	// Upsert writes the full document for one entity.
	Upsert(ctx context.Context, userID string, kind Kind, entityID string, doc any) error

	// UpsertPartial merges the given fields into an existing document.
	UpsertPartial(ctx context.Context, userID string, kind Kind, entityID string, fields map[string]any) error

	// Delete removes one document. Deleting a missing document is not an error.
	Delete(ctx context.Context, userID string, kind Kind, entityID string) error
}

// DocumentStore combines all document store operations. The store is a
// durable mirror only; the reconciler's in-memory collections stay
// authoritative for the active session.
type DocumentStore interface {
	StoreReader
	StoreWriter
}

// UserRepository persists the top-level per-user profile record.
type UserRepository interface {
	// SaveUser upserts the user's profile document.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a profile, or apperrors.ErrNotFound.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}
