package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackpro/fintrack_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDocumentStore persists per-user documents in a single JSONB table keyed
// by (user_id, kind, entity_id). The layout mirrors a namespaced document
// store: one row per entity, the serialized record in the doc column.
type PgxDocumentStore struct {
	pool *pgxpool.Pool
}

// NewDocumentStore creates the PostgreSQL-backed document store.
func NewDocumentStore(pool *pgxpool.Pool) *PgxDocumentStore {
	return &PgxDocumentStore{pool: pool}
}

var _ portsrepo.DocumentStore = (*PgxDocumentStore)(nil)

// SeedIfEmpty writes the seed snapshot inside one transaction iff the user's
// account sub-collection is empty. This is the only multi-document write with
// an atomicity guarantee.
func (r *PgxDocumentStore) SeedIfEmpty(ctx context.Context, userID string, seed portsrepo.Snapshot) (bool, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var hasAccounts bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM documents WHERE user_id = $1 AND kind = $2)`,
		userID, portsrepo.KindAccount,
	).Scan(&hasAccounts)
	if err != nil {
		return false, fmt.Errorf("failed to check for existing accounts: %w", err)
	}
	if hasAccounts {
		return false, nil
	}

	batch := &pgx.Batch{}
	for _, acc := range seed.Accounts {
		if err := queueInsert(batch, userID, portsrepo.KindAccount, acc.AccountID, acc); err != nil {
			return false, err
		}
	}
	for _, txn := range seed.Transactions {
		if err := queueInsert(batch, userID, portsrepo.KindTransaction, txn.TransactionID, txn); err != nil {
			return false, err
		}
	}
	for _, st := range seed.Stocks {
		if err := queueInsert(batch, userID, portsrepo.KindStock, st.StockID, st); err != nil {
			return false, err
		}
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return false, fmt.Errorf("failed to write seed batch: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit seed batch: %w", err)
	}
	return true, nil
}

// FetchAll loads every document of the user's three sub-collections.
// Transactions are sorted descending by date.
func (r *PgxDocumentStore) FetchAll(ctx context.Context, userID string) (*portsrepo.Snapshot, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT kind, doc FROM documents WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	snap := &portsrepo.Snapshot{
		Accounts:     []domain.Account{},
		Transactions: []domain.Transaction{},
		Stocks:       []domain.StockHolding{},
	}

	for rows.Next() {
		var kind string
		var doc []byte
		if err := rows.Scan(&kind, &doc); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		switch portsrepo.Kind(kind) {
		case portsrepo.KindAccount:
			var acc domain.Account
			if err := json.Unmarshal(doc, &acc); err != nil {
				return nil, fmt.Errorf("failed to decode account document: %w", err)
			}
			snap.Accounts = append(snap.Accounts, acc)
		case portsrepo.KindTransaction:
			var txn domain.Transaction
			if err := json.Unmarshal(doc, &txn); err != nil {
				return nil, fmt.Errorf("failed to decode transaction document: %w", err)
			}
			snap.Transactions = append(snap.Transactions, txn)
		case portsrepo.KindStock:
			var st domain.StockHolding
			if err := json.Unmarshal(doc, &st); err != nil {
				return nil, fmt.Errorf("failed to decode stock document: %w", err)
			}
			snap.Stocks = append(snap.Stocks, st)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate document rows: %w", err)
	}

	sort.Slice(snap.Transactions, func(i, j int) bool {
		return snap.Transactions[i].Date.After(snap.Transactions[j].Date)
	})
	return snap, nil
}

// Upsert writes the full document for one entity.
func (r *PgxDocumentStore) Upsert(ctx context.Context, userID string, kind portsrepo.Kind, entityID string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO documents (user_id, kind, entity_id, doc, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id, kind, entity_id)
		DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		userID, kind, entityID, raw)
	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}
	return nil
}

// UpsertPartial merges fields into the stored document (JSONB merge),
// creating the document when it does not exist yet.
func (r *PgxDocumentStore) UpsertPartial(ctx context.Context, userID string, kind portsrepo.Kind, entityID string, fields map[string]any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode partial document: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO documents (user_id, kind, entity_id, doc, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id, kind, entity_id)
		DO UPDATE SET doc = documents.doc || EXCLUDED.doc, updated_at = now()`,
		userID, kind, entityID, raw)
	if err != nil {
		return fmt.Errorf("failed to merge document fields: %w", err)
	}
	return nil
}

// Delete removes one document. Deleting a missing document is not an error.
func (r *PgxDocumentStore) Delete(ctx context.Context, userID string, kind portsrepo.Kind, entityID string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM documents WHERE user_id = $1 AND kind = $2 AND entity_id = $3`,
		userID, kind, entityID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

func queueInsert(batch *pgx.Batch, userID string, kind portsrepo.Kind, entityID string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode seed document: %w", err)
	}
	batch.Queue(`
		INSERT INTO documents (user_id, kind, entity_id, doc, updated_at)
		VALUES ($1, $2, $3, $4, now())`,
		userID, kind, entityID, raw)
	return nil
}
