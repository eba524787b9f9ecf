package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrackpro/fintrack_app/internal/apperrors"
	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackpro/fintrack_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackpro/fintrack_app/internal/core/ports/services"
	"github.com/fintrackpro/fintrack_app/internal/core/session"
	"github.com/fintrackpro/fintrack_app/internal/middleware"
	"github.com/fintrackpro/fintrack_app/internal/seed"
	"github.com/fintrackpro/fintrack_app/internal/syncqueue"
	"github.com/fintrackpro/fintrack_app/internal/utils/accounting"
	"github.com/google/uuid"
)

// reconcilerService keeps the session's in-memory collections and the
// document store consistent. Mutations are synchronous against memory;
// the resulting persistence intents go through the sync queue and are never
// awaited.
type reconcilerService struct {
	store portsrepo.DocumentStore
	queue syncqueue.Scheduler
}

// NewReconcilerService creates the reconciliation engine.
func NewReconcilerService(store portsrepo.DocumentStore, queue syncqueue.Scheduler) portssvc.ReconcilerSvcFacade {
	return &reconcilerService{store: store, queue: queue}
}

var _ portssvc.ReconcilerSvcFacade = (*reconcilerService)(nil)

// ReplaceAccounts implements the diff-and-upsert policy for the account
// collection. Comparison is structural per entity, so handing back the exact
// current collection schedules zero writes.
func (s *reconcilerService) ReplaceAccounts(ctx context.Context, sess *session.Session, next []domain.Account) []domain.Account {
	logger := middleware.GetLoggerFromCtx(ctx)

	sess.Lock()
	defer sess.Unlock()

	prev := make(map[string]domain.Account, len(sess.Accounts))
	for _, acc := range sess.Accounts {
		prev[acc.AccountID] = acc
	}

	upserts := 0
	seen := make(map[string]struct{}, len(next))
	for _, acc := range next {
		seen[acc.AccountID] = struct{}{}
		if old, ok := prev[acc.AccountID]; ok && old.Equal(acc) {
			continue
		}
		s.queue.Enqueue(syncqueue.Intent{
			UserID:   sess.User.UserID,
			Kind:     portsrepo.KindAccount,
			EntityID: acc.AccountID,
			Op:       syncqueue.OpUpsert,
			Doc:      acc,
		})
		upserts++
	}

	deletes := 0
	for id := range prev {
		if _, ok := seen[id]; ok {
			continue
		}
		s.queue.Enqueue(syncqueue.Intent{
			UserID:   sess.User.UserID,
			Kind:     portsrepo.KindAccount,
			EntityID: id,
			Op:       syncqueue.OpDelete,
		})
		deletes++
	}

	sess.Accounts = make([]domain.Account, len(next))
	copy(sess.Accounts, next)

	if upserts > 0 || deletes > 0 {
		logger.Debug("Account collection reconciled",
			slog.Int("upserts", upserts), slog.Int("deletes", deletes))
	}
	return sess.Accounts
}

// InsertTransaction prepends txn to the transaction sequence and applies the
// balance cascade to the referenced account(s) in the same in-memory step.
// Insertion order is reverse-chronological by action, not by the date field.
func (s *reconcilerService) InsertTransaction(ctx context.Context, sess *session.Session, txn domain.Transaction) ([]domain.Transaction, []domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	sess.Lock()
	defer sess.Unlock()

	if !domain.IsValidType(txn.TransactionType) {
		return nil, nil, fmt.Errorf("%w: unknown transaction type '%s'", apperrors.ErrValidation, txn.TransactionType)
	}
	if txn.Amount.IsNegative() || txn.Amount.IsZero() {
		return nil, nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
	}

	sourceIdx := indexOfAccount(sess.Accounts, txn.AccountID)
	if sourceIdx < 0 {
		return nil, nil, fmt.Errorf("%w: account %s does not exist", apperrors.ErrValidation, txn.AccountID)
	}

	counterIdx := -1
	if txn.TransactionType == domain.Transfer {
		if txn.CounterAccountID == "" {
			return nil, nil, fmt.Errorf("%w: transfer requires a destination account", apperrors.ErrValidation)
		}
		if txn.CounterAccountID == txn.AccountID {
			return nil, nil, fmt.Errorf("%w: transfer source and destination must differ", apperrors.ErrValidation)
		}
		counterIdx = indexOfAccount(sess.Accounts, txn.CounterAccountID)
		if counterIdx < 0 {
			return nil, nil, fmt.Errorf("%w: account %s does not exist", apperrors.ErrValidation, txn.CounterAccountID)
		}
	} else if txn.CounterAccountID != "" {
		return nil, nil, fmt.Errorf("%w: counter account is only valid for transfers", apperrors.ErrValidation)
	}

	if txn.TransactionID == "" {
		txn.TransactionID = uuid.NewString()
	}
	if txn.Date.IsZero() {
		txn.Date = time.Now().UTC()
	}

	delta, err := accounting.SignedDelta(txn)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	// Single atomic in-memory step: new account collection plus the new
	// transaction head become visible together before any write is scheduled.
	accounts := make([]domain.Account, len(sess.Accounts))
	copy(accounts, sess.Accounts)
	accounts[sourceIdx].Balance = accounts[sourceIdx].Balance.Add(delta)
	if counterIdx >= 0 {
		accounts[counterIdx].Balance = accounts[counterIdx].Balance.Add(txn.Amount)
	}

	transactions := make([]domain.Transaction, 0, len(sess.Transactions)+1)
	transactions = append(transactions, txn)
	transactions = append(transactions, sess.Transactions...)

	sess.Accounts = accounts
	sess.Transactions = transactions

	s.queue.Enqueue(syncqueue.Intent{
		UserID:   sess.User.UserID,
		Kind:     portsrepo.KindTransaction,
		EntityID: txn.TransactionID,
		Op:       syncqueue.OpUpsert,
		Doc:      txn,
	})
	s.queue.Enqueue(syncqueue.Intent{
		UserID:   sess.User.UserID,
		Kind:     portsrepo.KindAccount,
		EntityID: txn.AccountID,
		Op:       syncqueue.OpUpsertPartial,
		Fields:   map[string]any{"balance": accounts[sourceIdx].Balance},
	})
	if counterIdx >= 0 {
		s.queue.Enqueue(syncqueue.Intent{
			UserID:   sess.User.UserID,
			Kind:     portsrepo.KindAccount,
			EntityID: txn.CounterAccountID,
			Op:       syncqueue.OpUpsertPartial,
			Fields:   map[string]any{"balance": accounts[counterIdx].Balance},
		})
	}

	logger.Info("Transaction inserted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", txn.AccountID),
		slog.String("type", string(txn.TransactionType)))

	txnsCopy := make([]domain.Transaction, len(transactions))
	copy(txnsCopy, transactions)
	accountsCopy := make([]domain.Account, len(accounts))
	copy(accountsCopy, accounts)
	return txnsCopy, accountsCopy, nil
}

// ReplaceStocks mirrors ReplaceAccounts for the portfolio; price moves never
// cascade into other entities.
func (s *reconcilerService) ReplaceStocks(ctx context.Context, sess *session.Session, next []domain.StockHolding) []domain.StockHolding {
	logger := middleware.GetLoggerFromCtx(ctx)

	sess.Lock()
	defer sess.Unlock()

	prev := make(map[string]domain.StockHolding, len(sess.Stocks))
	for _, st := range sess.Stocks {
		prev[st.StockID] = st
	}

	upserts := 0
	seen := make(map[string]struct{}, len(next))
	for _, st := range next {
		seen[st.StockID] = struct{}{}
		if old, ok := prev[st.StockID]; ok && old.Equal(st) {
			continue
		}
		s.queue.Enqueue(syncqueue.Intent{
			UserID:   sess.User.UserID,
			Kind:     portsrepo.KindStock,
			EntityID: st.StockID,
			Op:       syncqueue.OpUpsert,
			Doc:      st,
		})
		upserts++
	}

	deletes := 0
	for id := range prev {
		if _, ok := seen[id]; ok {
			continue
		}
		s.queue.Enqueue(syncqueue.Intent{
			UserID:   sess.User.UserID,
			Kind:     portsrepo.KindStock,
			EntityID: id,
			Op:       syncqueue.OpDelete,
		})
		deletes++
	}

	sess.Stocks = make([]domain.StockHolding, len(next))
	copy(sess.Stocks, next)

	if upserts > 0 || deletes > 0 {
		logger.Debug("Stock collection reconciled",
			slog.Int("upserts", upserts), slog.Int("deletes", deletes))
	}
	return sess.Stocks
}

// SeedIfEmpty runs the first-time seed check. The seed batch is written
// synchronously through the gateway; it is the one write with an atomicity
// guarantee and must land before the first fetch.
func (s *reconcilerService) SeedIfEmpty(ctx context.Context, sess *session.Session) (bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	seeded, err := s.store.SeedIfEmpty(ctx, sess.User.UserID, seed.DefaultSnapshot())
	if err != nil {
		logger.Error("Seed check failed", slog.String("error", err.Error()))
		return false, err
	}
	if seeded {
		logger.Info("First-time user detected, seed dataset written")
	}

	sess.Lock()
	sess.Seeded = seeded
	sess.Unlock()
	return seeded, nil
}

// Load replaces the session collections with the store's current content.
func (s *reconcilerService) Load(ctx context.Context, sess *session.Session) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	snap, err := s.store.FetchAll(ctx, sess.User.UserID)
	if err != nil {
		logger.Error("Initial load failed", slog.String("error", err.Error()))
		sess.Lock()
		sess.LoadFailed = true
		sess.Unlock()
		return err
	}

	sess.Lock()
	sess.Accounts = snap.Accounts
	sess.Transactions = snap.Transactions
	sess.Stocks = snap.Stocks
	sess.LoadFailed = false
	sess.Unlock()

	logger.Debug("Session collections loaded",
		slog.Int("accounts", len(snap.Accounts)),
		slog.Int("transactions", len(snap.Transactions)),
		slog.Int("stocks", len(snap.Stocks)))
	return nil
}

func indexOfAccount(accounts []domain.Account, accountID string) int {
	for i, acc := range accounts {
		if acc.AccountID == accountID {
			return i
		}
	}
	return -1
}
