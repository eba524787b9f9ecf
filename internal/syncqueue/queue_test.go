package syncqueue_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	portsrepo "github.com/fintrackpro/fintrack_app/internal/core/ports/repositories"
	"github.com/fintrackpro/fintrack_app/internal/repositories/memory"
	"github.com/fintrackpro/fintrack_app/internal/syncqueue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T, store portsrepo.StoreWriter, lanes int) *syncqueue.Queue {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	q := syncqueue.New(store, logger, lanes, 32)
	q.Start(context.Background())
	return q
}

func TestQueue_UpsertThenPartialAppliesInOrder(t *testing.T) {
	store := memory.NewStore()
	q := newTestQueue(t, store, 4)

	q.Enqueue(syncqueue.Intent{
		UserID:   "u1",
		Kind:     portsrepo.KindAccount,
		EntityID: "acc_1",
		Op:       syncqueue.OpUpsert,
		Doc:      map[string]any{"accountID": "acc_1", "balance": "1000"},
	})
	q.Enqueue(syncqueue.Intent{
		UserID:   "u1",
		Kind:     portsrepo.KindAccount,
		EntityID: "acc_1",
		Op:       syncqueue.OpUpsertPartial,
		Fields:   map[string]any{"balance": "800"},
	})
	q.Close()

	snap, err := store.FetchAll(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, snap.Accounts, 1)
	assert.Equal(t, "800", snap.Accounts[0].Balance.String(),
		"later partial write must win over the earlier full upsert")
}

func TestQueue_UpsertThenDeleteSameEntity(t *testing.T) {
	store := memory.NewStore()
	q := newTestQueue(t, store, 4)

	for i := 0; i < 50; i++ {
		q.Enqueue(syncqueue.Intent{
			UserID:   "u1",
			Kind:     portsrepo.KindStock,
			EntityID: "st_1",
			Op:       syncqueue.OpUpsert,
			Doc:      map[string]any{"stockID": "st_1"},
		})
	}
	q.Enqueue(syncqueue.Intent{
		UserID:   "u1",
		Kind:     portsrepo.KindStock,
		EntityID: "st_1",
		Op:       syncqueue.OpDelete,
	})
	q.Close()

	assert.Equal(t, 0, store.Count("u1", portsrepo.KindStock),
		"the delete trails every upsert for the same entity")
}

func TestQueue_IndependentEntitiesAllLand(t *testing.T) {
	store := memory.NewStore()
	q := newTestQueue(t, store, 4)

	ids := []string{"acc_1", "acc_2", "acc_3", "acc_4", "acc_5", "acc_6", "acc_7", "acc_8"}
	for _, id := range ids {
		q.Enqueue(syncqueue.Intent{
			UserID:   "u1",
			Kind:     portsrepo.KindAccount,
			EntityID: id,
			Op:       syncqueue.OpUpsert,
			Doc:      map[string]any{"accountID": id},
		})
	}
	q.Close()

	assert.Equal(t, len(ids), store.Count("u1", portsrepo.KindAccount))
}

func TestQueue_EnqueueAfterCloseIsDropped(t *testing.T) {
	store := memory.NewStore()
	q := newTestQueue(t, store, 2)
	q.Close()

	// Must not panic or block.
	q.Enqueue(syncqueue.Intent{
		UserID:   "u1",
		Kind:     portsrepo.KindAccount,
		EntityID: "acc_1",
		Op:       syncqueue.OpUpsert,
		Doc:      map[string]any{"accountID": "acc_1"},
	})

	assert.Equal(t, 0, store.Count("u1", portsrepo.KindAccount))
}
