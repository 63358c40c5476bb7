package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/painel-leads-api/internal/domain"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func waitSignal(t *testing.T, ch <-chan struct{}) {
	t.Helper()

	select {
	case _, ok := <-ch:
		require.True(t, ok, "canal fechado inesperadamente")
	case <-time.After(time.Second):
		t.Fatal("sinal de alteração não recebido")
	}
}

func assertNoSignal(t *testing.T, ch <-chan struct{}) {
	t.Helper()

	select {
	case <-ch:
		t.Fatal("sinal inesperado")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestMemoryStore_InsertListGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	docs, err := store.List(ctx, domain.CollectionLeads)
	require.NoError(t, err)
	assert.Empty(t, docs)

	firstID, err := store.Insert(ctx, domain.CollectionLeads, map[string]any{"Nome": "Ana"})
	require.NoError(t, err)
	assert.Len(t, firstID, 20)

	secondID, err := store.Insert(ctx, domain.CollectionLeads, map[string]any{"Nome": "Bruno"})
	require.NoError(t, err)
	assert.NotEqual(t, firstID, secondID)

	docs, err = store.List(ctx, domain.CollectionLeads)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, firstID, docs[0].ID)
	assert.Equal(t, "Ana", docs[0].Data["Nome"])
	assert.Equal(t, secondID, docs[1].ID)

	doc, err := store.Get(ctx, domain.CollectionLeads, secondID)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "Bruno", doc.Data["Nome"])

	missing, err := store.Get(ctx, domain.CollectionLeads, "nao-existe")
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = store.Get(ctx, domain.CollectionTotals, domain.TotalsDocumentID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	input := map[string]any{"Nome": "Ana"}
	id, err := store.Insert(ctx, domain.CollectionLeads, input)
	require.NoError(t, err)

	input["Nome"] = "alterado fora"

	doc, err := store.Get(ctx, domain.CollectionLeads, id)
	require.NoError(t, err)
	doc.Data["Nome"] = "alterado na cópia"

	doc, err = store.Get(ctx, domain.CollectionLeads, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", doc.Data["Nome"])
}

func TestMemoryStore_Patch(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	id, err := store.Insert(ctx, domain.CollectionRenewals, map[string]any{"Nome": "Ana", "status": "Novo"})
	require.NoError(t, err)

	err = store.Patch(ctx, domain.CollectionRenewals, id, map[string]any{"status": "Fechado"})
	require.NoError(t, err)

	doc, err := store.Get(ctx, domain.CollectionRenewals, id)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Nome": "Ana", "status": "Fechado"}, doc.Data)

	err = store.Patch(ctx, domain.CollectionRenewals, "nao-existe", map[string]any{"status": "Fechado"})
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	err = store.Patch(ctx, domain.CollectionRenewed, id, map[string]any{"status": "Fechado"})
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestMemoryStore_MergeSet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	err := store.MergeSet(ctx, domain.CollectionTotals, domain.TotalsDocumentID, map[string]any{"count": 10})
	require.NoError(t, err)

	err = store.MergeSet(ctx, domain.CollectionTotals, domain.TotalsDocumentID, map[string]any{"updatedBy": "ana"})
	require.NoError(t, err)

	err = store.MergeSet(ctx, domain.CollectionTotals, domain.TotalsDocumentID, map[string]any{"count": 12})
	require.NoError(t, err)

	doc, err := store.Get(ctx, domain.CollectionTotals, domain.TotalsDocumentID)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"count": 12, "updatedBy": "ana"}, doc.Data)

	docs, err := store.List(ctx, domain.CollectionTotals)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestMemoryStore_InvalidCollection(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.List(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidCollection)

	_, err = store.Insert(ctx, "", nil)
	assert.ErrorIs(t, err, ErrInvalidCollection)

	_, err = store.Watch(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidCollection)
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewMemoryStore()

	_, err := store.List(ctx, domain.CollectionLeads)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = store.Insert(ctx, domain.CollectionLeads, map[string]any{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStore_Watch(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())

	leads, err := store.Watch(ctx, domain.CollectionLeads)
	require.NoError(t, err)
	users, err := store.Watch(ctx, domain.CollectionUsers)
	require.NoError(t, err)

	// sinal inicial
	waitSignal(t, leads)
	waitSignal(t, users)

	_, err = store.Insert(context.Background(), domain.CollectionLeads, map[string]any{"Nome": "Ana"})
	require.NoError(t, err)

	waitSignal(t, leads)
	assertNoSignal(t, users)

	// alterações seguidas viram um único sinal
	for i := 0; i < 5; i++ {
		_, err = store.Insert(context.Background(), domain.CollectionLeads, map[string]any{"Nome": i})
		require.NoError(t, err)
	}
	waitSignal(t, leads)
	assertNoSignal(t, leads)

	cancel()

	require.Eventually(t, func() bool {
		_, open := <-leads
		return !open
	}, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		return store.hub.count(domain.CollectionLeads) == 0 && store.hub.count(domain.CollectionUsers) == 0
	}, time.Second, 5*time.Millisecond)
}
