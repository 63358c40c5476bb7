package subscribing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/painel-leads-api/infrastructure/docstore"
	"github.com/vfg2006/painel-leads-api/internal/domain"
	"github.com/vfg2006/painel-leads-api/internal/translator"
)

func waitClosed(t *testing.T, ch <-chan Snapshot) {
	t.Helper()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("stream não foi fechado")
		}
	}
}

func TestStream_DeliversSnapshots(t *testing.T) {
	store := docstore.NewMemoryStore()
	manager := NewManager(store, translator.New(), nil)
	defer manager.Close()

	stream := manager.Watch(context.Background(), domain.CollectionLeads)

	initial := nextSnapshot(t, stream.C())
	assert.Equal(t, 0, initial.Len())

	_, err := manager.Create(context.Background(), domain.CollectionLeads, &domain.Lead{Name: "Ana"})
	require.NoError(t, err)

	snapshot := nextSnapshot(t, stream.C())
	assert.Equal(t, 1, snapshot.Len())

	stream.Close()
	stream.Close()
	waitClosed(t, stream.C())
}

func TestStream_KeepsLatestSnapshot(t *testing.T) {
	store := docstore.NewMemoryStore()
	manager := NewManager(store, translator.New(), nil)
	defer manager.Close()

	stream := manager.Watch(context.Background(), domain.CollectionLeads)
	defer stream.Close()
	nextSnapshot(t, stream.C())

	for _, name := range []string{"Ana", "Bruno", "Carla"} {
		_, err := manager.Create(context.Background(), domain.CollectionLeads, &domain.Lead{Name: name})
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		select {
		case snapshot := <-stream.C():
			return snapshot.Len() == 3
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestStream_ContextCancel(t *testing.T) {
	store := docstore.NewMemoryStore()
	manager := NewManager(store, translator.New(), nil)
	defer manager.Close()

	ctx, cancel := context.WithCancel(context.Background())
	stream := manager.Watch(ctx, domain.CollectionUsers)
	nextSnapshot(t, stream.C())

	cancel()
	waitClosed(t, stream.C())
}

func TestStream_Restartable(t *testing.T) {
	store := docstore.NewMemoryStore()
	manager := NewManager(store, translator.New(), nil)
	defer manager.Close()

	first := manager.Watch(context.Background(), domain.CollectionLeads)
	nextSnapshot(t, first.C())
	first.Close()

	_, err := store.Insert(context.Background(), domain.CollectionLeads, map[string]any{"Nome": "Ana"})
	require.NoError(t, err)

	second := manager.Watch(context.Background(), domain.CollectionLeads)
	defer second.Close()

	snapshot := nextSnapshot(t, second.C())
	assert.Equal(t, 1, snapshot.Len())
}

func TestStream_SendWithoutSource(t *testing.T) {
	stream := NewStream()

	stream.Send(Snapshot{Collection: domain.CollectionLeads, Leads: []*domain.Lead{{ID: "a"}}})
	stream.Send(Snapshot{Collection: domain.CollectionLeads, Leads: []*domain.Lead{{ID: "a"}, {ID: "b"}}})

	snapshot := nextSnapshot(t, stream.C())
	assert.Equal(t, 2, snapshot.Len())

	stream.Close()
	stream.Send(Snapshot{Collection: domain.CollectionLeads})
	waitClosed(t, stream.C())
}

func TestStream_Unavailable(t *testing.T) {
	manager := NewManager(nil, translator.New(), nil)
	defer manager.Close()

	stream := manager.Watch(context.Background(), domain.CollectionLeads)
	snapshot := nextSnapshot(t, stream.C())
	assert.Equal(t, 0, snapshot.Len())

	stream.Close()
	waitClosed(t, stream.C())
}
