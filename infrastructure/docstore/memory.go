package docstore

import (
	"context"
	"maps"
	"sync"

	"github.com/vfg2006/painel-leads-api/internal/domain"
	"github.com/vfg2006/painel-leads-api/pkg/utils"
)

type memoryCollection struct {
	order []string
	docs  map[string]map[string]any
}

// MemoryStore mantém os documentos em memória, na ordem de criação.
// Usado em desenvolvimento local e nos testes.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
	hub         *watchHub
	newID       func() (string, error)
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]*memoryCollection),
		hub:         newWatchHub(),
		newID:       utils.GenerateDocumentID,
	}
}

func (s *MemoryStore) List(ctx context.Context, collection string) ([]domain.Document, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[collection]
	if !ok {
		return []domain.Document{}, nil
	}

	docs := make([]domain.Document, 0, len(c.order))
	for _, id := range c.order {
		docs = append(docs, domain.Document{ID: id, Data: maps.Clone(c.docs[id])})
	}

	return docs, nil
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (*domain.Document, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[collection]
	if !ok {
		return nil, nil
	}

	data, ok := c.docs[id]
	if !ok {
		return nil, nil
	}

	return &domain.Document{ID: id, Data: maps.Clone(data)}, nil
}

func (s *MemoryStore) Insert(ctx context.Context, collection string, data map[string]any) (string, error) {
	if err := validCollection(collection); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id, err := s.newID()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.collection(collection).put(id, maps.Clone(data))
	s.mu.Unlock()

	s.hub.notify(collection)
	return id, nil
}

func (s *MemoryStore) Patch(ctx context.Context, collection, id string, data map[string]any) error {
	if err := validCollection(collection); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	c, ok := s.collections[collection]
	if !ok || c.docs[id] == nil {
		s.mu.Unlock()
		return ErrDocumentNotFound
	}
	maps.Copy(c.docs[id], data)
	s.mu.Unlock()

	s.hub.notify(collection)
	return nil
}

func (s *MemoryStore) MergeSet(ctx context.Context, collection, id string, data map[string]any) error {
	if err := validCollection(collection); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	c := s.collection(collection)
	if existing, ok := c.docs[id]; ok {
		maps.Copy(existing, data)
	} else {
		c.put(id, maps.Clone(data))
	}
	s.mu.Unlock()

	s.hub.notify(collection)
	return nil
}

func (s *MemoryStore) Watch(ctx context.Context, collection string) (<-chan struct{}, error) {
	if err := validCollection(collection); err != nil {
		return nil, err
	}

	return s.hub.add(ctx, collection), nil
}

// collection precisa ser chamado com o lock de escrita.
func (s *MemoryStore) collection(name string) *memoryCollection {
	c, ok := s.collections[name]
	if !ok {
		c = &memoryCollection{docs: make(map[string]map[string]any)}
		s.collections[name] = c
	}
	return c
}

func (c *memoryCollection) put(id string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if _, exists := c.docs[id]; !exists {
		c.order = append(c.order, id)
	}
	c.docs[id] = data
}
