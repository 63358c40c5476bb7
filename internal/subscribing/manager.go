// Package subscribing mantém assinaturas ao vivo das coleções do banco de documentos e
// grava as alterações feitas no painel, traduzindo nos dois sentidos.
package subscribing

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/painel-leads-api/infrastructure/docstore"
	"github.com/vfg2006/painel-leads-api/internal/domain"
	"github.com/vfg2006/painel-leads-api/internal/translator"
)

// Unsubscribe encerra uma assinatura. Pode ser chamado mais de uma vez.
type Unsubscribe func()

type subscription struct {
	collection string
	cancel     context.CancelFunc
	resync     chan struct{}
}

type Manager struct {
	store      docstore.Store
	translator *translator.Translator
	notifier   Notifier

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	subs   map[*subscription]struct{}
	closed bool
	wg     sync.WaitGroup
}

// NewManager recebe store nil quando o banco não está configurado: leituras vêm vazias e escritas viram aviso.
func NewManager(store docstore.Store, tr *translator.Translator, notifier Notifier) *Manager {
	if tr == nil {
		tr = translator.New()
	}
	if notifier == nil {
		notifier = LogNotifier{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		store:      store,
		translator: tr,
		notifier:   notifier,
		ctx:        ctx,
		cancel:     cancel,
		subs:       make(map[*subscription]struct{}),
	}
}

func (m *Manager) Available() bool {
	return m.store != nil
}

func (m *Manager) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Subscribe entrega a coleção inteira traduzida na assinatura e depois a cada alteração.
// Sem banco configurado o callback é chamado uma vez, na hora, com a coleção vazia.
func (m *Manager) Subscribe(collection string, callback func(Snapshot)) Unsubscribe {
	if !m.Available() {
		callback(emptySnapshot(collection))
		return func() {}
	}

	return m.subscribe(collection,
		func(ctx context.Context) {
			snapshot, ok := m.snapshot(ctx, collection)
			if ok {
				callback(snapshot)
			}
		},
		func() {
			callback(emptySnapshot(collection))
		},
	)
}

// SubscribeAggregateCounter acompanha o campo count de totalrenovacoes/stats. Documento
// ausente, erro ou banco não configurado resultam em 0.
func (m *Manager) SubscribeAggregateCounter(callback func(int)) Unsubscribe {
	if !m.Available() {
		callback(0)
		return func() {}
	}

	return m.subscribe(domain.CollectionTotals,
		func(ctx context.Context) {
			doc, err := m.store.Get(ctx, domain.CollectionTotals, domain.TotalsDocumentID)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				logrus.WithError(err).Error("Erro ao buscar total de renovações")
				callback(0)
				return
			}

			callback(m.translator.CounterFromDocument(doc))
		},
		func() {
			callback(0)
		},
	)
}

// Resync força todas as assinaturas ativas a reler suas coleções.
func (m *Manager) Resync() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	for sub := range m.subs {
		select {
		case sub.resync <- struct{}{}:
		default:
		}
	}

	return len(m.subs)
}

// Close encerra todas as assinaturas e aguarda suas goroutines.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	m.cancel()
	m.wg.Wait()
}

func (m *Manager) subscribe(collection string, refresh func(context.Context), fallback func()) Unsubscribe {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		logrus.WithField("collection", collection).Warn("Assinatura solicitada após o encerramento")
		fallback()
		return func() {}
	}

	ctx, cancel := context.WithCancel(m.ctx)
	sub := &subscription{
		collection: collection,
		cancel:     cancel,
		resync:     make(chan struct{}, 1),
	}
	m.subs[sub] = struct{}{}
	m.wg.Add(1)
	m.mu.Unlock()

	changes, err := m.store.Watch(ctx, collection)
	if err != nil {
		logrus.WithError(err).WithField("collection", collection).Error("Erro ao iniciar assinatura")
		m.remove(sub)
		m.wg.Done()
		fallback()
		return func() {}
	}

	go func() {
		defer m.wg.Done()
		m.run(ctx, sub, changes, refresh)
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.remove(sub)
		})
	}
}

// run serializa as releituras de uma assinatura, mantendo a ordem das entregas.
func (m *Manager) run(ctx context.Context, sub *subscription, changes <-chan struct{}, refresh func(context.Context)) {
	logger := logrus.WithField("collection", sub.collection)
	logger.Debug("Assinatura iniciada")
	defer logger.Debug("Assinatura encerrada")

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
		case <-sub.resync:
		}

		if ctx.Err() != nil {
			return
		}
		refresh(ctx)
	}
}

func (m *Manager) remove(sub *subscription) {
	sub.cancel()

	m.mu.Lock()
	delete(m.subs, sub)
	m.mu.Unlock()
}

// snapshot lista e traduz a coleção. Documentos fora do esquema são ignorados.
// Devolve false quando a assinatura foi encerrada durante a leitura.
func (m *Manager) snapshot(ctx context.Context, collection string) (Snapshot, bool) {
	snapshot := emptySnapshot(collection)

	docs, err := m.store.List(ctx, collection)
	if ctx.Err() != nil {
		return snapshot, false
	}
	if err != nil {
		logrus.WithError(err).WithField("collection", collection).Error("Erro ao listar coleção")
		return snapshot, true
	}

	for _, doc := range docs {
		record, err := m.translator.FromDocument(collection, doc)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"collection":  collection,
				"document_id": doc.ID,
			}).Warn("Documento ignorado por estar fora do esquema")
			continue
		}

		switch r := record.(type) {
		case *domain.User:
			snapshot.Users = append(snapshot.Users, r)
		case *domain.Lead:
			snapshot.Leads = append(snapshot.Leads, r)
		}
	}

	return snapshot, true
}
