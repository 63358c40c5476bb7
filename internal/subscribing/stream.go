package subscribing

import (
	"context"
	"sync"
)

// Stream é uma assinatura consumida por canal. Guarda só o snapshot mais recente:
// um leitor lento perde os intermediários, nunca o último.
type Stream struct {
	mu          sync.Mutex
	c           chan Snapshot
	closed      bool
	unsubscribe Unsubscribe
	stop        func() bool
}

// Watch começa uma nova leitura ao vivo da coleção a cada chamada. O stream termina com
// Close ou quando ctx é cancelado; nos dois casos o canal é fechado.
func (m *Manager) Watch(ctx context.Context, collection string) *Stream {
	s := NewStream()

	unsubscribe := m.Subscribe(collection, s.Send)

	s.mu.Lock()
	s.unsubscribe = unsubscribe
	s.stop = context.AfterFunc(ctx, s.Close)
	s.mu.Unlock()

	return s
}

// NewStream cria um stream sem fonte; quem produz os snapshots chama Send.
func NewStream() *Stream {
	return &Stream{
		c:           make(chan Snapshot, 1),
		unsubscribe: func() {},
	}
}

func (s *Stream) C() <-chan Snapshot {
	return s.c
}

func (s *Stream) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.c)
	unsubscribe := s.unsubscribe
	stop := s.stop
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
	unsubscribe()
}

// Send substitui o snapshot pendente, se houver. Depois do Close não faz nada.
func (s *Stream) Send(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	for {
		select {
		case s.c <- snapshot:
			return
		default:
		}

		select {
		case <-s.c:
		default:
		}
	}
}
