package docstore

import (
	"context"
	"sync"
)

type watcher struct {
	ch chan struct{}
}

// watchHub distribui sinais de alteração por coleção. Cada watcher tem buffer de 1:
// se já houver um sinal pendente o novo é descartado, pois o leitor vai reler a coleção inteira.
type watchHub struct {
	mu       sync.Mutex
	watchers map[string]map[*watcher]struct{}
}

func newWatchHub() *watchHub {
	return &watchHub{watchers: make(map[string]map[*watcher]struct{})}
}

func (h *watchHub) add(ctx context.Context, collection string) <-chan struct{} {
	w := &watcher{ch: make(chan struct{}, 1)}
	w.ch <- struct{}{}

	h.mu.Lock()
	if h.watchers[collection] == nil {
		h.watchers[collection] = make(map[*watcher]struct{})
	}
	h.watchers[collection][w] = struct{}{}
	h.mu.Unlock()

	context.AfterFunc(ctx, func() {
		h.remove(collection, w)
	})

	return w.ch
}

func (h *watchHub) remove(collection string, w *watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.watchers[collection]
	if _, ok := set[w]; !ok {
		return
	}

	delete(set, w)
	if len(set) == 0 {
		delete(h.watchers, collection)
	}
	close(w.ch)
}

func (h *watchHub) notify(collection string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for w := range h.watchers[collection] {
		signal(w)
	}
}

func (h *watchHub) notifyAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, set := range h.watchers {
		for w := range set {
			signal(w)
		}
	}
}

func (h *watchHub) count(collection string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.watchers[collection])
}

func signal(w *watcher) {
	select {
	case w.ch <- struct{}{}:
	default:
	}
}
