package kvstore

import (
	"context"
	"sync"
)

// hub fans key updates out to in-process subscribers.
type hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan string
}

func newHub() *hub {
	return &hub{subs: make(map[string]map[int]chan string)}
}

func (h *hub) subscribe(ctx context.Context, key string) (<-chan string, func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	ch := make(chan string, 1)
	if h.subs[key] == nil {
		h.subs[key] = make(map[int]chan string)
	}
	h.subs[key][id] = ch
	h.mu.Unlock()

	stop := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() { close(stop) })
		h.remove(key, id)
	}

	go func() {
		select {
		case <-ctx.Done():
			h.remove(key, id)
		case <-stop:
		}
	}()

	return ch, cancel
}

func (h *hub) remove(key string, id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	byID := h.subs[key]
	ch, ok := byID[id]
	if !ok {
		return
	}
	delete(byID, id)
	if len(byID) == 0 {
		delete(h.subs, key)
	}
	close(ch)
}

func (h *hub) publish(key, value string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs[key] {
		// keep only the latest value for a receiver that has fallen behind
		select {
		case ch <- value:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- value
		}
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	subs := h.subs
	h.subs = make(map[string]map[int]chan string)
	h.mu.Unlock()

	for _, byID := range subs {
		for _, ch := range byID {
			close(ch)
		}
	}
}
