// Package notify fans controller notifications out to live subscribers and
// keeps the most recent ones for clients that connect late.
package notify

import (
	"strconv"
	"sync"

	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
)

const (
	defaultHistory    = 50
	subscriberBufSize = 32
)

type Hub struct {
	logger logging.LoggerService

	mu      sync.RWMutex
	subs    map[int]chan model.Notification
	nextSub int
	history []model.Notification
	limit   int
	closed  bool
}

func NewHub(history int, logger logging.LoggerService) *Hub {
	if history < 1 {
		history = defaultHistory
	}
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Hub{
		logger: logger,
		subs:   make(map[int]chan model.Notification),
		limit:  history,
	}
}

// Notify records n and hands it to every subscriber. A subscriber whose
// buffer is full misses the notification; Notify never waits on a subscriber
// and logs drops only after releasing the hub.
func (h *Hub) Notify(n model.Notification) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}

	h.history = append(h.history, n)
	if len(h.history) > h.limit {
		h.history = append([]model.Notification(nil), h.history[len(h.history)-h.limit:]...)
	}

	var dropped []int
	for id, ch := range h.subs {
		select {
		case ch <- n:
		default:
			dropped = append(dropped, id)
		}
	}
	h.mu.Unlock()

	for _, id := range dropped {
		h.logger.LogWarning("notify: subscriber buffer full, dropping notification " + n.ID + " for subscriber " + strconv.Itoa(id))
	}
}

// Subscribe returns a channel of future notifications and a cancel func
// that unregisters and closes it.
func (h *Hub) Subscribe() (<-chan model.Notification, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan model.Notification, subscriberBufSize)
	if h.closed {
		close(ch)
		return ch, func() {}
	}
	id := h.nextSub
	h.nextSub++
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if sub, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(sub)
			}
		})
	}
}

// Recent returns up to limit notifications, newest first.
func (h *Hub) Recent(limit int) []model.Notification {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if limit <= 0 || limit > len(h.history) {
		limit = len(h.history)
	}
	res := make([]model.Notification, 0, limit)
	for i := len(h.history) - 1; i >= 0 && len(res) < limit; i-- {
		res = append(res, h.history[i])
	}
	return res
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close ends every subscription; later notifications are ignored.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}
