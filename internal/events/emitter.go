package events

import (
	"sync"

	"github.com/inkhaven/inkhaven/backend/go-services/pkg/metrics"
)

// Event kinds published by the draft store.
const (
	KindDraftUpdated   = "draft:updated"
	KindDraftCommented = "draft:commented"
)

// Event is an outbound notification. Payload is a snapshot owned by the
// subscriber side; the emitter never caches or replays it.
type Event struct {
	Kind    string `json:"kind"`
	DraftID string `json:"draftId"`
	Payload any    `json:"payload"`
}

type subscriber struct {
	id int
	fn func(Event)
}

// Emitter is a process-wide synchronous publish/subscribe channel. Fan-out
// happens in registration order; there is no buffering and no delivery
// guarantee beyond "delivered to whoever is subscribed at emission time".
type Emitter struct {
	mu     sync.Mutex
	nextID int
	subs   map[string][]subscriber
}

func NewEmitter() *Emitter {
	return &Emitter{subs: make(map[string][]subscriber)}
}

// Subscribe registers fn for the given event kind and returns a cancel
// function. Cancel is idempotent; subscribers tied to a client connection
// must call it on disconnect or they leak.
func (e *Emitter) Subscribe(kind string, fn func(Event)) (cancel func()) {
	e.mu.Lock()
	e.nextID++
	id := e.nextID
	e.subs[kind] = append(e.subs[kind], subscriber{id: id, fn: fn})
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			list := e.subs[kind]
			for i, s := range list {
				if s.id == id {
					e.subs[kind] = append(list[:i:i], list[i+1:]...)
					break
				}
			}
		})
	}
}

// Publish delivers ev synchronously to every current subscriber of its kind,
// in registration order. Callbacks run outside the emitter lock so a
// subscriber may unsubscribe itself during delivery.
func (e *Emitter) Publish(ev Event) {
	e.mu.Lock()
	list := make([]subscriber, len(e.subs[ev.Kind]))
	copy(list, e.subs[ev.Kind])
	e.mu.Unlock()

	metrics.EventsPublished.WithLabelValues(ev.Kind).Inc()
	for _, s := range list {
		s.fn(ev)
	}
}

// SubscriberCount reports the live subscriber count for a kind.
func (e *Emitter) SubscriberCount(kind string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs[kind])
}
