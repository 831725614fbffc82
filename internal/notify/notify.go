package notify

import (
	"context"
	"sync"
	"time"
)

// Notification is a fire-and-forget "someone commented on your draft"
// delivery. The draft core hands these off and never waits on the outcome.
type Notification struct {
	RecipientID string    `json:"recipientId"`
	DraftID     string    `json:"draftId"`
	CommentID   string    `json:"commentId"`
	ActorID     string    `json:"actorId"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Sink is the delivery side. Implementations must be safe for concurrent
// use; errors are logged by the caller and never surfaced to clients.
type Sink interface {
	Deliver(ctx context.Context, n Notification) error
}

// NopSink drops everything. Used when no Redis is configured.
type NopSink struct{}

func (NopSink) Deliver(ctx context.Context, n Notification) error { return nil }

// MemorySink records deliveries for assertions in tests.
type MemorySink struct {
	mu   sync.Mutex
	sent []Notification
}

func NewMemorySink() *MemorySink { return &MemorySink{} }

func (m *MemorySink) Deliver(ctx context.Context, n Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, n)
	return nil
}

// Sent returns a copy of everything delivered so far.
func (m *MemorySink) Sent() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Notification(nil), m.sent...)
}
