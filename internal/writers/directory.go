package writers

import (
	"context"
	"time"
)

// Writer is an identity known to the platform. The draft core treats writer
// ids as opaque; this directory only backs name lookups for collaborator
// pickers and comment author display.
type Writer struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Directory defines the lookup operations the draft service needs.
type Directory interface {
	Get(ctx context.Context, id string) (*Writer, error)
	List(ctx context.Context) ([]Writer, error)
	Upsert(ctx context.Context, w *Writer) (*Writer, error)
}
