package service

import (
	"context"
	"fmt"
	"time"

	"github.com/inkhaven/inkhaven/backend/go-services/internal/draft"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/draft/store"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/events"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/notify"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/writers"
	"github.com/inkhaven/inkhaven/backend/go-services/pkg/logger"
)

// Service is the draft engine's operation surface. It owns the external
// collaborators (writer directory, notification sink) and delegates all
// draft state to the store.
type Service struct {
	store     *store.Store
	emitter   *events.Emitter
	directory writers.Directory
	notifier  notify.Sink
}

// New wires a service. Directory and notifier default to in-memory/no-op
// implementations when nil so the memory-only deployment needs no external
// services at all.
func New(st *store.Store, em *events.Emitter, dir writers.Directory, sink notify.Sink) *Service {
	if dir == nil {
		dir = writers.NewMemoryDirectory()
	}
	if sink == nil {
		sink = notify.NopSink{}
	}
	return &Service{store: st, emitter: em, directory: dir, notifier: sink}
}

func (s *Service) CreateDraft(in draft.CreateInput) (*draft.Draft, error) {
	return s.store.CreateDraft(in)
}

func (s *Service) UpdateDraft(draftID, actorID string, p draft.Patch) (*draft.Draft, error) {
	return s.store.UpdateDraft(draftID, actorID, p)
}

func (s *Service) GetDraftWorkspace(draftID, viewerID string) (*draft.Draft, error) {
	return s.store.GetWorkspace(draftID, viewerID)
}

func (s *Service) ListAccessibleDrafts(viewerID string) []draft.Draft {
	return s.store.ListAccessible(viewerID)
}

func (s *Service) ListDraftBuckets(viewerID string) draft.Buckets {
	return s.store.BucketsFor(viewerID)
}

func (s *Service) ListDraftRevisions(draftID, viewerID string) ([]draft.Revision, error) {
	return s.store.ListRevisions(draftID, viewerID)
}

func (s *Service) CompareDraftRevisions(draftID, baseID, targetID, viewerID string) ([]draft.DiffSegment, error) {
	return s.store.CompareRevisions(draftID, baseID, targetID, viewerID)
}

// CreateDraftComment appends a comment and notifies the draft owner and
// shared collaborators (minus the actor). Notification failures are logged
// and never fail the comment.
func (s *Service) CreateDraftComment(ctx context.Context, draftID, actorID string, in draft.CommentInput) (*draft.Comment, error) {
	c, err := s.store.CreateComment(draftID, actorID, in)
	if err != nil {
		return nil, err
	}

	d, err := s.store.GetWorkspace(draftID, actorID)
	if err != nil {
		// comment landed; recipients are best-effort
		logger.Warnf("comment notification skipped for draft %s: %v", draftID, err)
		return c, nil
	}
	authorName := s.displayName(ctx, actorID)
	for _, recipient := range commentRecipients(d, actorID) {
		n := notify.Notification{
			RecipientID: recipient,
			DraftID:     d.ID,
			CommentID:   c.ID,
			ActorID:     actorID,
			Message:     fmt.Sprintf("%s commented on %q", authorName, d.Title),
			CreatedAt:   time.Now().UTC(),
		}
		if err := s.notifier.Deliver(ctx, n); err != nil {
			logger.Warnf("failed to deliver comment notification to %s: %v", recipient, err)
		}
	}
	return c, nil
}

func (s *Service) ListDraftComments(draftID, viewerID string) ([]draft.Comment, error) {
	return s.store.ListComments(draftID, viewerID)
}

// ListPotentialCollaborators returns every known writer except the owner,
// for the collaborator picker. This is an exclusion filter over the writer
// directory, not authorization logic.
func (s *Service) ListPotentialCollaborators(ctx context.Context, ownerID string) ([]writers.Writer, error) {
	all, err := s.directory.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]writers.Writer, 0, len(all))
	for _, w := range all {
		if w.ID != ownerID {
			out = append(out, w)
		}
	}
	return out, nil
}

// Emitter exposes the shared event emitter for streaming consumers.
func (s *Service) Emitter() *events.Emitter { return s.emitter }

// Reset clears all draft state. Test isolation only.
func (s *Service) Reset() { s.store.Reset() }

func (s *Service) displayName(ctx context.Context, writerID string) string {
	w, err := s.directory.Get(ctx, writerID)
	if err != nil || w == nil || w.Name == "" {
		return writerID
	}
	return w.Name
}

// commentRecipients is the owner plus shared collaborators, deduplicated,
// with the actor excluded.
func commentRecipients(d *draft.Draft, actorID string) []string {
	seen := map[string]bool{actorID: true}
	var out []string
	for _, id := range append([]string{d.OwnerID}, d.SharedWith...) {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
