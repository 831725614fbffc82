package store

import (
	"strings"
	"sync"
	"time"

	"github.com/inkhaven/inkhaven/backend/go-services/internal/draft"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/events"
	"github.com/inkhaven/inkhaven/backend/go-services/pkg/metrics"
)

// Store owns every draft aggregate for the lifetime of the process. All
// mutation and read paths go through the access gate before touching data.
// State is memory-resident only; a restart drops everything, and Reset is
// the single deletion path (used for test isolation).
type Store struct {
	mu      sync.RWMutex
	drafts  map[string]*draft.Draft
	order   []string
	emitter *events.Emitter
}

// New creates an empty store publishing through the given emitter. The
// emitter is injected rather than pulled from a global so isolated store
// instances can coexist in tests.
func New(emitter *events.Emitter) *Store {
	return &Store{drafts: make(map[string]*draft.Draft), emitter: emitter}
}

// CommentedEvent is the payload published with events.KindDraftCommented.
type CommentedEvent struct {
	DraftID string        `json:"draftId"`
	Comment draft.Comment `json:"comment"`
}

// CreateDraft validates the input, applies creation defaults and appends
// revision #1. A draft never exists without at least one revision.
func (s *Store) CreateDraft(in draft.CreateInput) (*draft.Draft, error) {
	ownerID := strings.TrimSpace(in.OwnerID)
	if ownerID == "" {
		return nil, draft.ValidationError("ownerId is required")
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = "Untitled draft"
	}
	visibility := in.Visibility
	switch visibility {
	case draft.VisibilityShared, draft.VisibilityPublic:
	default:
		visibility = draft.VisibilityPrivate
	}
	var shared []string
	if visibility == draft.VisibilityShared {
		shared = append(shared, in.SharedWith...)
	}

	now := time.Now().UTC()
	d := &draft.Draft{
		ID:          draft.NewID("draft"),
		OwnerID:     ownerID,
		Title:       title,
		Content:     in.Content,
		Visibility:  visibility,
		SharedWith:  shared,
		Note:        strings.TrimSpace(in.Note),
		Attachments: append([]draft.Attachment(nil), in.Attachments...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	draft.AppendRevision(d, d.Content, ownerID, false)

	s.mu.Lock()
	s.drafts[d.ID] = d
	s.order = append(s.order, d.ID)
	out := cloneDraft(d)
	s.mu.Unlock()

	metrics.DraftsCreated.Inc()
	metrics.RevisionsAppended.Inc()
	return out, nil
}

// UpdateDraft applies a patch on behalf of actorID. Non-content fields are
// applied directly; a content change appends exactly one new revision. The
// updated draft is always published as a draft:updated event, revision or
// not.
func (s *Store) UpdateDraft(draftID, actorID string, p draft.Patch) (*draft.Draft, error) {
	s.mu.Lock()
	d, ok := s.drafts[draftID]
	if !ok {
		s.mu.Unlock()
		return nil, draft.NotFoundError("draft " + draftID + " not found")
	}
	if !draft.CanWrite(d, actorID) {
		s.mu.Unlock()
		return nil, draft.UnauthorizedError("viewer is not authorized to edit this draft")
	}

	if p.Title != nil {
		d.Title = strings.TrimSpace(*p.Title)
	}
	if p.Visibility != nil {
		d.Visibility = *p.Visibility
	}
	if p.SharedWith != nil {
		d.SharedWith = append([]string(nil), (*p.SharedWith)...)
	}
	appended := false
	if p.Content != nil && *p.Content != d.Content {
		d.Content = *p.Content
		draft.AppendRevision(d, d.Content, actorID, p.Autosave)
		appended = true
	}
	d.UpdatedAt = time.Now().UTC()
	out := cloneDraft(d)
	s.mu.Unlock()

	if appended {
		metrics.RevisionsAppended.Inc()
	}
	s.emitter.Publish(events.Event{Kind: events.KindDraftUpdated, DraftID: out.ID, Payload: out})
	return out, nil
}

// GetWorkspace returns the full draft view, revisions and comments included.
// This is the only read path that carries comments alongside the draft.
func (s *Store) GetWorkspace(draftID, viewerID string) (*draft.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, err := s.readable(draftID, viewerID)
	if err != nil {
		return nil, err
	}
	return cloneDraft(d), nil
}

// ListAccessible returns every draft the viewer can read, across all owners,
// in creation order.
func (s *Store) ListAccessible(viewerID string) []draft.Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []draft.Draft
	for _, id := range s.order {
		if d := s.drafts[id]; draft.CanRead(d, viewerID) {
			out = append(out, *cloneDraft(d))
		}
	}
	return out
}

// BucketsFor partitions the viewer's reachable drafts. The partition is
// exhaustive and disjoint: owned wins over collaborating, collaborating wins
// over public, everything else is excluded.
func (s *Store) BucketsFor(viewerID string) draft.Buckets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var b draft.Buckets
	for _, id := range s.order {
		d := s.drafts[id]
		switch draft.TierFor(d, viewerID) {
		case draft.TierOwner:
			b.Owned = append(b.Owned, *cloneDraft(d))
		case draft.TierCollaborator:
			b.Collaborating = append(b.Collaborating, *cloneDraft(d))
		case draft.TierPublicReader:
			b.Public = append(b.Public, *cloneDraft(d))
		}
	}
	return b
}

// ListRevisions returns the draft's revisions oldest first, so callers can
// index revision 0 as the baseline.
func (s *Store) ListRevisions(draftID, viewerID string) ([]draft.Revision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, err := s.readable(draftID, viewerID)
	if err != nil {
		return nil, err
	}
	return append([]draft.Revision(nil), d.Revisions...), nil
}

// CompareRevisions diffs two revisions of the draft, base to target.
func (s *Store) CompareRevisions(draftID, baseID, targetID, viewerID string) ([]draft.DiffSegment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, err := s.readable(draftID, viewerID)
	if err != nil {
		return nil, err
	}
	return draft.DiffRevisions(d, baseID, targetID)
}

// CreateComment appends a comment on behalf of actorID. Read access is
// sufficient; commenting does not require write permission.
func (s *Store) CreateComment(draftID, actorID string, in draft.CommentInput) (*draft.Comment, error) {
	s.mu.Lock()
	d, ok := s.drafts[draftID]
	if !ok {
		s.mu.Unlock()
		return nil, draft.NotFoundError("draft " + draftID + " not found")
	}
	if !draft.CanRead(d, actorID) {
		s.mu.Unlock()
		return nil, draft.UnauthorizedError("viewer is not authorized to comment on this draft")
	}
	body := strings.TrimSpace(in.Body)
	if body == "" {
		s.mu.Unlock()
		return nil, draft.ValidationError("Comments require content")
	}
	placement := draft.PlacementSidebar
	if in.Placement == draft.PlacementInline {
		placement = draft.PlacementInline
	}
	c := draft.Comment{
		ID:        draft.NewID("comment"),
		DraftID:   d.ID,
		AuthorID:  actorID,
		Body:      body,
		Placement: placement,
		Quote:     in.Quote,
		CreatedAt: time.Now().UTC(),
	}
	d.Comments = append(d.Comments, c)
	s.mu.Unlock()

	metrics.CommentsCreated.Inc()
	s.emitter.Publish(events.Event{
		Kind:    events.KindDraftCommented,
		DraftID: d.ID,
		Payload: CommentedEvent{DraftID: d.ID, Comment: c},
	})
	return &c, nil
}

// ListComments returns the draft's comments in creation order.
func (s *Store) ListComments(draftID, viewerID string) ([]draft.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, err := s.readable(draftID, viewerID)
	if err != nil {
		return nil, err
	}
	return append([]draft.Comment(nil), d.Comments...), nil
}

// Reset drops all state. Test isolation only; there is no other deletion
// path in this core.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts = make(map[string]*draft.Draft)
	s.order = nil
}

// readable looks up a draft and gates it for reading. Callers hold the lock.
func (s *Store) readable(draftID, viewerID string) (*draft.Draft, error) {
	d, ok := s.drafts[draftID]
	if !ok {
		return nil, draft.NotFoundError("draft " + draftID + " not found")
	}
	if !draft.CanRead(d, viewerID) {
		return nil, draft.UnauthorizedError("viewer is not authorized to read this draft")
	}
	return d, nil
}

// cloneDraft deep-copies the aggregate so callers never alias store-owned
// slices after the lock is released.
func cloneDraft(d *draft.Draft) *draft.Draft {
	out := *d
	out.SharedWith = append([]string(nil), d.SharedWith...)
	out.Attachments = append([]draft.Attachment(nil), d.Attachments...)
	out.Revisions = append([]draft.Revision(nil), d.Revisions...)
	out.Comments = append([]draft.Comment(nil), d.Comments...)
	return &out
}
