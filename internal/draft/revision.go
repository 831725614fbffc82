package draft

import (
	"fmt"
	"sync/atomic"
	"time"
)

var idSeq atomic.Uint64

// NewID produces a process-unique identifier with a readable timestamp
// prefix and an atomic sequence suffix for same-instant uniqueness.
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%s_%04d", prefix, time.Now().UTC().Format("20060102T150405"), idSeq.Add(1))
}

// AppendRevision snapshots content as the next revision of d and returns it.
// Word count is derived once at creation; the snapshot is never mutated
// afterwards. Callers are responsible for holding the store lock.
func AppendRevision(d *Draft, content, authorID string, autosave bool) Revision {
	rev := Revision{
		ID:        NewID("rev"),
		DraftID:   d.ID,
		Content:   content,
		WordCount: WordCount(content),
		AuthorID:  authorID,
		Autosave:  autosave,
		CreatedAt: time.Now().UTC(),
	}
	d.Revisions = append(d.Revisions, rev)
	return rev
}

// FindRevision returns the revision with the given id, or a not-found error
// when the id does not belong to this draft.
func FindRevision(d *Draft, revisionID string) (*Revision, error) {
	for i := range d.Revisions {
		if d.Revisions[i].ID == revisionID {
			return &d.Revisions[i], nil
		}
	}
	return nil, NotFoundError(fmt.Sprintf("revision %s not found on draft %s", revisionID, d.ID))
}

// DiffRevisions diffs two revisions of the same draft, base to target.
func DiffRevisions(d *Draft, baseID, targetID string) ([]DiffSegment, error) {
	base, err := FindRevision(d, baseID)
	if err != nil {
		return nil, err
	}
	target, err := FindRevision(d, targetID)
	if err != nil {
		return nil, err
	}
	return DiffWords(base.Content, target.Content), nil
}
