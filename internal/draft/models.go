package draft

import "time"

// Visibility controls who can read a draft.
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityShared  Visibility = "shared"
	VisibilityPublic  Visibility = "public"
)

// Placement marks where a comment is rendered in the workspace UI.
type Placement string

const (
	PlacementInline  Placement = "inline"
	PlacementSidebar Placement = "sidebar"
)

// Draft is a collaborative text/HTML document with an append-only revision
// history. The aggregate owns its revisions, comments and attachment
// metadata; nothing inside it has an independent lifetime.
type Draft struct {
	ID          string       `json:"id"`
	OwnerID     string       `json:"ownerId"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Visibility  Visibility   `json:"visibility"`
	SharedWith  []string     `json:"sharedWith"`
	Note        string       `json:"note,omitempty"`
	Attachments []Attachment `json:"attachments"`
	Revisions   []Revision   `json:"revisions"`
	Comments    []Comment    `json:"comments"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Revision is an immutable content snapshot. Edits always append; an
// existing revision is never mutated. Order in Draft.Revisions is the
// chronological order, oldest first.
type Revision struct {
	ID        string    `json:"id"`
	DraftID   string    `json:"draftId"`
	Content   string    `json:"content"`
	WordCount int       `json:"wordCount"`
	AuthorID  string    `json:"authorId"`
	Autosave  bool      `json:"autosave"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment is an inline or sidebar annotation on a draft. Comments are
// append-only in this core; there is no deletion path besides Reset.
type Comment struct {
	ID        string    `json:"id"`
	DraftID   string    `json:"draftId"`
	AuthorID  string    `json:"authorId"`
	Body      string    `json:"body"`
	Placement Placement `json:"placement"`
	Quote     *string   `json:"quote"`
	CreatedAt time.Time `json:"createdAt"`
}

// Attachment records file metadata only. The binary lives in the external
// asset store and is referenced by Key.
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Key         string `json:"key,omitempty"`
}

// CreateInput carries the owner-supplied fields for draft creation.
type CreateInput struct {
	OwnerID     string       `json:"ownerId"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Visibility  Visibility   `json:"visibility"`
	SharedWith  []string     `json:"sharedWith"`
	Attachments []Attachment `json:"attachments"`
	Note        string       `json:"note"`
}

// Patch carries the optional fields of an update. Nil pointers mean "leave
// unchanged"; Autosave labels the revision appended when Content changes.
type Patch struct {
	Title      *string     `json:"title"`
	Content    *string     `json:"content"`
	Visibility *Visibility `json:"visibility"`
	SharedWith *[]string   `json:"sharedWith"`
	Autosave   bool        `json:"autosave"`
}

// CommentInput carries the viewer-supplied fields of a new comment.
type CommentInput struct {
	Body      string    `json:"body"`
	Placement Placement `json:"placement"`
	Quote     *string   `json:"quote"`
}

// Buckets partitions a viewer's reachable drafts. Every accessible draft
// lands in exactly one bucket: owned wins over collaborating, collaborating
// wins over public.
type Buckets struct {
	Owned         []Draft `json:"owned"`
	Collaborating []Draft `json:"collaborating"`
	Public        []Draft `json:"public"`
}
