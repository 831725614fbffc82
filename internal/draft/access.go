package draft

// Tier is a viewer's resolved permission level on a draft.
type Tier string

const (
	TierOwner        Tier = "owner"
	TierCollaborator Tier = "collaborator"
	TierPublicReader Tier = "public-reader"
	TierNone         Tier = "none"
)

// TierFor resolves the viewer's tier against the draft's visibility and
// sharing list. SharedWith is only consulted when visibility is shared.
func TierFor(d *Draft, viewerID string) Tier {
	if viewerID != "" && viewerID == d.OwnerID {
		return TierOwner
	}
	if d.Visibility == VisibilityShared {
		for _, id := range d.SharedWith {
			if id == viewerID && id != "" {
				return TierCollaborator
			}
		}
	}
	if d.Visibility == VisibilityPublic {
		return TierPublicReader
	}
	return TierNone
}

// CanRead reports whether the viewer may read the draft at all.
func CanRead(d *Draft, viewerID string) bool {
	return TierFor(d, viewerID) != TierNone
}

// CanWrite reports whether the viewer may mutate the draft. Shared
// collaborators are treated as equal editors, not read-only reviewers.
func CanWrite(d *Draft, viewerID string) bool {
	t := TierFor(d, viewerID)
	return t == TierOwner || t == TierCollaborator
}
