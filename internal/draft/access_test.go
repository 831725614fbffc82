package draft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTierResolution(t *testing.T) {
	cases := []struct {
		name       string
		visibility Visibility
		sharedWith []string
		viewer     string
		want       Tier
	}{
		{"owner always wins", VisibilityPrivate, nil, "writer-aria", TierOwner},
		{"owner wins on shared", VisibilityShared, []string{"writer-aria"}, "writer-aria", TierOwner},
		{"collaborator on shared", VisibilityShared, []string{"writer-jules"}, "writer-jules", TierCollaborator},
		{"shared list ignored when private", VisibilityPrivate, []string{"writer-jules"}, "writer-jules", TierNone},
		{"shared list ignored when public", VisibilityPublic, []string{"writer-jules"}, "writer-jules", TierPublicReader},
		{"public reader", VisibilityPublic, nil, "writer-ronin", TierPublicReader},
		{"stranger on private", VisibilityPrivate, nil, "writer-ronin", TierNone},
		{"stranger on shared", VisibilityShared, []string{"writer-jules"}, "writer-ronin", TierNone},
		{"anonymous on public", VisibilityPublic, nil, "", TierPublicReader},
		{"anonymous on private", VisibilityPrivate, nil, "", TierNone},
		{"anonymous never collaborator", VisibilityShared, []string{""}, "", TierNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := &Draft{OwnerID: "writer-aria", Visibility: tc.visibility, SharedWith: tc.sharedWith}
			require.Equal(t, tc.want, TierFor(d, tc.viewer))
		})
	}
}

func TestCanReadCanWrite(t *testing.T) {
	shared := &Draft{OwnerID: "writer-aria", Visibility: VisibilityShared, SharedWith: []string{"writer-jules"}}
	public := &Draft{OwnerID: "writer-aria", Visibility: VisibilityPublic}

	require.True(t, CanRead(shared, "writer-aria"))
	require.True(t, CanWrite(shared, "writer-aria"))

	// shared collaborators are full editors
	require.True(t, CanRead(shared, "writer-jules"))
	require.True(t, CanWrite(shared, "writer-jules"))

	require.False(t, CanRead(shared, "writer-ronin"))
	require.False(t, CanWrite(shared, "writer-ronin"))

	// public grants read only
	require.True(t, CanRead(public, "writer-ronin"))
	require.False(t, CanWrite(public, "writer-ronin"))
}
