package writers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryDirectoryUpsertGetList(t *testing.T) {
	dir := NewMemoryDirectory()
	ctx := context.Background()

	_, err := dir.Upsert(ctx, &Writer{ID: "writer-jules", Name: "Jules"})
	require.NoError(t, err)
	_, err = dir.Upsert(ctx, &Writer{ID: "writer-aria", Name: "Aria"})
	require.NoError(t, err)

	w, err := dir.Get(ctx, "writer-jules")
	require.NoError(t, err)
	require.NotNil(t, w)
	require.Equal(t, "Jules", w.Name)

	// unknown ids resolve to nil without error
	missing, err := dir.Get(ctx, "writer-nobody")
	require.NoError(t, err)
	require.Nil(t, missing)

	list, err := dir.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// stable id ordering
	require.Equal(t, "writer-aria", list[0].ID)
	require.Equal(t, "writer-jules", list[1].ID)

	// upsert updates in place
	_, err = dir.Upsert(ctx, &Writer{ID: "writer-aria", Name: "Aria Chen"})
	require.NoError(t, err)
	w2, err := dir.Get(ctx, "writer-aria")
	require.NoError(t, err)
	require.Equal(t, "Aria Chen", w2.Name)
	require.False(t, w2.CreatedAt.IsZero())
}
