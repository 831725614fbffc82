package draft

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWordCount(t *testing.T) {
	require.Equal(t, 0, WordCount(""))
	require.Equal(t, 0, WordCount("   \n\t  "))
	require.Equal(t, 2, WordCount("hello world"))
	require.Equal(t, 2, WordCount("  hello \n  world  "))
	// raw content, not HTML-aware: markup tokens count
	require.Equal(t, 4, WordCount("<p>Hello world</p> extra token"))
}

func TestDiffIdenticalContent(t *testing.T) {
	segs := DiffWords("<p>Hello world</p>", "<p>Hello world</p>")
	require.Len(t, segs, 1)
	require.Equal(t, SegmentUnchanged, segs[0].Kind)
	require.Equal(t, "<p>Hello world</p>", segs[0].Text)
}

func TestDiffBothEmpty(t *testing.T) {
	require.Empty(t, DiffWords("", ""))
}

func TestDiffDisjointContent(t *testing.T) {
	segs := DiffWords("alpha beta gamma", "delta epsilon")
	require.Len(t, segs, 2)
	require.Equal(t, SegmentRemoved, segs[0].Kind)
	require.Equal(t, "alpha beta gamma", segs[0].Text)
	require.Equal(t, SegmentAdded, segs[1].Kind)
	require.Equal(t, "delta epsilon", segs[1].Text)
}

func TestDiffAppendOnly(t *testing.T) {
	segs := DiffWords("<p>Hello world</p>", "<p>Hello world</p> <p>Added line</p>")
	var added int
	for _, s := range segs {
		require.NotEqual(t, SegmentRemoved, s.Kind)
		if s.Kind == SegmentAdded {
			added++
		}
	}
	require.Greater(t, added, 0)
}

func TestDiffRemovalOnly(t *testing.T) {
	segs := DiffWords("one two three four", "one four")
	require.Equal(t, []DiffSegment{
		{Kind: SegmentUnchanged, Text: "one"},
		{Kind: SegmentRemoved, Text: "two three"},
		{Kind: SegmentUnchanged, Text: "four"},
	}, segs)
}

func TestDiffDeterministic(t *testing.T) {
	base := "a b a b a"
	target := "b a b"
	first := DiffWords(base, target)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, DiffWords(base, target))
	}
}

// applying the added segments (dropping removed) must reconstruct the
// target's token sequence; keeping removed and unchanged reconstructs the
// base's.
func TestDiffRoundTrip(t *testing.T) {
	cases := [][2]string{
		{"the quick brown fox", "the slow brown dog"},
		{"", "entirely new content here"},
		{"all of this goes away", ""},
		{"a b c d e f", "a c e g"},
		{"x y z x y z", "z y x z y x"},
	}
	for _, tc := range cases {
		segs := DiffWords(tc[0], tc[1])
		fromBase, fromTarget := []string{}, []string{}
		for _, s := range segs {
			tokens := strings.Fields(s.Text)
			switch s.Kind {
			case SegmentUnchanged:
				fromBase = append(fromBase, tokens...)
				fromTarget = append(fromTarget, tokens...)
			case SegmentRemoved:
				fromBase = append(fromBase, tokens...)
			case SegmentAdded:
				fromTarget = append(fromTarget, tokens...)
			}
		}
		require.Equal(t, strings.Fields(tc[0]), fromBase, "base reconstruction for %q -> %q", tc[0], tc[1])
		require.Equal(t, strings.Fields(tc[1]), fromTarget, "target reconstruction for %q -> %q", tc[0], tc[1])
	}
}

func TestDiffRevisionsUnknownID(t *testing.T) {
	d := &Draft{ID: "draft_x"}
	AppendRevision(d, "hello", "writer-aria", false)

	_, err := DiffRevisions(d, d.Revisions[0].ID, "rev_missing")
	require.Error(t, err)
	require.True(t, IsNotFound(err))

	_, err = DiffRevisions(d, "rev_missing", d.Revisions[0].ID)
	require.True(t, IsNotFound(err))
}

func TestAppendRevisionImmutableOrder(t *testing.T) {
	d := &Draft{ID: "draft_y"}
	r1 := AppendRevision(d, "one two", "writer-aria", false)
	r2 := AppendRevision(d, "one two three", "writer-jules", true)

	require.Len(t, d.Revisions, 2)
	require.Equal(t, r1.ID, d.Revisions[0].ID)
	require.Equal(t, r2.ID, d.Revisions[1].ID)
	require.Equal(t, 2, d.Revisions[0].WordCount)
	require.Equal(t, 3, d.Revisions[1].WordCount)
	require.False(t, d.Revisions[0].Autosave)
	require.True(t, d.Revisions[1].Autosave)
	// first snapshot untouched by the second append
	require.Equal(t, "one two", d.Revisions[0].Content)
}
