package draft

import "strings"

// SegmentKind tags a diff segment.
type SegmentKind string

const (
	SegmentUnchanged SegmentKind = "unchanged"
	SegmentAdded     SegmentKind = "added"
	SegmentRemoved   SegmentKind = "removed"
)

// DiffSegment is a run of whitespace-delimited tokens classified against the
// base revision. Segments come out in document order; joining the unchanged
// and added segments reproduces the target's token sequence, joining the
// unchanged and removed segments reproduces the base's.
type DiffSegment struct {
	Kind SegmentKind `json:"type"`
	Text string      `json:"text"`
}

// WordCount counts the non-empty tokens of a whitespace split over the raw
// content. Markup is counted as-is; this is intentionally not HTML-aware.
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// DiffWords computes a word-level diff from base to target using a
// longest-common-subsequence alignment. Ties prefer the earliest available
// base token, which keeps the output deterministic.
func DiffWords(base, target string) []DiffSegment {
	a := strings.Fields(base)
	b := strings.Fields(target)

	// dp[i][j] = LCS length of a[i:] and b[j:].
	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				dp[i][j] = dp[i+1][j+1] + 1
			} else if dp[i+1][j] >= dp[i][j+1] {
				dp[i][j] = dp[i+1][j]
			} else {
				dp[i][j] = dp[i][j+1]
			}
		}
	}

	var segs []DiffSegment
	var removed, added, unchanged []string

	flushGap := func() {
		if len(removed) > 0 {
			segs = append(segs, DiffSegment{Kind: SegmentRemoved, Text: strings.Join(removed, " ")})
			removed = nil
		}
		if len(added) > 0 {
			segs = append(segs, DiffSegment{Kind: SegmentAdded, Text: strings.Join(added, " ")})
			added = nil
		}
	}
	flushUnchanged := func() {
		if len(unchanged) > 0 {
			segs = append(segs, DiffSegment{Kind: SegmentUnchanged, Text: strings.Join(unchanged, " ")})
			unchanged = nil
		}
	}

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			flushGap()
			unchanged = append(unchanged, a[i])
			i++
			j++
		case dp[i+1][j] >= dp[i][j+1]:
			flushUnchanged()
			removed = append(removed, a[i])
			i++
		default:
			flushUnchanged()
			added = append(added, b[j])
			j++
		}
	}
	flushUnchanged()
	removed = append(removed, a[i:]...)
	added = append(added, b[j:]...)
	flushGap()

	return segs
}
