package textproc

import "strings"

// minOverlap is the smallest suffix/prefix overlap that triggers a merge.
// Sliding-window chunking overlaps adjacent chunks by a couple hundred
// characters; anything shorter than this is likely a coincidental common
// substring, and merging on it would drop real text.
const minOverlap = 50

// Merge stitches addition onto base, collapsing duplicated boundary text.
//
// It scans candidate overlap lengths from min(len(base), len(addition))
// down to minOverlap, looking for the longest suffix of base that equals a
// prefix of addition. On a match of length i the result is
// base + addition[i:], so the overlapping region appears exactly once.
// Without a qualifying overlap the two parts are joined with a blank line.
func Merge(base, addition string) string {
	if base == "" {
		return addition
	}
	if addition == "" {
		return base
	}

	maxLen := len(base)
	if len(addition) < maxLen {
		maxLen = len(addition)
	}

	for i := maxLen; i >= minOverlap; i-- {
		if strings.HasSuffix(base, addition[:i]) {
			return base + addition[i:]
		}
	}

	return base + "\n\n" + addition
}

// BuildContextString folds Merge left-to-right over the normalized contents
// of chunks, skipping any chunk whose normalized content is empty, and trims
// the final result.
func BuildContextString(chunks []string) string {
	var merged string
	for _, chunk := range chunks {
		normalized := Normalize(chunk)
		if normalized == "" {
			continue
		}
		merged = Merge(merged, normalized)
	}
	return strings.TrimSpace(merged)
}
