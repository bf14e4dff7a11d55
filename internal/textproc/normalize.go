package textproc

import (
	"regexp"
	"strings"
)

var (
	horizontalWS = regexp.MustCompile(`[ \t\x{00A0}]+`)
	newlineRuns  = regexp.MustCompile(`\n{3,}`)
)

// asciiReplacer maps typographic punctuation variants to their ASCII
// equivalents so that overlapping chunk text compares byte-for-byte.
var asciiReplacer = strings.NewReplacer(
	"‘", "'", // left single quote
	"’", "'", // right single quote / apostrophe
	"‛", "'",
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"–", "-", // en dash
	"—", "-", // em dash
	"−", "-", // minus sign
	"\r\n", "\n",
	"\r", "\n",
)

// Normalize canonicalizes text for merging and comparison: typographic
// apostrophe/dash variants become ASCII, runs of horizontal whitespace
// collapse to a single space, runs of 3+ newlines collapse to exactly 2,
// and leading/trailing whitespace is trimmed.
//
// Normalize is a pure function and idempotent:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = asciiReplacer.Replace(text)
	text = horizontalWS.ReplaceAllString(text, " ")

	// Strip trailing spaces from each line so newline runs are contiguous.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	text = strings.Join(lines, "\n")

	text = newlineRuns.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
