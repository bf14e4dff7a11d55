package retrieval_test

import (
	"strings"
	"testing"

	"contexta/internal/retrieval"
)

func TestConfig_IsWeak(t *testing.T) {
	cfg := retrieval.DefaultConfig()

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{
			name:  "empty query",
			query: "",
			want:  true,
		},
		{
			name:  "three tokens is weak",
			query: strings.Repeat("tokenish ", 3) + "",
			want:  true,
		},
		{
			name:  "four tokens and length 30 is strong",
			query: "whatt are the ingestion limits", // 30 chars, 5 tokens
			want:  false,
		},
		{
			name:  "length 29 is weak regardless of token count",
			query: "one two three four five six 7", // 29 chars, 7 tokens
			want:  true,
		},
		{
			name:  "long but sparse is weak",
			query: "supercalifragilisticexpialidocious antidisestablishmentarianism",
			want:  true,
		},
		{
			name:  "well formed question is strong",
			query: "how does the document ingestion pipeline handle scanned pages?",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.IsWeak(tt.query); got != tt.want {
				t.Errorf("IsWeak(%q) = %v, want %v (len=%d tokens=%d)",
					tt.query, got, tt.want, len(tt.query), len(strings.Fields(tt.query)))
			}
		})
	}
}

func TestConfig_IsWeak_ExactBoundaries(t *testing.T) {
	cfg := retrieval.DefaultConfig()

	// Exactly 3 tokens, padded past the length floor: still weak.
	threeTokens := "aaaaaaaaaaaa bbbbbbbbbbbb cccccccccccc" // 38 chars
	if !cfg.IsWeak(threeTokens) {
		t.Errorf("3-token query should be weak: %q", threeTokens)
	}

	// Exactly 4 tokens at exactly 30 characters: strong.
	fourTokens := "aaaaaaa bbbbbbb ccccccc dddddd"
	if len(fourTokens) != 30 {
		t.Fatalf("test fixture length = %d, want 30", len(fourTokens))
	}
	if cfg.IsWeak(fourTokens) {
		t.Errorf("4-token 30-char query should be strong: %q", fourTokens)
	}

	// 29 characters: weak.
	shortQuery := fourTokens[:29]
	if !cfg.IsWeak(shortQuery) {
		t.Errorf("29-char query should be weak: %q", shortQuery)
	}
}
