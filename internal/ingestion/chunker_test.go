package ingestion

import (
	"strings"
	"testing"
)

func TestChunkText(t *testing.T) {
	tests := []struct {
		name    string
		window  int
		overlap int
		text    string
		want    []string
	}{
		{
			name:    "empty text",
			window:  10,
			overlap: 3,
			text:    "",
			want:    nil,
		},
		{
			name:    "shorter than window",
			window:  10,
			overlap: 3,
			text:    "hello",
			want:    []string{"hello"},
		},
		{
			name:    "overlap retained across window edge",
			window:  10,
			overlap: 3,
			text:    "abcdefghijklmno",
			want:    []string{"abcdefghij", "hijklmno", "o"},
		},
		{
			name:    "three windows",
			window:  10,
			overlap: 3,
			text:    "abcdefghijklmnopqrst",
			want:    []string{"abcdefghij", "hijklmnopq", "opqrst"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewChunker(tt.window, tt.overlap).ChunkText(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d chunks, got %d: %q", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("chunk %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestChunkTextAdjacentWindowsOverlap(t *testing.T) {
	text := strings.Repeat("x", 3000)
	chunks := NewChunker(1200, 200).ChunkText(text)

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if len(chunks[0]) != 1200 {
		t.Errorf("expected first chunk of 1200 chars, got %d", len(chunks[0]))
	}
	// Window starts advance by 1000, so the last chunk covers 2000..3000.
	if len(chunks[2]) != 1000 {
		t.Errorf("expected last chunk of 1000 chars, got %d", len(chunks[2]))
	}
}

func TestChunkTextNonAdvancingWindowTerminates(t *testing.T) {
	chunks := NewChunker(5, 5).ChunkText("abcdefghij")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "abcde" {
		t.Errorf("expected %q, got %q", "abcde", chunks[0])
	}
}
