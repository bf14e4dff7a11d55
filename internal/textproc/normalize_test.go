package textproc

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "typographic apostrophe",
			input: "it’s a ‘test’",
			want:  "it's a 'test'",
		},
		{
			name:  "typographic quotes and dashes",
			input: "“quoted” — em – en",
			want:  `"quoted" - em - en`,
		},
		{
			name:  "collapses horizontal whitespace",
			input: "a  \t  b",
			want:  "a b",
		},
		{
			name:  "collapses newline runs to two",
			input: "para one\n\n\n\n\npara two",
			want:  "para one\n\npara two",
		},
		{
			name:  "preserves single blank line",
			input: "para one\n\npara two",
			want:  "para one\n\npara two",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  \n hello world \t\n ",
			want:  "hello world",
		},
		{
			name:  "windows line endings",
			input: "a\r\nb\r\n\r\n\r\nc",
			want:  "a\nb\n\nc",
		},
		{
			name:  "trailing spaces before newlines",
			input: "a   \n\n   \n\nb",
			want:  "a\n\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"it’s   messy — text\n\n\n\nwith runs",
		"  leading and trailing  ",
		"multi\nline\n\n\ntext\t\twith\ttabs",
		" “mixed” – everything\r\n\r\n\r\nat once ",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first=%q second=%q", input, once, twice)
		}
	}
}
