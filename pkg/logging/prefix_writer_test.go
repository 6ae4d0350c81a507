package logging

import (
	"bytes"
	"testing"
)

func TestPrefixWriter_Lines(t *testing.T) {
	tests := []struct {
		name     string
		writes   []string
		expected string
	}{
		{
			name:     "single line",
			writes:   []string{"hello\n"},
			expected: ">> hello\n",
		},
		{
			name:     "two lines in one write",
			writes:   []string{"a\nb\n"},
			expected: ">> a\n>> b\n",
		},
		{
			name:     "line split across writes",
			writes:   []string{"par", "tial\n"},
			expected: ">> partial\n",
		},
		{
			name:     "trailing partial line is held back",
			writes:   []string{"done\nnot yet"},
			expected: ">> done\n",
		},
		{
			name:     "empty write",
			writes:   []string{""},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			pw := NewPrefixWriter(">> ", &out)
			for _, w := range tt.writes {
				n, err := pw.Write([]byte(w))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if n != len(w) {
					t.Errorf("Write reported %d bytes, want %d", n, len(w))
				}
			}
			if out.String() != tt.expected {
				t.Errorf("output = %q, want %q", out.String(), tt.expected)
			}
		})
	}
}
