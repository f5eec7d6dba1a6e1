package cli

import (
	"strings"
	"testing"
)

func TestReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain path", "recordings/talk.mp3\n", "recordings/talk.mp3"},
		{"path with spaces", "My Recordings/team sync.wav\n", "My Recordings/team sync.wav"},
		{"surrounding whitespace trimmed", "  talk.mp3  \n", "talk.mp3"},
		{"no trailing newline", "talk.mp3", "talk.mp3"},
		{"empty input", "\n", ""},
		{"eof only", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readLine(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("readLine() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("readLine(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
