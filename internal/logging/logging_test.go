package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level string
		quiet bool
		want  zerolog.Level
	}{
		{"debug", false, zerolog.DebugLevel},
		{"info", false, zerolog.InfoLevel},
		{"warn", false, zerolog.WarnLevel},
		{"nonsense", false, zerolog.InfoLevel},
		{"debug", true, zerolog.WarnLevel},
		{"error", true, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := New(tt.level, tt.quiet)
			if l.GetLevel() != tt.want {
				t.Errorf("New(%q, quiet=%v) level = %s, want %s", tt.level, tt.quiet, l.GetLevel(), tt.want)
			}
		})
	}
}
