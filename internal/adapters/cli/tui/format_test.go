package tui

import "testing"

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1536, "1.5 KB"},
		{140 * 1024 * 1024, "140.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatBytes(tt.input); got != tt.want {
				t.Errorf("FormatBytes(%d) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatTimecode(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "00:00:00"},
		{59.9, "00:00:59"},
		{3725.5, "01:02:05"},
		{-5, "00:00:00"},
	}

	for _, tt := range tests {
		if got := FormatTimecode(tt.input); got != tt.want {
			t.Errorf("FormatTimecode(%v) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate() = %q, want unchanged", got)
	}
	if got := Truncate("a rather long caption", 10); got != "a rathe..." {
		t.Errorf("Truncate() = %q", got)
	}
	if len(Truncate("a rather long caption", 10)) != 10 {
		t.Error("Truncate() should respect maxLen")
	}
}
