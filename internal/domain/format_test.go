package domain

import "testing"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"srt", FormatSRT, false},
		{"SRT", FormatSRT, false},
		{"txt", FormatTXT, false},
		{"text", FormatTXT, false},
		{"vtt", FormatVTT, false},
		{" vtt ", FormatVTT, false},
		{"docx", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatExtension(t *testing.T) {
	if got := FormatSRT.Extension(); got != "srt" {
		t.Errorf("Extension() = %s, want srt", got)
	}
	if got := FormatVTT.MIMEType(); got != "text/plain" {
		t.Errorf("MIMEType() = %s, want text/plain", got)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"auto", ""},
		{"", ""},
		{"Automatic Detection", ""},
		{"English", "en"},
		{"en", "en"},
		{"Chinese", "zh"},
		{"zh", "zh"},
		{"FR", "fr"},
	}

	for _, tt := range tests {
		if got := NormalizeLanguage(tt.input); got != tt.want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsSupportedAudio(t *testing.T) {
	supported := []string{"a.wav", "b.MP3", "dir/c.ogg", "d.m4a"}
	for _, p := range supported {
		if !IsSupportedAudio(p) {
			t.Errorf("IsSupportedAudio(%q) = false, want true", p)
		}
	}

	unsupported := []string{"a.flac", "b.mp4", "c", "d.txt"}
	for _, p := range unsupported {
		if IsSupportedAudio(p) {
			t.Errorf("IsSupportedAudio(%q) = true, want false", p)
		}
	}
}
