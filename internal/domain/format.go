package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an output format for a transcript
type Format string

const (
	FormatSRT Format = "srt"
	FormatTXT Format = "txt"
	FormatVTT Format = "vtt"
)

// Formats lists all supported output formats
func Formats() []Format {
	return []Format{FormatSRT, FormatTXT, FormatVTT}
}

// ParseFormat converts a user-supplied format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "srt":
		return FormatSRT, nil
	case "txt", "text":
		return FormatTXT, nil
	case "vtt":
		return FormatVTT, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
	}
}

// Extension returns the file extension for the format (no dot)
func (f Format) Extension() string {
	return string(f)
}

// MIMEType returns the MIME type of the exported artifact. All
// formats export as plain text.
func (f Format) MIMEType() string {
	return "text/plain"
}

func (f Format) String() string {
	return string(f)
}

// NormalizeLanguage maps a language selection to a whisper language
// code. "auto" (or empty) means no hint; other values pass through
// lower-cased so ISO codes work directly.
func NormalizeLanguage(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "automatic detection":
		return ""
	case "en", "english":
		return "en"
	case "zh", "chinese":
		return "zh"
	default:
		return strings.ToLower(strings.TrimSpace(s))
	}
}

// Audio extensions the transcriber accepts
var audioExtensions = map[string]bool{
	".wav": true,
	".mp3": true,
	".ogg": true,
	".m4a": true,
}

// IsSupportedAudio reports whether the path has a supported audio
// extension (WAV, MP3, OGG, M4A)
func IsSupportedAudio(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}
