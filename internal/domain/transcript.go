package domain

import (
	"fmt"
	"strings"
	"time"
)

// Segment represents a timed segment of transcribed text
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript represents the full transcription result
type Transcript struct {
	Text          string    `json:"text"`
	Segments      []Segment `json:"segments"`
	Model         string    `json:"model"`
	Language      string    `json:"language"`
	TranscribedAt time.Time `json:"transcribed_at"`
}

// ToText returns the model's concatenated text, untouched
func (t *Transcript) ToText() string {
	if t.Text != "" {
		return t.Text
	}

	var parts []string
	for _, seg := range t.Segments {
		parts = append(parts, strings.TrimSpace(seg.Text))
	}
	return strings.Join(parts, " ")
}

// ToSRT returns the transcript in SRT subtitle format
func (t *Transcript) ToSRT() string {
	var sb strings.Builder

	for i, seg := range t.Segments {
		// Sequence number
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		// Timestamps
		sb.WriteString(fmt.Sprintf("%s --> %s\n", FormatTimestamp(seg.Start, FormatSRT), FormatTimestamp(seg.End, FormatSRT)))
		// Text
		sb.WriteString(strings.TrimSpace(seg.Text))
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// ToVTT returns the transcript as bare WebVTT cues. Cues carry no
// sequence numbers; otherwise the layout matches SRT.
func (t *Transcript) ToVTT() string {
	var sb strings.Builder

	for _, seg := range t.Segments {
		sb.WriteString(fmt.Sprintf("%s --> %s\n", FormatTimestamp(seg.Start, FormatVTT), FormatTimestamp(seg.End, FormatVTT)))
		sb.WriteString(strings.TrimSpace(seg.Text))
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// Render returns the transcript in the given format
func (t *Transcript) Render(f Format) (string, error) {
	switch f {
	case FormatTXT:
		return t.ToText(), nil
	case FormatSRT:
		return t.ToSRT(), nil
	case FormatVTT:
		return t.ToVTT(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// FormatTimestamp converts seconds to a subtitle timestamp:
// HH:MM:SS,mmm for SRT, HH:MM:SS.mmm for VTT. Hours never wrap.
func FormatTimestamp(seconds float64, f Format) string {
	if seconds < 0 {
		seconds = 0
	}

	// Round once on total milliseconds so a value like 59.9995 carries
	// into the next second instead of printing SS=60.
	totalMillis := int64(seconds*1000 + 0.5)

	hours := totalMillis / 3600000
	minutes := (totalMillis % 3600000) / 60000
	secs := (totalMillis % 60000) / 1000
	millis := totalMillis % 1000

	sep := ","
	if f == FormatVTT {
		sep = "."
	}

	return fmt.Sprintf("%02d:%02d:%02d%s%03d", hours, minutes, secs, sep, millis)
}

// Duration returns the end time of the last segment in seconds
func (t *Transcript) Duration() float64 {
	if len(t.Segments) == 0 {
		return 0
	}
	return t.Segments[len(t.Segments)-1].End
}
