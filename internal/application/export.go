package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/devbush/scribepad/internal/domain"
)

// ExportService writes rendered transcripts to disk
type ExportService struct {
	fs  afero.Fs
	log zerolog.Logger
}

// NewExportService creates a new export service
func NewExportService(fs afero.Fs, log zerolog.Logger) *ExportService {
	return &ExportService{fs: fs, log: log}
}

// DefaultFilename derives the export path from the audio source name:
// base name plus the lower-cased format extension.
func DefaultFilename(sourceName string, f domain.Format) string {
	base := filepath.Base(sourceName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "transcript"
	}
	return base + "." + f.Extension()
}

// Export renders the transcript in the given format and writes it to
// path. An empty path derives the filename from the source name.
func (s *ExportService) Export(transcript *domain.Transcript, sourceName string, f domain.Format, path string) (string, error) {
	content, err := transcript.Render(f)
	if err != nil {
		return "", err
	}
	return s.write(content, sourceName, f, path)
}

// ExportDocument writes an already-assembled (possibly edited)
// document. The document structure is whatever the editor produced;
// only the extension follows the format.
func (s *ExportService) ExportDocument(content, sourceName string, f domain.Format, path string) (string, error) {
	return s.write(content, sourceName, f, path)
}

func (s *ExportService) write(content, sourceName string, f domain.Format, path string) (string, error) {
	if path == "" {
		path = DefaultFilename(sourceName, f)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := afero.WriteFile(s.fs, path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write transcript: %w", err)
	}

	s.log.Debug().Str("path", path).Str("format", f.String()).Int("bytes", len(content)).Msg("exported transcript")
	return path, nil
}
