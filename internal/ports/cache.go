package ports

import (
	"context"
	"time"

	"github.com/devbush/scribepad/internal/domain"
)

// CachedTranscript is a stored transcription result keyed by the
// content hash of its source audio
type CachedTranscript struct {
	Key        string             `json:"key"`
	SourceName string             `json:"source_name"`
	Transcript *domain.Transcript `json:"transcript"`
	CreatedAt  time.Time          `json:"created_at"`
	ExpiresAt  time.Time          `json:"expires_at"`
}

// TranscriptStore caches transcription results
type TranscriptStore interface {
	// Get returns the cached transcript for a content hash key
	Get(ctx context.Context, key string) (*CachedTranscript, error)

	// Set stores a transcript under a content hash key
	Set(ctx context.Context, key string, item *CachedTranscript) error

	// Delete removes a cached transcript
	Delete(ctx context.Context, key string) error

	// CleanExpired removes expired entries, returning the count removed
	CleanExpired(ctx context.Context) (int, error)

	// Clear removes all entries
	Clear(ctx context.Context) error

	// Stats returns entry count and total size in bytes
	Stats(ctx context.Context) (int, int64, error)
}
