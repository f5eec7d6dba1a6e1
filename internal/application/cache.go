package application

import (
	"context"

	"github.com/devbush/scribepad/internal/ports"
)

// CacheStats summarizes the transcript cache
type CacheStats struct {
	Entries   int
	TotalSize int64
}

// CacheService manages the transcript cache
type CacheService struct {
	store ports.TranscriptStore
}

// NewCacheService creates a new cache service
func NewCacheService(store ports.TranscriptStore) *CacheService {
	return &CacheService{store: store}
}

// Stats returns cache statistics
func (s *CacheService) Stats(ctx context.Context) (*CacheStats, error) {
	entries, size, err := s.store.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &CacheStats{Entries: entries, TotalSize: size}, nil
}

// CleanExpired removes expired entries, returning the count removed
func (s *CacheService) CleanExpired(ctx context.Context) (int, error) {
	return s.store.CleanExpired(ctx)
}

// Clear removes all cached transcripts
func (s *CacheService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
