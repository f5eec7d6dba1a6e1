package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/devbush/scribepad/internal/domain"
	"github.com/devbush/scribepad/internal/logging"
	"github.com/devbush/scribepad/internal/ports"
)

// Mock implementations for testing
type mockStore struct {
	items map[string]*ports.CachedTranscript
}

func newMockStore() *mockStore {
	return &mockStore{items: make(map[string]*ports.CachedTranscript)}
}

func (m *mockStore) Get(ctx context.Context, key string) (*ports.CachedTranscript, error) {
	if item, ok := m.items[key]; ok {
		return item, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *mockStore) Set(ctx context.Context, key string, item *ports.CachedTranscript) error {
	m.items[key] = item
	return nil
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	delete(m.items, key)
	return nil
}

func (m *mockStore) CleanExpired(ctx context.Context) (int, error) { return 0, nil }
func (m *mockStore) Clear(ctx context.Context) error               { return nil }
func (m *mockStore) Stats(ctx context.Context) (int, int64, error) {
	return len(m.items), 0, nil
}

type mockTranscriber struct {
	calls    int
	lastOpts ports.TranscribeOpts
	err      error
}

func (m *mockTranscriber) Transcribe(ctx context.Context, audioPath string, opts ports.TranscribeOpts) (*domain.Transcript, error) {
	m.calls++
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Transcript{
		Text: "Hello world transcription",
		Segments: []domain.Segment{
			{Start: 0, End: 3.5, Text: "Hello world transcription"},
		},
		Model:         opts.Model,
		TranscribedAt: time.Now(),
	}, nil
}

func (m *mockTranscriber) IsAvailable() bool                 { return true }
func (m *mockTranscriber) AvailableModels() []ports.Model    { return nil }
func (m *mockTranscriber) IsModelDownloaded(mod string) bool { return true }
func (m *mockTranscriber) DownloadModel(ctx context.Context, model string, progress func(int64, int64)) error {
	return nil
}
func (m *mockTranscriber) DeleteModel(model string) error { return nil }

func newTestService(fs afero.Fs, store ports.TranscriptStore, tr ports.Transcriber) *TranscribeService {
	return NewTranscribeService(fs, store, tr, 24*time.Hour, logging.Nop())
}

func writeAudio(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestTranscribeService_Transcribe(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeAudio(t, fs, "/audio/talk.mp3", "fake audio bytes")

	store := newMockStore()
	transcriber := &mockTranscriber{}
	svc := newTestService(fs, store, transcriber)

	ctx := context.Background()
	result, err := svc.Transcribe(ctx, "/audio/talk.mp3", TranscribeOptions{Model: "small"})

	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if result.Transcript.Text != "Hello world transcription" {
		t.Errorf("Transcript text = %s, want 'Hello world transcription'", result.Transcript.Text)
	}
	if result.FromCache {
		t.Error("FromCache should be false for fresh transcription")
	}
	if result.SourceName != "talk.mp3" {
		t.Errorf("SourceName = %s, want talk.mp3", result.SourceName)
	}

	// Verify it was cached
	if len(store.items) != 1 {
		t.Errorf("cache has %d items, want 1", len(store.items))
	}
}

func TestTranscribeService_CacheHit(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeAudio(t, fs, "/audio/talk.mp3", "fake audio bytes")

	store := newMockStore()
	transcriber := &mockTranscriber{}
	svc := newTestService(fs, store, transcriber)

	ctx := context.Background()

	// First run populates the cache
	if _, err := svc.Transcribe(ctx, "/audio/talk.mp3", TranscribeOptions{}); err != nil {
		t.Fatal(err)
	}

	// Second run must come from cache
	result, err := svc.Transcribe(ctx, "/audio/talk.mp3", TranscribeOptions{})
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if !result.FromCache {
		t.Error("FromCache should be true for repeat run")
	}
	if transcriber.calls != 1 {
		t.Errorf("transcriber called %d times, want 1", transcriber.calls)
	}
}

func TestTranscribeService_NoCacheBypass(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeAudio(t, fs, "/audio/talk.mp3", "fake audio bytes")

	store := newMockStore()
	transcriber := &mockTranscriber{}
	svc := newTestService(fs, store, transcriber)

	ctx := context.Background()
	svc.Transcribe(ctx, "/audio/talk.mp3", TranscribeOptions{})

	result, err := svc.Transcribe(ctx, "/audio/talk.mp3", TranscribeOptions{NoCache: true})
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if result.FromCache {
		t.Error("FromCache should be false when NoCache is set")
	}
	if transcriber.calls != 2 {
		t.Errorf("transcriber called %d times, want 2", transcriber.calls)
	}
}

func TestTranscribeService_LanguageNormalized(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeAudio(t, fs, "/audio/talk.wav", "fake audio bytes")

	store := newMockStore()
	transcriber := &mockTranscriber{}
	svc := newTestService(fs, store, transcriber)

	_, err := svc.Transcribe(context.Background(), "/audio/talk.wav", TranscribeOptions{Language: "English"})
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if transcriber.lastOpts.Language != "en" {
		t.Errorf("language passed to transcriber = %q, want en", transcriber.lastOpts.Language)
	}

	writeAudio(t, fs, "/audio/auto.wav", "other audio bytes")
	svc.Transcribe(context.Background(), "/audio/auto.wav", TranscribeOptions{Language: "auto"})
	if transcriber.lastOpts.Language != "" {
		t.Errorf("auto language should pass no hint, got %q", transcriber.lastOpts.Language)
	}
}

func TestTranscribeService_UnsupportedAudio(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeAudio(t, fs, "/audio/talk.flac", "fake audio bytes")

	svc := newTestService(fs, newMockStore(), &mockTranscriber{})

	_, err := svc.Transcribe(context.Background(), "/audio/talk.flac", TranscribeOptions{})
	if !errors.Is(err, domain.ErrUnsupportedAudio) {
		t.Errorf("Transcribe() error = %v, want ErrUnsupportedAudio", err)
	}
}

func TestTranscribeService_MissingAudio(t *testing.T) {
	fs := afero.NewMemMapFs()
	svc := newTestService(fs, newMockStore(), &mockTranscriber{})

	_, err := svc.Transcribe(context.Background(), "/audio/missing.wav", TranscribeOptions{})
	if !errors.Is(err, domain.ErrAudioNotFound) {
		t.Errorf("Transcribe() error = %v, want ErrAudioNotFound", err)
	}
}

func TestTranscribeService_TranscriberError(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeAudio(t, fs, "/audio/talk.mp3", "fake audio bytes")

	store := newMockStore()
	transcriber := &mockTranscriber{err: domain.ErrTranscriptionFailed}
	svc := newTestService(fs, store, transcriber)

	_, err := svc.Transcribe(context.Background(), "/audio/talk.mp3", TranscribeOptions{})
	if !errors.Is(err, domain.ErrTranscriptionFailed) {
		t.Errorf("Transcribe() error = %v, want ErrTranscriptionFailed", err)
	}

	// A failed run must not pollute the cache
	if len(store.items) != 0 {
		t.Errorf("cache has %d items after failure, want 0", len(store.items))
	}
}
