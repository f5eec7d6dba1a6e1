package application

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/devbush/scribepad/internal/adapters/cache"
	"github.com/devbush/scribepad/internal/domain"
	"github.com/devbush/scribepad/internal/ports"
)

// TranscribeOptions configures the transcription
type TranscribeOptions struct {
	Model    string
	Language string // empty or "auto" for auto-detect
	NoCache  bool
}

// TranscribeResult contains the transcription result
type TranscribeResult struct {
	Transcript *domain.Transcript
	SourceName string
	FromCache  bool
}

// TranscribeService orchestrates the transcription process
type TranscribeService struct {
	fs          afero.Fs
	store       ports.TranscriptStore
	transcriber ports.Transcriber
	cacheTTL    time.Duration
	tempDir     string
	log         zerolog.Logger
}

// NewTranscribeService creates a new transcription service
func NewTranscribeService(
	fs afero.Fs,
	store ports.TranscriptStore,
	transcriber ports.Transcriber,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *TranscribeService {
	return &TranscribeService{
		fs:          fs,
		store:       store,
		transcriber: transcriber,
		cacheTTL:    cacheTTL,
		tempDir:     os.TempDir(),
		log:         log,
	}
}

// Transcribe runs an audio file through the model and returns its
// transcript. The audio is staged into a temporary copy that is
// removed on every exit path.
func (s *TranscribeService) Transcribe(ctx context.Context, audioPath string, opts TranscribeOptions) (*TranscribeResult, error) {
	if !domain.IsSupportedAudio(audioPath) {
		return nil, domain.ErrUnsupportedAudio
	}

	key, err := cache.HashFile(s.fs, audioPath)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := s.log.With().Str("run", runID).Str("audio", filepath.Base(audioPath)).Logger()

	// Check cache first (unless bypassed)
	if !opts.NoCache {
		cached, err := s.store.Get(ctx, key)
		if err == nil {
			log.Debug().Str("key", key).Msg("cache hit")
			return &TranscribeResult{
				Transcript: cached.Transcript,
				SourceName: cached.SourceName,
				FromCache:  true,
			}, nil
		}
	}

	// Stage the audio into a temp file so the model never touches the
	// user's copy
	tempPath, err := s.stageAudio(audioPath, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to stage audio: %w", err)
	}
	defer os.Remove(tempPath)

	model := opts.Model
	if model == "" {
		model = "medium"
	}
	language := domain.NormalizeLanguage(opts.Language)

	log.Debug().Str("model", model).Str("language", language).Msg("transcribing")

	transcript, err := s.transcriber.Transcribe(ctx, tempPath, ports.TranscribeOpts{
		Model:    model,
		Language: language,
	})
	if err != nil {
		return nil, err
	}

	// Cache result (failures are non-fatal)
	now := time.Now()
	item := &ports.CachedTranscript{
		Key:        key,
		SourceName: filepath.Base(audioPath),
		Transcript: transcript,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.cacheTTL),
	}
	if err := s.store.Set(ctx, key, item); err != nil {
		log.Warn().Err(err).Msg("failed to cache transcript")
	}

	return &TranscribeResult{
		Transcript: transcript,
		SourceName: filepath.Base(audioPath),
		FromCache:  false,
	}, nil
}

// stageAudio copies the source into a uniquely named temp file,
// keeping the original extension so whisper recognizes the container.
func (s *TranscribeService) stageAudio(audioPath, runID string) (string, error) {
	src, err := s.fs.Open(audioPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrAudioNotFound
		}
		return "", err
	}
	defer src.Close()

	tempPath := filepath.Join(s.tempDir, "scribepad_"+runID+filepath.Ext(audioPath))
	dst, err := os.Create(tempPath)
	if err != nil {
		return "", err
	}

	_, err = io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tempPath)
		return "", err
	}

	return tempPath, nil
}
