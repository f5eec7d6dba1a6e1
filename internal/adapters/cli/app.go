package cli

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/devbush/scribepad/internal/adapters/cache"
	"github.com/devbush/scribepad/internal/adapters/whisper"
	"github.com/devbush/scribepad/internal/application"
	"github.com/devbush/scribepad/internal/config"
	"github.com/devbush/scribepad/internal/logging"
	"github.com/devbush/scribepad/internal/ports"
)

// App holds all application dependencies
type App struct {
	Config      *config.Config
	Log         zerolog.Logger
	Store       ports.TranscriptStore
	Transcriber *whisper.Transcriber

	TranscribeSvc *application.TranscribeService
	ExportSvc     *application.ExportService
	CacheSvc      *application.CacheService
}

// NewApp creates and wires up all dependencies
func NewApp() (*App, error) {
	// Ensure directories exist
	if err := config.EnsureDirs(); err != nil {
		return nil, err
	}

	// Load config
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}

	log := logging.New(cfg.Logging.Level, quietFlag)

	// Parse cache TTL
	ttlStr := cfg.Defaults.CacheTTL
	if cacheTTLFlag != "" {
		ttlStr = cacheTTLFlag
	}
	ttl, err := config.ParseDuration(ttlStr)
	if err != nil {
		ttl = 7 * 24 * time.Hour // Default
	}

	fs := afero.NewOsFs()

	// Create adapters
	store := cache.NewFileCache(fs, config.CacheDir(), ttl)
	transcriber := whisper.NewTranscriber("", cfg.Paths.WhisperBin, log)

	// Create services
	transcribeSvc := application.NewTranscribeService(fs, store, transcriber, ttl, log)
	exportSvc := application.NewExportService(fs, log)
	cacheSvc := application.NewCacheService(store)

	return &App{
		Config:        cfg,
		Log:           log,
		Store:         store,
		Transcriber:   transcriber,
		TranscribeSvc: transcribeSvc,
		ExportSvc:     exportSvc,
		CacheSvc:      cacheSvc,
	}, nil
}

var globalApp *App

// GetApp returns the global app instance, creating it if needed
func GetApp() (*App, error) {
	if globalApp == nil {
		app, err := NewApp()
		if err != nil {
			return nil, err
		}
		globalApp = app
	}
	return globalApp, nil
}
