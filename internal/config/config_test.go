package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Defaults.Model != "medium" {
		t.Errorf("default model = %s, want medium", cfg.Defaults.Model)
	}
	if cfg.Defaults.Format != "srt" {
		t.Errorf("default format = %s, want srt", cfg.Defaults.Format)
	}
	if cfg.Defaults.Language != "auto" {
		t.Errorf("default language = %s, want auto", cfg.Defaults.Language)
	}
	if cfg.Defaults.PageSize != 2000 {
		t.Errorf("default page size = %d, want 2000", cfg.Defaults.PageSize)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Defaults.Model != "medium" {
		t.Error("missing config file should yield defaults")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Defaults.Model = "tiny"
	cfg.Defaults.PageSize = 500
	cfg.Paths.WhisperBin = "/opt/whisper/main"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Defaults.Model != "tiny" {
		t.Errorf("loaded model = %s, want tiny", loaded.Defaults.Model)
	}
	if loaded.Defaults.PageSize != 500 {
		t.Errorf("loaded page size = %d, want 500", loaded.Defaults.PageSize)
	}
	if loaded.Paths.WhisperBin != "/opt/whisper/main" {
		t.Errorf("loaded whisper bin = %s", loaded.Paths.WhisperBin)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	// Overwrite with garbage
	if err := os.WriteFile(path, []byte("defaults: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on invalid yaml")
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"24h", 24 * time.Hour, false},
		{"7d", 7 * 24 * time.Hour, false},
		{"30d", 30 * 24 * time.Hour, false},
		{"1x", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDuration(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
