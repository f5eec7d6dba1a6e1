package domain

import "errors"

var (
	// Transcription errors
	ErrTranscriptionFailed = errors.New("transcription failed")
	ErrModelNotFound       = errors.New("model not found")
	ErrWhisperNotFound     = errors.New("whisper binary not found (install whisper.cpp)")

	// Input errors
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrUnsupportedAudio  = errors.New("unsupported audio format (use wav, mp3, ogg or m4a)")
	ErrAudioNotFound     = errors.New("audio file not found")

	// Cache errors
	ErrCacheExpired = errors.New("cache expired")
	ErrCacheMiss    = errors.New("cache miss")

	// Edit session errors
	ErrPageOutOfRange = errors.New("page index out of range")
)
