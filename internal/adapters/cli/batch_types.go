package cli

import "time"

// BatchResult represents the outcome of transcribing one file in a batch
type BatchResult struct {
	Path     string
	Success  bool
	Error    string
	Duration time.Duration
	Cached   bool // true if the transcript came from cache
}
