package tui

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// renderProgressBar creates a text progress bar like [=====>    ]
func renderProgressBar(current, total, width int) string {
	if total <= 0 {
		return "[" + strings.Repeat(" ", width) + "]"
	}

	var bar strings.Builder
	bar.WriteString("[")

	if current >= total {
		bar.WriteString(strings.Repeat("=", width))
	} else if current == 0 {
		bar.WriteString(strings.Repeat(" ", width))
	} else {
		ratio := float64(current) / float64(total)
		arrowPos := int(ratio*float64(width) + 0.5)
		if arrowPos < 1 {
			arrowPos = 1
		}
		if arrowPos > width {
			arrowPos = width
		}

		equals := arrowPos - 1
		if ratio >= 0.5 {
			equals = arrowPos
		}
		if equals > width-1 {
			equals = width - 1
		}

		spaces := width - equals - 1
		if spaces < 0 {
			spaces = 0
		}

		bar.WriteString(strings.Repeat("=", equals))
		bar.WriteString(">")
		bar.WriteString(strings.Repeat(" ", spaces))
	}

	bar.WriteString("]")
	return bar.String()
}

// FileResult represents the outcome of transcribing a single file
type FileResult struct {
	Path     string
	Success  bool
	ErrMsg   string
	Duration time.Duration
	Cached   bool
}

// BatchProgress manages batch processing progress display
type BatchProgress struct {
	total     int
	completed int
	results   []FileResult
	failures  []FileResult
	quiet     bool
	mu        sync.Mutex
	rendered  bool
}

// NewBatchProgress creates a new batch progress display
func NewBatchProgress(total int, quiet bool) *BatchProgress {
	if total < 0 {
		total = 0
	}
	return &BatchProgress{
		total:    total,
		results:  make([]FileResult, 0),
		failures: make([]FileResult, 0),
		quiet:    quiet,
	}
}

// AddResult adds a result and updates the display
func (bp *BatchProgress) AddResult(path string, success bool, errMsg string, duration time.Duration, cached bool) {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	result := FileResult{
		Path:     path,
		Success:  success,
		ErrMsg:   errMsg,
		Duration: duration,
		Cached:   cached,
	}

	bp.results = append(bp.results, result)
	bp.completed++

	if !success {
		bp.failures = append(bp.failures, result)
	}

	bp.render()
}

func (bp *BatchProgress) render() {
	if bp.quiet {
		return
	}

	// Progress line plus up to 10 recent results
	linesToClear := 1 + min(len(bp.results), 10)
	if bp.rendered && linesToClear > 0 {
		fmt.Printf("\033[%dA", linesToClear)
		fmt.Print("\033[J")
	}

	percent := 0
	if bp.total > 0 {
		percent = (bp.completed * 100) / bp.total
	}
	progressBar := renderProgressBar(bp.completed, bp.total, 20)
	fmt.Printf("Transcribing %d/%d files %s %d%%\n", bp.completed, bp.total, progressBar, percent)

	startIdx := 0
	if len(bp.results) > 10 {
		startIdx = len(bp.results) - 10
	}

	for i := startIdx; i < len(bp.results); i++ {
		result := bp.results[i]
		name := Truncate(result.Path, 50)
		if result.Success {
			cached := ""
			if result.Cached {
				cached = " [cached]"
			}
			fmt.Printf("✓ %s (%.1fs)%s\n", name, result.Duration.Seconds(), cached)
		} else {
			fmt.Printf("✗ %s: %s\n", name, result.ErrMsg)
		}
	}

	bp.rendered = true
}

// Complete prints the final summary
func (bp *BatchProgress) Complete() {
	if bp.quiet {
		return
	}

	bp.mu.Lock()
	completed := bp.completed
	total := bp.total
	failures := make([]FileResult, len(bp.failures))
	copy(failures, bp.failures)
	bp.mu.Unlock()

	succeeded := completed - len(failures)

	fmt.Println()
	fmt.Printf("Batch complete: %d/%d succeeded\n", succeeded, total)

	if len(failures) > 0 {
		fmt.Println("\nFailures:")
		for _, f := range failures {
			fmt.Printf("  ✗ %s: %s\n", f.Path, f.ErrMsg)
		}
	}
}

// GetSuccessCount returns the number of successful results
func (bp *BatchProgress) GetSuccessCount() int {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	return bp.completed - len(bp.failures)
}

// GetFailureCount returns the number of failed results
func (bp *BatchProgress) GetFailureCount() int {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	return len(bp.failures)
}
