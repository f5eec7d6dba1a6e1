package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/devbush/scribepad/internal/adapters/cli/tui"
	"github.com/devbush/scribepad/internal/application"
	"github.com/devbush/scribepad/internal/domain"
)

var (
	batchFileFlag    string
	batchDirFlag     string
	batchOutputDir   string
	batchConcurrency int
)

// NewBatchCmd creates the batch command
func NewBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [audio-files...]",
		Short: "Transcribe multiple audio files",
		Long: `Transcribe multiple audio files concurrently and export each
transcript to the output directory without opening the editor.

Provide audio files as arguments, via a list file with --file, or by
scanning a folder with --dir.

Example:
  scribepad batch talk1.mp3 talk2.wav
  scribepad batch --dir ./recordings --format vtt
  scribepad batch --file sessions.txt --concurrency 2`,
		RunE: runBatch,
	}

	// Batch-specific flags
	cmd.Flags().StringVarP(&batchFileFlag, "file", "f", "", "File with audio paths (one per line)")
	cmd.Flags().StringVarP(&batchDirFlag, "dir", "d", "", "Folder to scan for audio files")
	cmd.Flags().StringVar(&batchOutputDir, "output-dir", ".", "Directory for exported transcripts")
	cmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 2, "Max concurrent transcriptions (max 8)")

	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	// Whisper is CPU-heavy, keep the pool small
	if batchConcurrency < 1 {
		batchConcurrency = 1
	}
	if batchConcurrency > 8 {
		batchConcurrency = 8
	}

	files, err := CollectInputs(args, batchFileFlag, batchDirFlag)
	if err != nil {
		return fmt.Errorf("failed to collect inputs: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no supported audio files provided (wav, mp3, ogg, m4a)")
	}

	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	format, err := resolveFormat(app)
	if err != nil {
		return err
	}

	return processBatch(context.Background(), app, files, format, batchOutputDir)
}

// runBatchDir runs a batch over a single folder, used by the
// interactive menu.
func runBatchDir(dir string) error {
	if dir == "" {
		fmt.Println("Cancelled")
		return nil
	}
	batchDirFlag = dir
	return runBatch(nil, nil)
}

func processBatch(ctx context.Context, app *App, files []string, format domain.Format, outputDir string) error {
	total := len(files)
	progress := tui.NewBatchProgress(total, quietFlag)

	var results []BatchResult
	var resultsMu sync.Mutex

	// Worker pool using semaphore pattern
	sem := make(chan struct{}, batchConcurrency)
	var wg sync.WaitGroup

	for _, file := range files {
		wg.Add(1)
		sem <- struct{}{}

		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()

			result := processOneFile(ctx, app, path, format, outputDir)

			resultsMu.Lock()
			results = append(results, result)
			resultsMu.Unlock()

			progress.AddResult(filepath.Base(path), result.Success, result.Error, result.Duration, result.Cached)
		}(file)
	}

	wg.Wait()

	progress.Complete()

	failCount := countFailed(results)
	if failCount > 0 {
		return fmt.Errorf("%d of %d files failed", failCount, total)
	}

	return nil
}

func processOneFile(ctx context.Context, app *App, path string, format domain.Format, outputDir string) BatchResult {
	start := time.Now()

	makeResult := func(success bool, errMsg string, cached bool) BatchResult {
		return BatchResult{
			Path:     path,
			Success:  success,
			Error:    errMsg,
			Duration: time.Since(start),
			Cached:   cached,
		}
	}

	result, err := app.TranscribeSvc.Transcribe(ctx, path, application.TranscribeOptions{
		Model:    modelFlag,
		Language: languageFlag,
		NoCache:  noCacheFlag,
	})
	if err != nil {
		return makeResult(false, err.Error(), false)
	}

	outPath := filepath.Join(outputDir, application.DefaultFilename(result.SourceName, format))
	if _, err := app.ExportSvc.Export(result.Transcript, result.SourceName, format, outPath); err != nil {
		return makeResult(false, fmt.Sprintf("failed to export: %v", err), result.FromCache)
	}

	return makeResult(true, "", result.FromCache)
}

func countFailed(results []BatchResult) int {
	count := 0
	for _, r := range results {
		if !r.Success {
			count++
		}
	}
	return count
}
