package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devbush/scribepad/internal/adapters/cli/tui"
	"github.com/devbush/scribepad/internal/application"
	"github.com/devbush/scribepad/internal/domain"
	"github.com/devbush/scribepad/internal/version"
)

var (
	// Global flags
	formatFlag   string
	modelFlag    string
	languageFlag string
	outputFlag   string
	pageSizeFlag int
	cacheTTLFlag string
	noCacheFlag  bool
	noEditFlag   bool
	quietFlag    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scribepad [audio-file]",
		Short: "Transcribe and edit audio transcripts",
		Long: `scribepad transcribes an audio file (WAV, MP3, OGG, M4A) with a
Whisper model, opens a paginated editor for the transcript, and exports
it as SRT, VTT or plain text.

Provide an audio file to transcribe it, or run without arguments for an
interactive menu.`,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runRoot,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "Output format: srt, vtt, txt")
	rootCmd.PersistentFlags().StringVar(&modelFlag, "model", "", "Whisper model: tiny, base, small, medium, large")
	rootCmd.PersistentFlags().StringVarP(&languageFlag, "language", "l", "", "Language hint (auto, en, zh, ...)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output file path")
	rootCmd.PersistentFlags().IntVar(&pageSizeFlag, "page-size", 0, "Characters per editor page")
	rootCmd.PersistentFlags().StringVar(&cacheTTLFlag, "cache-ttl", "", "Cache lifetime (e.g., 24h, 7d)")
	rootCmd.PersistentFlags().BoolVar(&noCacheFlag, "no-cache", false, "Skip cache")
	rootCmd.PersistentFlags().BoolVar(&noEditFlag, "no-edit", false, "Skip the editor, write the rendered transcript directly")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress progress output")

	// Add subcommands
	rootCmd.AddCommand(NewBatchCmd())
	rootCmd.AddCommand(NewModelCmd())
	rootCmd.AddCommand(NewCacheCmd())

	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		// No arguments - show interactive menu
		return runInteractiveMenu()
	}

	return runTranscribe(args[0], nil)
}

func runInteractiveMenu() error {
	options := []tui.MenuOption{
		{Label: "Transcribe an audio file", Value: "transcribe"},
		{Label: "Batch transcribe a folder", Value: "batch"},
		{Label: "Manage models", Value: "models"},
		{Label: "Manage cache", Value: "cache"},
	}

	selected, err := tui.RunMenu("What would you like to do?", options)
	if err != nil {
		return err
	}

	switch selected {
	case "transcribe":
		return runTranscribeInteractive()
	case "batch":
		fmt.Print("Enter folder path: ")
		dir, err := readLine(os.Stdin)
		if err != nil {
			return err
		}
		return runBatchDir(dir)
	case "models":
		return runModelsInteractive()
	case "cache":
		return runCacheStats(nil, nil)
	case "":
		fmt.Println("Cancelled")
	}

	return nil
}

func runTranscribeInteractive() error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	fmt.Print("Enter audio file path: ")
	input, err := readLine(os.Stdin)
	if err != nil {
		return err
	}
	if input == "" {
		fmt.Println("Cancelled")
		return nil
	}

	defaultFormat := app.Config.Defaults.Format
	if formatFlag != "" {
		defaultFormat = formatFlag
	}

	selected, err := tui.RunFormatSelector(defaultFormat)
	if err != nil {
		return err
	}
	if selected == nil {
		fmt.Println("Cancelled")
		return nil
	}

	var formats []domain.Format
	for _, s := range selected {
		f, err := domain.ParseFormat(s)
		if err != nil {
			return err
		}
		formats = append(formats, f)
	}

	return runTranscribe(input, formats)
}

// runTranscribe transcribes one file. extraFormats, when set, lists
// every format to export; the first one is the one opened in the
// editor. With nil, the format flag (or config default) applies.
func runTranscribe(audioPath string, extraFormats []domain.Format) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	format, err := resolveFormat(app)
	if err != nil {
		return err
	}
	if len(extraFormats) > 0 {
		format = extraFormats[0]
	}

	model := modelFlag
	if model == "" {
		model = app.Config.Defaults.Model
	}
	language := languageFlag
	if language == "" {
		language = app.Config.Defaults.Language
	}

	steps := []string{"Checking model", "Transcribing"}
	progress := tui.NewProgressDisplay(steps, quietFlag)

	// Step 1: make sure the model and binary are in place
	progress.StartStep(0)

	if !app.Transcriber.IsAvailable() {
		progress.FailStep(0, "whisper.cpp not found")
		return domain.ErrWhisperNotFound
	}

	if !app.Transcriber.IsModelDownloaded(model) {
		if err := app.Transcriber.DownloadModel(context.Background(), model, func(d, t int64) {
			progress.UpdateProgress(0, d, t)
		}); err != nil {
			progress.FailStep(0, err.Error())
			return fmt.Errorf("failed to download model: %w", err)
		}
	}
	progress.CompleteStep(0)

	// Step 2: transcribe (spinner while the model runs)
	spinnerDone := progress.StartSpinner()
	progress.StartStep(1)

	ctx := context.Background()
	result, err := app.TranscribeSvc.Transcribe(ctx, audioPath, application.TranscribeOptions{
		Model:    model,
		Language: language,
		NoCache:  noCacheFlag,
	})

	close(spinnerDone)
	if err != nil {
		progress.FailStep(1, err.Error())
		return err
	}
	progress.CompleteStep(1)

	if !quietFlag && domain.NormalizeLanguage(language) == "" {
		fmt.Printf("\nDetected language: %s\n", result.Transcript.Language)
	}

	outputs := make(map[string]string)

	// Editor pass on the primary format
	path, err := editAndExport(app, result, format)
	if err != nil {
		return err
	}
	if path != "" {
		outputs[string(format)] = path
	}

	// Remaining formats export unedited
	if len(extraFormats) > 1 {
		for _, f := range extraFormats[1:] {
			p, err := app.ExportSvc.Export(result.Transcript, result.SourceName, f, "")
			if err != nil {
				return err
			}
			outputs[string(f)] = p
		}
	}

	if !quietFlag && len(outputs) > 0 {
		progress.Complete(outputs)
	}

	return nil
}

// editAndExport renders the transcript, runs the editor unless
// disabled, and writes the final document. Returns the written path,
// empty when the user discarded or the output went to stdout.
func editAndExport(app *App, result *application.TranscribeResult, format domain.Format) (string, error) {
	rendered, err := result.Transcript.Render(format)
	if err != nil {
		return "", err
	}

	if noEditFlag {
		if outputFlag == "" {
			fmt.Println(rendered)
			return "", nil
		}
		return app.ExportSvc.ExportDocument(rendered, result.SourceName, format, outputFlag)
	}

	pageSize := pageSizeFlag
	if pageSize <= 0 {
		pageSize = app.Config.Defaults.PageSize
	}

	session := domain.NewEditSession(rendered, pageSize)
	saved, err := tui.RunEditor(session, result.SourceName, format, result.Transcript.Duration())
	if err != nil {
		return "", err
	}
	if !saved {
		fmt.Println("Discarded, nothing exported")
		return "", nil
	}

	return app.ExportSvc.ExportDocument(session.Assemble(), result.SourceName, format, outputFlag)
}

// readLine reads one whole line, so paths with spaces survive. EOF
// with no input reads as empty.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func resolveFormat(app *App) (domain.Format, error) {
	name := formatFlag
	if name == "" {
		name = app.Config.Defaults.Format
	}
	return domain.ParseFormat(name)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
