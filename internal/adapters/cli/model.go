package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devbush/scribepad/internal/adapters/cli/tui"
)

// NewModelCmd creates the model subcommand
func NewModelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Manage Whisper models",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available models",
		RunE:  runModelList,
	}

	downloadCmd := &cobra.Command{
		Use:   "download <model>",
		Short: "Download a model",
		Args:  cobra.ExactArgs(1),
		RunE:  runModelDownload,
	}

	removeCmd := &cobra.Command{
		Use:   "remove <model>",
		Short: "Remove a downloaded model",
		Args:  cobra.ExactArgs(1),
		RunE:  runModelRemove,
	}

	cmd.AddCommand(listCmd, downloadCmd, removeCmd)
	return cmd
}

func runModelList(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	models := app.Transcriber.AvailableModels()

	fmt.Println()
	fmt.Printf("  %-10s %-12s %s\n", "Model", "Size", "Status")
	fmt.Println("  " + strings.Repeat("-", 40))

	for _, m := range models {
		status := "not downloaded"
		if m.Downloaded {
			status = "downloaded"
		}
		if m.Name == app.Config.Defaults.Model {
			status += " (default)"
		}

		fmt.Printf("  %-10s %-12s %s\n", m.Name, tui.FormatBytes(m.Size), status)
	}
	fmt.Println()

	return nil
}

func runModelDownload(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	return downloadModel(app, args[0])
}

func downloadModel(app *App, model string) error {
	if app.Transcriber.IsModelDownloaded(model) {
		fmt.Printf("Model '%s' is already downloaded\n", model)
		return nil
	}

	fmt.Printf("Downloading model '%s'...\n", model)

	err := app.Transcriber.DownloadModel(context.Background(), model, func(downloaded, total int64) {
		if total > 0 {
			pct := float64(downloaded) / float64(total) * 100
			fmt.Printf("\rProgress: %.1f%% (%s / %s)", pct, tui.FormatBytes(downloaded), tui.FormatBytes(total))
		}
	})

	if err != nil {
		return err
	}

	fmt.Println("\nModel downloaded successfully")
	return nil
}

func runModelRemove(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	model := args[0]

	if !app.Transcriber.IsModelDownloaded(model) {
		fmt.Printf("Model '%s' is not downloaded\n", model)
		return nil
	}

	if err := app.Transcriber.DeleteModel(model); err != nil {
		return err
	}

	fmt.Printf("Model '%s' removed\n", model)
	return nil
}

// runModelsInteractive lets the user pick a model from a list and
// either download or remove it.
func runModelsInteractive() error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	var items []tui.PickerItem
	for _, m := range app.Transcriber.AvailableModels() {
		status := "not downloaded"
		if m.Downloaded {
			status = "downloaded"
		}
		items = append(items, tui.PickerItem{
			Label:  m.Name,
			Value:  m.Name,
			Detail: fmt.Sprintf("%-10s %s", tui.FormatBytes(m.Size), status),
		})
	}

	selected, err := tui.RunPicker("Whisper models", items)
	if err != nil {
		return err
	}
	if selected == "" {
		fmt.Println("Cancelled")
		return nil
	}

	if !app.Transcriber.IsModelDownloaded(selected) {
		return downloadModel(app, selected)
	}

	action, err := tui.RunMenu("Model is downloaded", []tui.MenuOption{
		{Label: fmt.Sprintf("Keep '%s'", selected), Value: "keep"},
		{Label: fmt.Sprintf("Remove '%s'", selected), Value: "remove"},
	})
	if err != nil {
		return err
	}

	if action == "remove" {
		if err := app.Transcriber.DeleteModel(selected); err != nil {
			return err
		}
		fmt.Printf("Model '%s' removed\n", selected)
	}

	return nil
}
