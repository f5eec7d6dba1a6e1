package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devbush/scribepad/internal/adapters/cli/tui"
)

// NewCacheCmd creates the cache subcommand
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage cached transcripts",
		RunE:  runCacheStats,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cache statistics",
		RunE:  runCacheStats,
	}

	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove expired cache entries",
		RunE:  runCacheClean,
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all cache entries",
		RunE:  runCacheClear,
	}

	cmd.AddCommand(statsCmd, cleanCmd, clearCmd)

	return cmd
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	stats, err := app.CacheSvc.Stats(context.Background())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Cache Statistics:")
	fmt.Printf("  Entries: %d\n", stats.Entries)
	fmt.Printf("  Size:    %s\n", tui.FormatBytes(stats.TotalSize))
	fmt.Printf("  TTL:     %s\n", app.Config.Defaults.CacheTTL)
	fmt.Println()

	return nil
}

func runCacheClean(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	cleaned, err := app.CacheSvc.CleanExpired(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Removed %d expired entries\n", cleaned)
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	if err := app.CacheSvc.Clear(context.Background()); err != nil {
		return err
	}

	fmt.Println("All cache entries cleared")
	return nil
}
