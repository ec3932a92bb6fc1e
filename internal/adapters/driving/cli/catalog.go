package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	catalogfile "github.com/custodia-labs/leetlens/internal/adapters/driven/catalog/file"
	"github.com/custodia-labs/leetlens/internal/logger"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and update the problem catalog",
	Long: `The catalog is cached locally and loaded from the configured sources
(a JSON or YAML file, then a GitHub repository) when the cache is empty.`,
	RunE: runCatalogCount,
}

var catalogCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of problems in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runCatalogCount,
}

var catalogRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Reload the catalog from its sources",
	Args:  cobra.NoArgs,
	RunE:  runCatalogRefresh,
}

var catalogUpdateCmd = &cobra.Command{
	Use:   "update [file]",
	Short: "Replace the catalog with the problems in a file",
	Long: `Reads a JSON or YAML list of problems and replaces the cached catalog.
Entries that are not objects are skipped with a warning. A field with the
wrong type is left empty and the rest of its record is kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogUpdate,
}

var catalogWatchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Replace the catalog whenever a file changes",
	Long: `Watches a catalog file and replaces the cached catalog every time it is
saved. Defaults to catalog.path from the config. Runs until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogWatch,
}

func init() {
	catalogCmd.AddCommand(catalogCountCmd)
	catalogCmd.AddCommand(catalogRefreshCmd)
	catalogCmd.AddCommand(catalogUpdateCmd)
	catalogCmd.AddCommand(catalogWatchCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogCount(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	n, err := catalogService.Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to count problems: %w", err)
	}
	cmd.Printf("%d problems\n", n)
	return nil
}

func runCatalogRefresh(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	n, err := catalogService.Refresh(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to refresh catalog: %w", err)
	}
	cmd.Printf("Catalog reloaded: %d problems\n", n)
	return nil
}

func runCatalogUpdate(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	n, err := replaceFromFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	cmd.Printf("Catalog updated: %d problems\n", n)
	return nil
}

func runCatalogWatch(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}
	if newWatcher == nil {
		return errors.New("file watcher not configured")
	}

	path := catalogPath
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return errors.New("no catalog file: pass one or set catalog.path")
	}

	watcher, err := newWatcher()
	if err != nil {
		return fmt.Errorf("file watcher unavailable: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	err = watcher.Watch(path, func(changed string) {
		n, err := replaceFromFile(ctx, changed)
		if err != nil {
			logger.Warn("Catalog reload failed: %v", err)
			return
		}
		fmt.Fprintf(out, "Catalog reloaded from %s: %d problems\n", changed, n)
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", path)
	<-ctx.Done()
	return nil
}

func replaceFromFile(ctx context.Context, path string) (int, error) {
	problems, err := catalogfile.ReadFile(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	if err := catalogService.Replace(ctx, problems); err != nil {
		return 0, fmt.Errorf("failed to replace catalog: %w", err)
	}
	return len(problems), nil
}
