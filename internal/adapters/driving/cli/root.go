// Package cli provides the leetlens command line interface.
// It is a driving adapter: commands call into the core through driving ports.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/leetlens/internal/core/ports/driven"
	"github.com/custodia-labs/leetlens/internal/core/ports/driving"
	"github.com/custodia-labs/leetlens/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

var verbose bool

// Services wired in by main.
var (
	matchService    driving.MatchService
	catalogService  driving.CatalogService
	settingsService driving.SettingsService

	// newWatcher and catalogPath back `catalog watch`.
	newWatcher  func() (driven.Watcher, error)
	catalogPath string
)

// Services holds everything the commands need.
type Services struct {
	Match    driving.MatchService
	Catalog  driving.CatalogService
	Settings driving.SettingsService

	// NewWatcher opens a file watcher for `catalog watch`. Optional.
	// It is only called by that command, which closes what it gets.
	NewWatcher func() (driven.Watcher, error)

	// CatalogPath is the configured catalog file, if any.
	CatalogPath string
}

// SetServices injects the services used by commands.
func SetServices(s Services) {
	matchService = s.Match
	catalogService = s.Catalog
	settingsService = s.Settings
	newWatcher = s.NewWatcher
	catalogPath = s.CatalogPath
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var rootCmd = &cobra.Command{
	Use:   "leetlens",
	Short: "Match coding problems against a LeetCode-style catalog",
	Long: `leetlens finds catalog problems similar to a problem statement.

Give it the text of a problem (or the URL of a page showing one) and it
scores every catalog entry by word overlap with the title and description,
then lists the closest matches above the similarity threshold.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
