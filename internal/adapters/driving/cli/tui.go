package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui"
	"github.com/custodia-labs/leetlens/internal/adapters/driving/tui/views/search"
)

var tuiMinDelay time.Duration

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal UI.

Paste a problem statement into the text area and press ctrl+s to list
similar catalog problems. The settings screen switches threshold presets,
toggles visibility and reloads the catalog.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select
  ctrl+s   - Find matches
  1-4      - Threshold preset (settings)
  Esc      - Back
  ctrl+c   - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().DurationVar(&tuiMinDelay, "min-delay", search.DefaultMinDelay,
		"minimum time the search spinner is shown")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if matchService == nil {
		return errors.New("match service not configured")
	}

	app, err := tui.NewApp(tui.NewPorts(matchService, catalogService, settingsService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context()).WithMinDelay(tuiMinDelay)

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
