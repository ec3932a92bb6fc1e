package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/leetlens/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and change settings",
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsThresholdCmd = &cobra.Command{
	Use:   "threshold [value]",
	Short: "Show or set the similarity threshold",
	Long: `Without an argument, prints the threshold. With one, sets it.

The value is a number between 0 and 1, or a percentage such as 40%.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsThreshold,
}

var settingsPresetCmd = &cobra.Command{
	Use:   "preset [name]",
	Short: "Set the threshold from a preset",
	Long: `Available presets:
  loose     20%
  balanced  40% (default)
  strict    60%
  exact     80%`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: presetNames(),
	RunE:      runSettingsPreset,
}

var settingsToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle whether the search action is shown",
	Args:  cobra.NoArgs,
	RunE:  runSettingsToggle,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsThresholdCmd)
	settingsCmd.AddCommand(settingsPresetCmd)
	settingsCmd.AddCommand(settingsToggleCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Printf("  Threshold:         %s\n", describeThreshold(settings.Threshold))
	cmd.Printf("  Search visible:    %t\n", settings.Visible)
	cmd.Printf("  Last result count: %d\n", settings.LastResultCount)
	return nil
}

func runSettingsThreshold(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if len(args) == 0 {
		cmd.Println(describeThreshold(settingsService.Threshold()))
		return nil
	}

	value, err := parseThreshold(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetThreshold(value); err != nil {
		return fmt.Errorf("failed to set threshold: %w", err)
	}
	cmd.Printf("Threshold set to %s\n", describeThreshold(value))
	return nil
}

func runSettingsPreset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	preset, ok := domain.PresetByName(strings.ToLower(args[0]))
	if !ok {
		return fmt.Errorf("%w: unknown preset %q (want one of %s)",
			domain.ErrInvalidInput, args[0], strings.Join(presetNames(), ", "))
	}
	if err := settingsService.SetThreshold(preset.Value); err != nil {
		return fmt.Errorf("failed to set threshold: %w", err)
	}
	cmd.Printf("Threshold set to %s\n", describeThreshold(preset.Value))
	return nil
}

func runSettingsToggle(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	visible, err := settingsService.ToggleVisibility()
	if err != nil {
		return fmt.Errorf("failed to toggle visibility: %w", err)
	}
	if visible {
		cmd.Println("Search is now visible")
	} else {
		cmd.Println("Search is now hidden")
	}
	return nil
}

// parseThreshold accepts 0.4, 40% or 40.
// Bare numbers above 1 are read as percentages.
func parseThreshold(s string) (float64, error) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	value, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: threshold %q is not a number", domain.ErrInvalidInput, s)
	}
	if percent || value > 1 {
		value /= 100
	}
	return value, nil
}

// describeThreshold renders a threshold as "40% (balanced)".
func describeThreshold(value float64) string {
	s := fmt.Sprintf("%d%%", domain.Percent(value))
	if preset, ok := domain.PresetFor(value); ok {
		s += " (" + preset.Name + ")"
	}
	return s
}

func presetNames() []string {
	names := make([]string, 0, len(domain.ThresholdPresets))
	for _, p := range domain.ThresholdPresets {
		names = append(names, p.Name)
	}
	return names
}
