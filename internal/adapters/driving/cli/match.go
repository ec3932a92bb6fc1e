package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/leetlens/internal/core/domain"
	"github.com/custodia-labs/leetlens/internal/htmltext"
)

var (
	matchFile      string
	matchURL       string
	matchThreshold float64
	matchJSON      bool
	matchMinDelay  time.Duration
)

// errNoQuery is returned when no text, file, url or piped input was given.
var errNoQuery = errors.New("no problem text given: pass text, --file, --url or pipe it on stdin")

var matchCmd = &cobra.Command{
	Use:   "match [text...]",
	Short: "Find catalog problems similar to a problem statement",
	Long: `Scores the problem text against every catalog entry and prints the
closest matches, best first.

The text is taken from, in order: --url (scraped with a headless browser),
--file (saved .html pages are reduced to their title and text), the
command arguments, or stdin when it is not a terminal.

Examples:
  leetlens match "Two Sum"
  leetlens match --file problem.txt --threshold 0.2
  pbpaste | leetlens match --json
  leetlens match --url https://example.com/interview/42`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchFile, "file", "f", "", "read problem text from a file")
	matchCmd.Flags().StringVarP(&matchURL, "url", "u", "", "scrape problem text from a page")
	matchCmd.Flags().Float64VarP(&matchThreshold, "threshold", "t", domain.DefaultThreshold,
		"similarity threshold for this search only (0-1)")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "output the match report as JSON")
	matchCmd.Flags().DurationVar(&matchMinDelay, "min-delay", 0, "minimum time before results are shown")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	if matchService == nil {
		return errors.New("match service not configured")
	}

	var opts domain.MatchOptions
	if cmd.Flags().Changed("threshold") {
		t := matchThreshold
		opts.Threshold = &t
	}

	start := time.Now()

	var (
		report *domain.MatchReport
		err    error
	)
	if matchURL != "" {
		report, err = matchService.FindMatchesForURL(cmd.Context(), matchURL, opts)
	} else {
		var text string
		text, err = readQuery(cmd, args)
		if err != nil {
			return err
		}
		report, err = matchService.FindMatches(cmd.Context(), text, opts)
	}
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	if remaining := matchMinDelay - time.Since(start); remaining > 0 {
		time.Sleep(remaining)
	}

	if matchJSON {
		return outputMatchJSON(cmd, report)
	}
	outputMatchTable(cmd, report)
	return nil
}

// readQuery picks the query text from --file, args or piped stdin.
func readQuery(cmd *cobra.Command, args []string) (string, error) {
	if matchFile != "" {
		data, err := os.ReadFile(matchFile)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", matchFile, err)
		}
		if isHTMLFile(matchFile) {
			return htmltext.PageText(string(data)), nil
		}
		return string(data), nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errNoQuery
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errNoQuery
	}
	return string(data), nil
}

// isHTMLFile reports whether path looks like a saved web page.
func isHTMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

func outputMatchJSON(cmd *cobra.Command, report *domain.MatchReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal matches: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// maxTopics caps the topics printed under each match.
const maxTopics = 4

func outputMatchTable(cmd *cobra.Command, report *domain.MatchReport) {
	if len(report.Matches) == 0 {
		cmd.Println("No similar problems found.")
		return
	}

	cmd.Printf("Matches (threshold %d%%, %d problems scanned):\n\n",
		domain.Percent(report.Threshold), report.CatalogSize)
	for i := range report.Matches {
		m := &report.Matches[i]

		// Format: [N] Title (Difficulty) Score% [exact]
		line := fmt.Sprintf("[%d] %s", i+1, m.Title)
		if m.Difficulty != "" {
			line += fmt.Sprintf(" (%s)", m.Difficulty)
		}
		line += fmt.Sprintf(" %d%%", domain.Percent(m.CombinedScore))
		if m.MatchType == domain.MatchTypeExact {
			line += " [exact]"
		}
		if m.IsPremium {
			line += " [premium]"
		}
		cmd.Println(line)

		if m.URL != "" {
			cmd.Printf("    %s\n", m.URL)
		}
		if topics := m.TopTopics(maxTopics); len(topics) > 0 {
			cmd.Printf("    %s\n", strings.Join(topics, ", "))
		}
	}
}
