package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/leetlens/internal/adapters/driving/api"
)

// DefaultServeAddr keeps the API on loopback unless asked otherwise.
const DefaultServeAddr = "127.0.0.1:7531"

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local HTTP API",
	Long: `Serves the matcher over HTTP so a browser script or another tool can
send page text and get matches back.

Endpoints:
  POST /api/v1/matches                     {"text": "...", "html": "...", "url": "...", "threshold": 0.4}
  GET  /api/v1/catalog                     problem count
  GET  /api/v1/catalog/problems            full catalog
  PUT  /api/v1/catalog                     replace the catalog
  POST /api/v1/catalog/refresh             reload from sources
  GET  /api/v1/settings                    current settings
  PUT  /api/v1/settings/threshold          {"threshold": 0.6} or {"preset": "strict"}
  POST /api/v1/settings/visibility/toggle  flip visibility`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", DefaultServeAddr, "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if matchService == nil {
		return errors.New("match service not configured")
	}

	server, err := api.NewServer(&api.Ports{
		Match:    matchService,
		Catalog:  catalogService,
		Settings: settingsService,
	})
	if err != nil {
		return err
	}

	cmd.Printf("leetlens API listening on http://%s\n", serveAddr)
	return server.Run(cmd.Context(), serveAddr)
}
