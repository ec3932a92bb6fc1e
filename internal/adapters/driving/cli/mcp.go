package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/leetlens/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so an assistant can look up
similar catalog problems.

Tools: find_matches, get_threshold, set_threshold, catalog_info.
Resources: leetlens://catalog, leetlens://settings.

By default the server speaks JSON-RPC over stdio. Use --port to serve
streamable HTTP instead, for example to try it in MCP Inspector.

Examples:
  leetlens mcp serve
  leetlens mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "leetlens": {
        "command": "/path/to/leetlens",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Match:    matchService,
		Catalog:  catalogService,
		Settings: settingsService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf("127.0.0.1:%d", port)
		cmd.Printf("MCP server listening on http://%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
