package commands

import (
	"github.com/spf13/cobra"

	"github.com/componentry/barrelgen/internal/mcp"
)

// NewMCPCommand creates the MCP server command.
func NewMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for AI agent integration",
		Long: `Start a Model Context Protocol (MCP) server on stdio transport.

The MCP server exposes barrel generation as a tool that AI agents can
discover and invoke:
  - barrel_generate: Scan a component directory and render a barrel file`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			srv := mcp.NewServer()

			return srv.Run(cobraCmd.Context())
		},
	}
}
