// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/peteebot/pete/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Add to your assistant config:

  {
    "mcpServers": {
      "pete": {
        "command": "pete",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_daily          Merge one source's daily vitals
  get_summary        Get the merged summary for a date
  list_summaries     List summaries for a date range
  log_strength_set   Record one performed set
  list_strength      List sets for a date range
  compute_body_age   Derive and record the body-age score
  body_age_history   List all recorded scores
  get_plan           Get the training plan covering a date

AVAILABLE RESOURCES:

  pete://recent      Last two weeks of summaries and sets
  pete://bodyage     Full body-age history
  pete://plan        The currently active training plan`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store, cfg.GetChronologicalAge())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
