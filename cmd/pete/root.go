// ABOUTME: Root Cobra command for pete CLI.
// ABOUTME: Opens the warehouse database via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/peteebot/pete/internal/config"
	"github.com/peteebot/pete/internal/storage"
	"github.com/spf13/cobra"
)

var (
	dbPath string
	cfg    *config.Config
	store  storage.Store
)

var rootCmd = &cobra.Command{
	Use:   "pete",
	Short: "Personal fitness data warehouse",
	Long: `Pete is a local-first warehouse for personal fitness data.

WHAT IT STORES:

  Daily vitals   weight, body fat, steps, heart rate, sleep (merged per day)
  Catalog        exercises, categories, equipment, muscles (wger format)
  Strength log   performed sets with reps, weight, and RIR
  Body age       a derived composite fitness score per day
  Plans          generated four-week training blocks

QUICK START:

  $ pete ingest readings.json           # Merge a batch of daily readings
  $ pete catalog import exercises.json  # Load the exercise catalog
  $ pete strength log 2025-06-01 615 5 100 --rir 2
  $ pete bodyage compute 2025-06-01     # Derive the day's body age
  $ pete plan generate 2025-06-02       # Build a four-week block
  $ pete export json                    # Dump the whole warehouse

MCP INTEGRATION:

  Run 'pete mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants:

  {
    "mcpServers": {
      "pete": { "command": "pete", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Everything lives in a single SQLite file, by default at
  ~/.local/share/pete/pete.db. Override with --db or the config file at
  ~/.config/pete/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		path := dbPath
		if path == "" {
			path = cfg.DBPath()
		}
		store, err = storage.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite database file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
