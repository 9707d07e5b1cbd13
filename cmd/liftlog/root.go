// ABOUTME: Root Cobra command for liftlog CLI.
// ABOUTME: Opens the store via config in PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"liftlog/internal/config"
	"liftlog/internal/storage"
)

var (
	cfg   *config.Config
	store *storage.DB
)

var rootCmd = &cobra.Command{
	Use:   "liftlog",
	Short: "Personal workout log",
	Long: `Liftlog tracks your workouts: exercises, sets, reps, and weight.

QUICK START:

  $ liftlog add "Bench Press" 3 10 80      # Log 3x10 @ 80
  $ liftlog list                           # Browse your history
  $ liftlog list --exercise Squat          # Filter by exercise
  $ liftlog records                        # Personal records per exercise

TEMPLATES:

  $ liftlog template create "Push Day"             # Create a template
  $ liftlog template exercise 1 "Bench Press"      # Add an exercise to it
  $ liftlog template expand 1                      # Log all its exercises today

CHARTS:

  $ liftlog chart Squat -o squat.png       # Progress chart for an exercise

WEB UI:

  $ liftlog serve                          # Browser UI on :8080

MCP INTEGRATION:

  Run 'liftlog mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "liftlog": { "command": "liftlog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Workouts are stored in SQLite at ~/.local/share/liftlog/liftlog.db.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		store, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
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
