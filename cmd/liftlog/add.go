// ABOUTME: CLI command for logging a workout entry.
// ABOUTME: Accepts exercise, sets, reps, weight, and an optional date.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"liftlog/internal/models"
)

var addDate string

var addCmd = &cobra.Command{
	Use:   "add <exercise> <sets> <reps> <weight>",
	Short: "Log a workout",
	Long: `Log a workout entry.

Examples:
  liftlog add "Bench Press" 3 10 80
  liftlog add Squat 5 5 102.5 --date 2024-01-15`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid sets: %s", args[1])
		}
		reps, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid reps: %s", args[2])
		}
		weight, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[3])
		}

		e := models.NewWorkoutEntry(args[0], sets, reps, weight)
		if addDate != "" {
			e.WithDate(addDate)
		}

		if err := store.InsertEntry(e); err != nil {
			return fmt.Errorf("failed to log workout: %w", err)
		}

		color.Green("✓ Logged %s", e.Exercise)
		fmt.Printf("  ID: %d\n", e.ID)
		fmt.Printf("  %dx%d @ %.1f on %s\n", e.Sets, e.Reps, e.Weight, e.Date)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "entry date (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(addCmd)
}
