// ABOUTME: CLI command for editing a workout entry.
// ABOUTME: Replaces exercise, sets, reps, and weight; the date is immutable.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"liftlog/internal/models"
)

var editCmd = &cobra.Command{
	Use:   "edit <id> <exercise> <sets> <reps> <weight>",
	Short: "Edit a workout",
	Long: `Edit a workout entry. The entry keeps its original date.

Example:
  liftlog edit 42 "Bench Press" 3 8 82.5`,
	Args: cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}
		sets, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid sets: %s", args[2])
		}
		reps, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid reps: %s", args[3])
		}
		weight, err := strconv.ParseFloat(args[4], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[4])
		}

		e := &models.WorkoutEntry{
			ID:       id,
			Exercise: args[1],
			Sets:     sets,
			Reps:     reps,
			Weight:   weight,
		}
		if err := store.UpdateEntry(e); err != nil {
			return fmt.Errorf("failed to edit workout: %w", err)
		}

		color.Green("✓ Updated workout %d", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
