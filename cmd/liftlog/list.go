// ABOUTME: CLI command for browsing workout history.
// ABOUTME: Supports exercise and date-range filters.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"liftlog/internal/storage"
)

var (
	listExercise string
	listFrom     string
	listTo       string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts",
	Long: `List workout entries, most recent first.

Examples:
  liftlog list
  liftlog list --exercise Squat
  liftlog list --from 2024-01-01 --to 2024-01-31`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.ListEntries(storage.Filter{
			Exercise: listExercise,
			DateFrom: listFrom,
			DateTo:   listTo,
		})
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			fmt.Printf("%s %s %s %dx%d @ %.1f\n",
				faint.Sprintf("#%d", e.ID),
				e.Date,
				padRight(e.Exercise, 18),
				e.Sets, e.Reps, e.Weight)
		}
		return nil
	},
}

// padRight pads s with spaces to at least width characters.
func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

func init() {
	listCmd.Flags().StringVarP(&listExercise, "exercise", "e", "", "filter by exercise name")
	listCmd.Flags().StringVar(&listFrom, "from", "", "inclusive lower date bound (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "inclusive upper date bound (YYYY-MM-DD)")
	rootCmd.AddCommand(listCmd)
}
