// ABOUTME: CLI command for showing personal records.
// ABOUTME: One max-weight entry per exercise, sorted by exercise name.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"liftlog/internal/records"
	"liftlog/internal/storage"
)

var recordsCmd = &cobra.Command{
	Use:     "records",
	Aliases: []string{"pr"},
	Short:   "Show personal records",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.ListEntries(storage.Filter{})
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		prs := records.Personal(entries)
		if len(prs) == 0 {
			fmt.Println("No records yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range prs {
			fmt.Printf("%s %.1f %s\n",
				padRight(e.Exercise, 18),
				e.Weight,
				faint.Sprintf("(%s)", e.Date))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)
}
