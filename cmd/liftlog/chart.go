// ABOUTME: CLI command for exporting a progress chart.
// ABOUTME: Renders weight over time for one exercise to a PNG file.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"liftlog/internal/chart"
	"liftlog/internal/storage"
)

var (
	chartFrom string
	chartTo   string
	chartOut  string
)

var chartCmd = &cobra.Command{
	Use:   "chart <exercise>",
	Short: "Export a progress chart",
	Long: `Render a line chart of weight over time for one exercise.

Examples:
  liftlog chart Squat -o squat.png
  liftlog chart "Bench Press" --from 2024-01-01 -o bench.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exercise := args[0]

		entries, err := store.ListEntries(storage.Filter{
			Exercise: exercise,
			DateFrom: chartFrom,
			DateTo:   chartTo,
		})
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		points, err := chart.BuildSeries(entries, exercise)
		if err != nil {
			return fmt.Errorf("failed to build series: %w", err)
		}
		if len(points) == 0 {
			fmt.Printf("No data for %s.\n", exercise)
			return nil
		}

		png, err := chart.RenderPNG(points, exercise)
		if err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
		if err := os.WriteFile(chartOut, png, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", chartOut, err)
		}

		color.Green("✓ Wrote %s (%d points)", chartOut, len(points))
		return nil
	},
}

func init() {
	chartCmd.Flags().StringVar(&chartFrom, "from", "", "inclusive lower date bound (YYYY-MM-DD)")
	chartCmd.Flags().StringVar(&chartTo, "to", "", "inclusive upper date bound (YYYY-MM-DD)")
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "chart.png", "output PNG path")
	rootCmd.AddCommand(chartCmd)
}
