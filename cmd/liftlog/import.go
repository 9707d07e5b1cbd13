// ABOUTME: CLI command for importing workouts from a CSV export.
// ABOUTME: Reads the legacy Exercise,Sets,Reps,Weight format.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"liftlog/internal/models"
)

var importDate string

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import workouts from CSV",
	Long: `Import workout entries from a CSV file.

The expected format is the legacy workouts.csv layout with a header row:

  Exercise,Sets,Reps,Weight

Rows carry no dates, so all imported entries are stamped with --date
(defaults to today).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		date := importDate
		if date == "" {
			date = time.Now().Format(models.DateLayout)
		}

		entries, err := parseWorkoutsCSV(f, date)
		if err != nil {
			return err
		}

		for _, e := range entries {
			if err := store.InsertEntry(e); err != nil {
				return fmt.Errorf("failed to import %s: %w", e.Exercise, err)
			}
		}

		color.Green("✓ Imported %d workouts", len(entries))
		return nil
	},
}

// parseWorkoutsCSV reads the legacy CSV layout and stamps every row with
// the given date. The header row is required; blank lines are skipped.
func parseWorkoutsCSV(r io.Reader, date string) ([]*models.WorkoutEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	if len(header) < 4 || !strings.EqualFold(strings.TrimSpace(header[0]), "exercise") {
		return nil, fmt.Errorf("unexpected CSV header: %v", header)
	}

	var entries []*models.WorkoutEntry
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read CSV line %d: %w", line, err)
		}
		if len(record) == 0 || (len(record) == 1 && strings.TrimSpace(record[0]) == "") {
			continue
		}
		if len(record) < 4 {
			return nil, fmt.Errorf("CSV line %d: expected 4 fields, got %d", line, len(record))
		}

		sets, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: invalid sets %q", line, record[1])
		}
		reps, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: invalid reps %q", line, record[2])
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: invalid weight %q", line, record[3])
		}

		entry := models.NewWorkoutEntry(strings.TrimSpace(record[0]), sets, reps, weight).WithDate(date)
		entries = append(entries, entry)
	}
	return entries, nil
}

func init() {
	importCmd.Flags().StringVarP(&importDate, "date", "d", "", "date to stamp imported entries with (YYYY-MM-DD)")
	rootCmd.AddCommand(importCmd)
}
