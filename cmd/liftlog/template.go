// ABOUTME: CLI commands for managing workout templates.
// ABOUTME: Supports create, list, delete, exercise add/remove, and expand.
package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"liftlog/internal/models"
	"liftlog/internal/storage"
)

var templateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"tpl"},
	Short:   "Manage workout templates",
	Long: `Templates are named sets of exercises for quick batch logging.

WORKFLOW:

  1. Create a template:      liftlog template create "Push Day"
  2. Add exercises to it:    liftlog template exercise 1 "Bench Press"
  3. Expand it for today:    liftlog template expand 1

Expanding logs one zero-valued entry per exercise, dated today, for you
to fill in as you train.`,
}

var templateCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := store.CreateTemplate(args[0])
		if errors.Is(err, storage.ErrDuplicateName) {
			color.Yellow("⚠ Template %q already exists", args[0])
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to create template: %w", err)
		}

		color.Green("✓ Created template %q", args[0])
		fmt.Printf("  ID: %d\n", id)
		return nil
	},
}

var templateListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		templates, err := store.ListTemplates()
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}

		if len(templates) == 0 {
			fmt.Println("No templates found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, t := range templates {
			fmt.Printf("%s %s\n", faint.Sprintf("#%d", t.ID), t.Name)
			for _, te := range t.Exercises {
				fmt.Printf("    %s %s\n", faint.Sprintf("#%d", te.ID), te.ExerciseName)
			}
		}
		return nil
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a template and its exercises",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		if err := store.DeleteTemplate(id); err != nil {
			return fmt.Errorf("failed to delete template: %w", err)
		}

		color.Green("✓ Deleted template %d", id)
		return nil
	},
}

var templateExerciseCmd = &cobra.Command{
	Use:   "exercise <template-id> <exercise>",
	Short: "Add an exercise to a template",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid template id: %s", args[0])
		}

		memberID, err := store.AddTemplateExercise(id, args[1])
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Added %s to template %d", args[1], id)
		fmt.Printf("  ID: %d\n", memberID)
		return nil
	},
}

var templateRemoveExerciseCmd = &cobra.Command{
	Use:   "remove-exercise <exercise-id>",
	Short: "Remove an exercise from a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		if err := store.DeleteTemplateExercise(id); err != nil {
			return fmt.Errorf("failed to remove exercise: %w", err)
		}

		color.Green("✓ Removed template exercise %d", id)
		return nil
	},
}

var templateExpandCmd = &cobra.Command{
	Use:   "expand <id>",
	Short: "Log all exercises of a template for today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		today := time.Now().Format(models.DateLayout)
		entries, err := store.ExpandTemplate(id, today)
		if err != nil {
			return fmt.Errorf("failed to expand template: %w", err)
		}

		color.Green("✓ Logged %d exercises for %s", len(entries), today)
		for _, e := range entries {
			fmt.Printf("  #%d %s\n", e.ID, e.Exercise)
		}
		return nil
	},
}

func init() {
	templateCmd.AddCommand(templateCreateCmd)
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateDeleteCmd)
	templateCmd.AddCommand(templateExerciseCmd)
	templateCmd.AddCommand(templateRemoveExerciseCmd)
	templateCmd.AddCommand(templateExpandCmd)
	rootCmd.AddCommand(templateCmd)
}
