// ABOUTME: MCP tool implementations for the workout log.
// ABOUTME: Exposes logging, filtering, records, and template expansion.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"liftlog/internal/models"
	"liftlog/internal/records"
	"liftlog/internal/storage"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log a workout entry (exercise, sets, reps, weight)",
	}, s.handleLogWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List workout entries, optionally filtered by exercise and date range",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_workout",
		Description: "Update exercise, sets, reps, or weight of an entry (the date is immutable)",
	}, s.handleUpdateWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout entry by id",
	}, s.handleDeleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "personal_records",
		Description: "Get the heaviest logged weight per exercise",
	}, s.handlePersonalRecords)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_templates",
		Description: "List workout templates with their exercises",
	}, s.handleListTemplates)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "expand_template",
		Description: "Log one zero-valued entry per template exercise, dated today",
	}, s.handleExpandTemplate)
}

// Tool input/output types

type logWorkoutInput struct {
	Exercise string  `json:"exercise" jsonschema:"Exercise name"`
	Sets     int     `json:"sets" jsonschema:"Number of sets"`
	Reps     int     `json:"reps" jsonschema:"Number of reps"`
	Weight   float64 `json:"weight" jsonschema:"Weight used"`
	Date     string  `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD); defaults to today"`
}

type entryOutput struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type listWorkoutsInput struct {
	Exercise string `json:"exercise,omitempty" jsonschema:"Filter by exercise name (omit or use All for no filter)"`
	DateFrom string `json:"date_from,omitempty" jsonschema:"Inclusive lower date bound (YYYY-MM-DD)"`
	DateTo   string `json:"date_to,omitempty" jsonschema:"Inclusive upper date bound (YYYY-MM-DD)"`
}

type updateWorkoutInput struct {
	ID       int64   `json:"id" jsonschema:"Entry id"`
	Exercise string  `json:"exercise" jsonschema:"Exercise name"`
	Sets     int     `json:"sets" jsonschema:"Number of sets"`
	Reps     int     `json:"reps" jsonschema:"Number of reps"`
	Weight   float64 `json:"weight" jsonschema:"Weight used"`
}

type deleteWorkoutInput struct {
	ID int64 `json:"id" jsonschema:"Entry id"`
}

type expandTemplateInput struct {
	TemplateID int64 `json:"template_id" jsonschema:"Template id"`
}

type personalRecordsInput struct{}

type listTemplatesInput struct{}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, entryOutput, error) {
	e := models.NewWorkoutEntry(input.Exercise, input.Sets, input.Reps, input.Weight)
	if input.Date != "" {
		e.WithDate(input.Date)
	}

	if err := s.repo.InsertEntry(e); err != nil {
		return nil, entryOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}

	return nil, entryOutput{
		ID:      e.ID,
		Message: fmt.Sprintf("Logged %s: %dx%d @ %.1f on %s (ID: %d)", e.Exercise, e.Sets, e.Reps, e.Weight, e.Date, e.ID),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	entries, err := s.repo.ListEntries(storage.Filter{
		Exercise: input.Exercise,
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	if len(entries) == 0 {
		return nil, map[string]interface{}{"message": "No workouts found."}, nil
	}

	return nil, entries, nil
}

func (s *Server) handleUpdateWorkout(ctx context.Context, req *mcp.CallToolRequest, input updateWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	e := &models.WorkoutEntry{
		ID:       input.ID,
		Exercise: input.Exercise,
		Sets:     input.Sets,
		Reps:     input.Reps,
		Weight:   input.Weight,
	}
	if err := s.repo.UpdateEntry(e); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Updated workout %d", input.ID),
	}, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input deleteWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteEntry(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted workout %d", input.ID),
	}, nil
}

func (s *Server) handlePersonalRecords(ctx context.Context, req *mcp.CallToolRequest, input personalRecordsInput) (*mcp.CallToolResult, any, error) {
	entries, err := s.repo.ListEntries(storage.Filter{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	prs := records.Personal(entries)
	if len(prs) == 0 {
		return nil, map[string]interface{}{"message": "No records yet."}, nil
	}

	return nil, prs, nil
}

func (s *Server) handleListTemplates(ctx context.Context, req *mcp.CallToolRequest, input listTemplatesInput) (*mcp.CallToolResult, any, error) {
	templates, err := s.repo.ListTemplates()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list templates: %w", err)
	}

	if len(templates) == 0 {
		return nil, map[string]interface{}{"message": "No templates found."}, nil
	}

	return nil, templates, nil
}

func (s *Server) handleExpandTemplate(ctx context.Context, req *mcp.CallToolRequest, input expandTemplateInput) (*mcp.CallToolResult, simpleOutput, error) {
	today := time.Now().Format(models.DateLayout)
	entries, err := s.repo.ExpandTemplate(input.TemplateID, today)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to expand template: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %d exercises from template %d for %s", len(entries), input.TemplateID, today),
	}, nil
}
