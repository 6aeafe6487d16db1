// ABOUTME: MCP tool implementations for the fitness warehouse.
// ABOUTME: Exposes merge, logging, body-age and plan operations.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/peteebot/pete/internal/bodyage"
	"github.com/peteebot/pete/internal/models"
)

// farFuture stands in for "no as-of bound" on plan lookups.
var farFuture = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

func (s *Server) registerTools() {
	// log_daily
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_daily",
		Description: "Merge one source's daily vitals into the warehouse",
	}, s.handleLogDaily)

	// get_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_summary",
		Description: "Get the merged daily summary for a date",
	}, s.handleGetSummary)

	// list_summaries
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_summaries",
		Description: "List merged daily summaries for a date range",
	}, s.handleListSummaries)

	// log_strength_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_strength_set",
		Description: "Record one performed strength set",
	}, s.handleLogStrengthSet)

	// list_strength
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_strength",
		Description: "List logged strength sets for a date range",
	}, s.handleListStrength)

	// compute_body_age
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "compute_body_age",
		Description: "Derive and record the body-age score for a date",
	}, s.handleComputeBodyAge)

	// body_age_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "body_age_history",
		Description: "List all recorded body-age scores",
	}, s.handleBodyAgeHistory)

	// get_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_plan",
		Description: "Get the training plan active on a date",
	}, s.handleGetPlan)
}

// Tool input/output types

type logDailyInput struct {
	Source string        `json:"source" jsonschema:"Feed that produced the reading (withings, apple, wger)"`
	Date   string        `json:"date" jsonschema:"Calendar date (YYYY-MM-DD)"`
	Vitals models.Vitals `json:"vitals" jsonschema:"Sparse metric fields; absent fields are left untouched"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type dateInput struct {
	Date string `json:"date" jsonschema:"Calendar date (YYYY-MM-DD)"`
}

type rangeInput struct {
	From string `json:"from" jsonschema:"Start date inclusive (YYYY-MM-DD)"`
	To   string `json:"to" jsonschema:"End date inclusive (YYYY-MM-DD)"`
}

type logStrengthSetInput struct {
	Date          string   `json:"date" jsonschema:"Calendar date (YYYY-MM-DD)"`
	ExerciseID    int      `json:"exercise_id" jsonschema:"Catalog exercise ID"`
	Reps          int      `json:"reps" jsonschema:"Repetitions performed"`
	WeightKg      float64  `json:"weight_kg" jsonschema:"Weight in kilograms"`
	RIR           *float64 `json:"rir,omitempty" jsonschema:"Reps in reserve (0-10, half points)"`
	SourceEntryID string   `json:"source_entry_id,omitempty" jsonschema:"Upstream entry ID for idempotent re-imports"`
}

type computeBodyAgeInput struct {
	Date      string `json:"date" jsonschema:"Calendar date (YYYY-MM-DD)"`
	Recompute bool   `json:"recompute,omitempty" jsonschema:"Overwrite an existing score for the date"`
}

type asOfInput struct {
	AsOf string `json:"as_of,omitempty" jsonschema:"Date the plan must cover (YYYY-MM-DD); defaults to the latest plan"`
}

// Tool handlers

func (s *Server) handleLogDaily(ctx context.Context, req *mcp.CallToolRequest, input logDailyInput) (*mcp.CallToolResult, simpleOutput, error) {
	reading := &models.DailyReading{
		Source: models.Source(input.Source),
		Date:   input.Date,
		Vitals: input.Vitals,
	}
	if err := s.store.MergeDaily(reading); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to merge reading: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Merged %s reading for %s", input.Source, input.Date),
	}, nil
}

func (s *Server) handleGetSummary(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	day, err := models.ParseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}
	summary, err := s.store.GetSummary(day)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get summary: %w", err)
	}
	return nil, summary, nil
}

func (s *Server) handleListSummaries(ctx context.Context, req *mcp.CallToolRequest, input rangeInput) (*mcp.CallToolResult, any, error) {
	from, err := models.ParseDate(input.From)
	if err != nil {
		return nil, nil, err
	}
	to, err := models.ParseDate(input.To)
	if err != nil {
		return nil, nil, err
	}
	summaries, err := s.store.ListSummaries(from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	if len(summaries) == 0 {
		return nil, map[string]interface{}{"message": "No summaries found."}, nil
	}
	return nil, summaries, nil
}

func (s *Server) handleLogStrengthSet(ctx context.Context, req *mcp.CallToolRequest, input logStrengthSetInput) (*mcp.CallToolResult, simpleOutput, error) {
	day, err := models.ParseDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	set := models.NewStrengthSet(day, input.ExerciseID, input.Reps, input.WeightKg)
	if input.RIR != nil {
		set.WithRIR(*input.RIR)
	}
	if input.SourceEntryID != "" {
		set.WithSourceEntryID(input.SourceEntryID)
	}
	if err := s.store.RecordStrengthSets([]*models.StrengthSet{set}); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to record set: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %d x %.1f kg on exercise %d for %s",
			input.Reps, input.WeightKg, input.ExerciseID, input.Date),
	}, nil
}

func (s *Server) handleListStrength(ctx context.Context, req *mcp.CallToolRequest, input rangeInput) (*mcp.CallToolResult, any, error) {
	from, err := models.ParseDate(input.From)
	if err != nil {
		return nil, nil, err
	}
	to, err := models.ParseDate(input.To)
	if err != nil {
		return nil, nil, err
	}
	sets, err := s.store.ListStrengthSets(from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list strength sets: %w", err)
	}
	if len(sets) == 0 {
		return nil, map[string]interface{}{"message": "No strength sets found."}, nil
	}
	return nil, sets, nil
}

func (s *Server) handleComputeBodyAge(ctx context.Context, req *mcp.CallToolRequest, input computeBodyAgeInput) (*mcp.CallToolResult, any, error) {
	day, err := models.ParseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}
	window, err := s.store.RecentSummaries(day, bodyage.WindowDays)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load window: %w", err)
	}
	entry, err := bodyage.Compute(day, window, s.chronoAge)
	if err != nil {
		return nil, nil, err
	}
	if err := s.store.RecordBodyAge(entry, input.Recompute); err != nil {
		return nil, nil, fmt.Errorf("failed to record body age: %w", err)
	}
	return nil, entry, nil
}

func (s *Server) handleBodyAgeHistory(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	history, err := s.store.BodyAgeHistory()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load history: %w", err)
	}
	if len(history) == 0 {
		return nil, map[string]interface{}{"message": "No body-age scores recorded."}, nil
	}
	return nil, history, nil
}

func (s *Server) handleGetPlan(ctx context.Context, req *mcp.CallToolRequest, input asOfInput) (*mcp.CallToolResult, any, error) {
	asOf := farFuture
	if input.AsOf != "" {
		day, err := models.ParseDate(input.AsOf)
		if err != nil {
			return nil, nil, err
		}
		asOf = day
	}
	plan, err := s.store.LatestPlan(asOf)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load plan: %w", err)
	}
	return nil, plan, nil
}
