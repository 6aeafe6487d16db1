// ABOUTME: MCP resource implementations for the fitness warehouse.
// ABOUTME: Provides pete://recent, pete://bodyage, and pete://plan resources.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/peteebot/pete/internal/storage"
)

func (s *Server) registerResources() {
	// pete://recent - last two weeks of merged summaries
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "pete://recent",
		Name:        "Recent Daily Summaries",
		Description: "Merged daily summaries for the last 14 days",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// pete://bodyage - full body-age history
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "pete://bodyage",
		Name:        "Body Age History",
		Description: "Every recorded body-age score, oldest first",
		MIMEType:    "application/json",
	}, s.handleBodyAgeResource)

	// pete://plan - the currently active training plan
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "pete://plan",
		Name:        "Current Training Plan",
		Description: "The training plan covering today",
		MIMEType:    "application/json",
	}, s.handlePlanResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summaries, err := s.store.RecentSummaries(time.Now(), 14)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}

	strength, err := s.store.ListStrengthSets(time.Now().AddDate(0, 0, -14), time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list strength sets: %w", err)
	}

	result := map[string]interface{}{
		"summaries": summaries,
		"strength":  strength,
	}
	return resourceResult("pete://recent", result)
}

func (s *Server) handleBodyAgeResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	history, err := s.store.BodyAgeHistory()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return resourceResult("pete://bodyage", history)
}

func (s *Server) handlePlanResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	plan, err := s.store.LatestPlan(time.Now())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return resourceResult("pete://plan", map[string]string{"message": "No plan recorded."})
		}
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	return resourceResult("pete://plan", plan)
}

func resourceResult(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
