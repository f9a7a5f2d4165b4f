// Package mcp exposes workout history and derived metrics to MCP
// clients over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/claude/liftflow/internal/catalog"
	"github.com/claude/liftflow/internal/history"
	"github.com/claude/liftflow/internal/profile"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(hist *history.Store, prof *profile.Store, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("LiftFlow", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("LiftFlow workout tracker. Query logged training days, volume metrics, level progress, and the exercise catalog."),
	)

	h := &handlers{history: hist, profiles: prof, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGetWorkoutDay, Handler: h.getWorkoutDay},
		server.ServerTool{Tool: toolListTrainingDates, Handler: h.listTrainingDates},
		server.ServerTool{Tool: toolGetTrainingMetrics, Handler: h.getTrainingMetrics},
		server.ServerTool{Tool: toolGetDaySummary, Handler: h.getDaySummary},
	)

	s.AddResources(
		server.ServerResource{Resource: resTodaySummary, Handler: h.todaySummary},
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	history  *history.Store
	profiles *profile.Store
	log      *slog.Logger
}

// --- Resource definitions ---

var resTodaySummary = mcp.NewResource(
	"liftflow://today_summary",
	"Today's Training Summary",
	mcp.WithResourceDescription("Text summary of today's logged exercises and completed sets"),
	mcp.WithMIMEType("text/plain"),
)

var resExerciseCatalog = mcp.NewResource(
	"liftflow://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All built-in exercises with body part, equipment type, and technique tips"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) todaySummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	today := time.Now().Format("2006-01-02")
	summary, err := h.history.DaySummary(today)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     summary,
		},
	}, nil
}

func (h *handlers) exerciseCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(catalog.Exercises)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
