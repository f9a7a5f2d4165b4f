package mcp

import (
	"context"
	"time"

	"github.com/claude/liftflow/internal/metrics"
	"github.com/mark3labs/mcp-go/mcp"
)

// parseDate accepts YYYY-MM-DD; empty means today.
func parseDate(s string) (string, error) {
	if s == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", err
	}
	return s, nil
}

// --- Tool definitions ---

var toolGetWorkoutDay = mcp.NewTool("get_workout_day",
	mcp.WithDescription("Retrieve all exercises logged on a given day, including set weights, reps, RPE, completion, and warm-up flags."),
	mcp.WithString("date", mcp.Description("Date (YYYY-MM-DD). Defaults to today.")),
)

var toolListTrainingDates = mcp.NewTool("list_training_dates",
	mcp.WithDescription("List all dates with logged exercises, newest first."),
)

var toolGetTrainingMetrics = mcp.NewTool("get_training_metrics",
	mcp.WithDescription("Derived training statistics: lifetime volume, level and title, recent session volumes, monthly activity heatmap, and weekly goal compliance."),
	mcp.WithString("month", mcp.Description("Heatmap month (YYYY-MM). Defaults to the current month.")),
)

var toolGetDaySummary = mcp.NewTool("get_day_summary",
	mcp.WithDescription("Human-readable text summary of a day's completed sets, suitable for pasting into a coaching conversation."),
	mcp.WithString("date", mcp.Description("Date (YYYY-MM-DD). Defaults to today.")),
)

// --- Tool handlers ---

func (h *handlers) getWorkoutDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := parseDate(req.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	day, err := h.history.LoadDay(date)
	if err != nil {
		h.log.Error("mcp get_workout_day", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(day)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listTrainingDates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dates, err := h.history.ListNonEmptyDates("")
	if err != nil {
		h.log.Error("mcp list_training_dates", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(dates)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTrainingMetrics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	now := time.Now()
	viewMonth := now
	if m := req.GetString("month", ""); m != "" {
		parsed, err := time.ParseInLocation("2006-01", m, time.Local)
		if err != nil {
			return mcp.NewToolResultError("month must be YYYY-MM"), nil
		}
		viewMonth = parsed
	}

	hist, err := h.history.All()
	if err != nil {
		h.log.Error("mcp get_training_metrics", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	prof, err := h.profiles.Get()
	if err != nil {
		h.log.Error("mcp get_training_metrics profile", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(metrics.Compute(hist, prof, viewMonth, now))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getDaySummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := parseDate(req.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	summary, err := h.history.DaySummary(date)
	if err != nil {
		h.log.Error("mcp get_day_summary", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	return mcp.NewToolResultText(summary), nil
}
