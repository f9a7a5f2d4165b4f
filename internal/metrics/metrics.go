// Package metrics derives dashboard statistics from history and
// profile. Everything here is a pure function of its inputs; nothing is
// persisted or cached — consumers recompute on every change broadcast.
package metrics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/claude/liftflow/internal/models"
)

// Advice classifications for weekly training frequency.
const (
	AdviceWarning   = "warning"
	AdviceGood      = "good"
	AdviceEncourage = "encourage"
)

// SessionPoint is one point of the recent-volume chart.
type SessionPoint struct {
	Label  string  `json:"label"`
	Volume float64 `json:"volume"`
}

// HeatmapDay marks one calendar day of the viewed month.
type HeatmapDay struct {
	Date   string `json:"date"`
	Active bool   `json:"active"`
}

// Advice is the weekly-frequency verdict shown on the dashboard.
type Advice struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Metrics is the full derived dashboard state.
type Metrics struct {
	TotalVolume  float64          `json:"totalVolume"`
	Level        models.LevelInfo `json:"level"`
	LastSessions []SessionPoint   `json:"lastSessions"`
	Heatmap      []HeatmapDay     `json:"heatmap"`
	ActiveDays   int              `json:"activeDays"`
	Advice       Advice           `json:"advice"`
}

var levelTitles = []struct {
	level int
	title string
}{
	{1, "健身學徒"},
	{5, "初級訓練者"},
	{10, "中級健友"},
	{20, "健身愛好者"},
	{30, "鋼鐵戰士"},
	{40, "菁英運動員"},
	{50, "傳奇巨獸"},
	{100, "健身之神"},
}

// Compute derives all dashboard metrics. viewMonth selects the heatmap
// month; now anchors the trailing-7-day compliance window. Dates are
// compared as local calendar dates throughout.
func Compute(h models.History, p models.Profile, viewMonth, now time.Time) Metrics {
	var totalVolume float64
	activeDates := make(map[string]bool)
	volumeByDate := make(map[string]float64)

	for date, day := range h {
		for _, ex := range day {
			for _, set := range ex.Sets {
				if !set.Completed {
					continue
				}
				activeDates[date] = true
				if set.IsWarmup || set.Kg == 0 || set.Reps == 0 {
					continue
				}
				v := set.Volume()
				totalVolume += v
				volumeByDate[date] += v
			}
		}
	}

	return Metrics{
		TotalVolume:  totalVolume,
		Level:        LevelFor(totalVolume),
		LastSessions: lastSessions(volumeByDate),
		Heatmap:      heatmap(viewMonth, activeDates),
		ActiveDays:   len(activeDates),
		Advice:       weeklyAdvice(activeDates, p.WeeklyGoal, now),
	}
}

// LevelFor maps cumulative volume onto the square-root XP curve: level
// N costs 1000·(N−1)² kg, so early levels are cheap and late levels
// quadratically expensive.
func LevelFor(totalVolume float64) models.LevelInfo {
	level := int(math.Floor(math.Sqrt(totalVolume/1000))) + 1

	title := levelTitles[0].title
	for i := len(levelTitles) - 1; i >= 0; i-- {
		if level >= levelTitles[i].level {
			title = levelTitles[i].title
			break
		}
	}

	prev := 1000 * math.Pow(float64(level-1), 2)
	next := 1000 * math.Pow(float64(level), 2)
	progress := 0.0
	if next > prev {
		progress = (totalVolume - prev) / (next - prev) * 100
	}
	progress = math.Min(100, math.Max(0, progress))

	return models.LevelInfo{
		Level:       level,
		Title:       title,
		Progress:    progress,
		TotalVolume: totalVolume,
	}
}

// lastSessions returns the last 7 dates with nonzero working volume,
// ascending, labeled MM/DD. An empty history yields one placeholder.
func lastSessions(volumeByDate map[string]float64) []SessionPoint {
	dates := make([]string, 0, len(volumeByDate))
	for d := range volumeByDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	if len(dates) > 7 {
		dates = dates[len(dates)-7:]
	}

	points := make([]SessionPoint, 0, len(dates))
	for _, d := range dates {
		label := d
		if len(d) == len("2006-01-02") {
			label = d[5:7] + "/" + d[8:]
		}
		points = append(points, SessionPoint{Label: label, Volume: volumeByDate[d]})
	}
	if len(points) == 0 {
		points = append(points, SessionPoint{Label: "No Data", Volume: 0})
	}
	return points
}

func heatmap(viewMonth time.Time, activeDates map[string]bool) []HeatmapDay {
	year, month := viewMonth.Year(), viewMonth.Month()
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, viewMonth.Location()).Day()

	days := make([]HeatmapDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, d)
		days = append(days, HeatmapDay{Date: date, Active: activeDates[date]})
	}
	return days
}

// weeklyAdvice counts active dates in the trailing 7 calendar days
// (including today) against the weekly goal. The goal±1 thresholds are
// a product decision carried over as given.
func weeklyAdvice(activeDates map[string]bool, weeklyGoal int, now time.Time) Advice {
	if weeklyGoal <= 0 {
		weeklyGoal = 3
	}

	active := 0
	for i := 0; i < 7; i++ {
		d := now.AddDate(0, 0, -i).Format("2006-01-02")
		if activeDates[d] {
			active++
		}
	}

	switch {
	case active > weeklyGoal+1:
		return Advice{Kind: AdviceWarning, Text: "⚠️ 訓練量很大，注意身體恢復與睡眠喔！"}
	case active >= weeklyGoal-1:
		return Advice{Kind: AdviceGood, Text: "🔥 目前的訓練頻率非常完美，繼續保持！"}
	default:
		remaining := weeklyGoal - active
		return Advice{Kind: AdviceEncourage, Text: fmt.Sprintf("💪 本週還差 %d 天達標，加油！", remaining)}
	}
}
