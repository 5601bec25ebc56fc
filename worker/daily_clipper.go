package worker

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"ai-news-clipper/internal/clipper"
)

// DailyRunner runs the guarded pipeline.
type DailyRunner interface {
	RunDaily(ctx context.Context) (*clipper.Result, error)
}

// DailyClipper runs the pipeline once a day at a wall-clock time.
type DailyClipper struct {
	Runner   DailyRunner
	At       string // HH:MM
	Location *time.Location

	now func() time.Time
}

func (w *DailyClipper) Name() string { return "daily-clipper" }

func (w *DailyClipper) Start(ctx context.Context) error {
	hour, minute, err := ParseClock(w.At)
	if err != nil {
		return err
	}
	loc := w.Location
	if loc == nil {
		loc = time.UTC
	}
	now := w.now
	if now == nil {
		now = time.Now
	}
	for {
		t := now()
		next := NextRun(t, hour, minute, loc)
		slog.Info("scheduler: next run", "at", next.Format(time.RFC3339))
		timer := time.NewTimer(next.Sub(t))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
			w.runOnce(ctx)
		}
	}
}

func (w *DailyClipper) runOnce(ctx context.Context) {
	res, err := w.Runner.RunDaily(ctx)
	if err != nil {
		slog.Error("scheduler: daily run failed", "error", err)
		return
	}
	slog.Info("scheduler: daily run finished", "success", res.Success, "skipped", res.Skipped, "slack_sent", res.SlackSent, "news_count", res.NewsCount)
}

// ParseClock parses an HH:MM wall-clock time.
func ParseClock(s string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid schedule time %q: want HH:MM", s)
	}
	hour, err = strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid schedule hour in %q", s)
	}
	minute, err = strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid schedule minute in %q", s)
	}
	return hour, minute, nil
}

// NextRun returns the first instant strictly after now at hour:minute in loc.
func NextRun(now time.Time, hour, minute int, loc *time.Location) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, minute, 0, 0, loc)
	}
	return next
}
