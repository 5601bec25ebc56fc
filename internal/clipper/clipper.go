// Package clipper runs one clipping pass: collect headlines, rank them,
// summarize the top story and the day's trend, and deliver the digest.
package clipper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ai-news-clipper/internal/ai"
	"ai-news-clipper/internal/digest"
	"ai-news-clipper/internal/metrics"
	"ai-news-clipper/internal/model"
	"ai-news-clipper/internal/priority"
	"ai-news-clipper/internal/scrape"
	"ai-news-clipper/internal/slack"
)

// Scraper collects raw news items.
type Scraper interface {
	ScrapeAll(ctx context.Context, sources []scrape.Source) []model.NewsItem
}

// Notifier delivers the digest message.
type Notifier interface {
	Post(ctx context.Context, msg slack.Message) error
}

// Guard remembers which periods were already delivered.
type Guard interface {
	IsPublished(ctx context.Context, channel, period string) (bool, error)
	MarkPublished(ctx context.Context, channel, period string) error
}

// NewsSummary is the reported view of a ranked item.
type NewsSummary struct {
	Title            string         `json:"title"`
	URL              string         `json:"url"`
	Source           string         `json:"source"`
	PriorityScore    float64        `json:"priorityScore"`
	PriorityCategory model.Category `json:"priorityCategory"`
}

func summaryOf(it model.ScoredNewsItem) NewsSummary {
	return NewsSummary{
		Title:            it.Title,
		URL:              it.URL,
		Source:           it.Source,
		PriorityScore:    it.PriorityScore,
		PriorityCategory: it.PriorityCategory,
	}
}

// Result is the outcome of a run.
type Result struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	NewsCount    int           `json:"newsCount"`
	MainNews     *NewsSummary  `json:"mainNews,omitempty"`
	Summary      string        `json:"summary,omitempty"`
	TrendSummary string        `json:"trendSummary,omitempty"`
	OtherNews    []NewsSummary `json:"otherNews,omitempty"`
	SlackSent    bool          `json:"slackSent"`
	Skipped      bool          `json:"skipped,omitempty"`

	Ranked []model.ScoredNewsItem `json:"-"`
}

const (
	MessageDone             = "AI news clipping completed"
	MessageNoNews           = "no AI news collected"
	MessageAlreadyDelivered = "already delivered"
)

// Clipper wires the pipeline stages together. Stages run one after another.
type Clipper struct {
	Scraper    Scraper
	Sources    []scrape.Source
	Scorer     *priority.Scorer
	Summarizer ai.Summarizer
	Notifier   Notifier
	Title      string // message title, supports {.CurrentDate}
	OtherNews  int
	DryRun     bool

	// Daily guard; optional.
	Guard    Guard
	Channel  string
	Location *time.Location

	Now func() time.Time
}

func (c *Clipper) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Clipper) localNow() time.Time {
	if c.Location != nil {
		return c.now().In(c.Location)
	}
	return c.now()
}

// Run executes a full clipping pass.
func (c *Clipper) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	defer func() { metrics.RunDuration.Observe(time.Since(start).Seconds()) }()

	slog.Info("clipper: run started", "sources", len(c.Sources))
	items := c.Scraper.ScrapeAll(ctx, c.Sources)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("clipper: scrape: %w", err)
	}
	if len(items) == 0 {
		slog.Warn("clipper: no AI news collected")
		return &Result{Success: false, Message: MessageNoNews}, nil
	}
	slog.Info("clipper: collected items", "count", len(items))

	ranked := c.Scorer.Sort(items)
	for _, it := range ranked {
		metrics.RecordRanked(string(it.PriorityCategory), it.PriorityScore)
	}
	main := ranked[0]
	slog.Info("clipper: main item selected", "title", main.Title, "score", main.PriorityScore, "category", main.PriorityCategory)

	summary := c.summarizeMain(ctx, main)
	trend := c.summarizeTrends(ctx, ranked)

	res := &Result{
		Success:      true,
		Message:      MessageDone,
		NewsCount:    len(items),
		Summary:      summary,
		TrendSummary: trend,
		Ranked:       ranked,
	}
	m := summaryOf(main)
	res.MainNews = &m
	for _, it := range ranked[1:min(len(ranked), max(c.OtherNews, 0)+1)] {
		res.OtherNews = append(res.OtherNews, summaryOf(it))
	}

	if c.DryRun {
		slog.Info("clipper: dry run, skipping delivery")
		return res, nil
	}
	title := digest.ExpandVars(c.Title, c.localNow())
	err := c.Notifier.Post(ctx, slack.BuildMessage(title, main, summary, trend))
	metrics.RecordDelivery(err)
	switch {
	case errors.Is(err, slack.ErrNoWebhook):
		slog.Error("clipper: slack webhook url is not configured")
	case err != nil:
		slog.Error("clipper: slack delivery failed", "error", err)
	default:
		slog.Info("clipper: slack delivery completed")
		res.SlackSent = true
	}
	return res, nil
}

func (c *Clipper) summarizeMain(ctx context.Context, main model.ScoredNewsItem) string {
	s, err := c.Summarizer.SummarizeMain(ctx, main)
	metrics.RecordSummary("main", err)
	if err != nil {
		return ai.ErrorMainSummary
	}
	if s == "" {
		return ai.FallbackMainSummary
	}
	return s
}

func (c *Clipper) summarizeTrends(ctx context.Context, ranked []model.ScoredNewsItem) string {
	s, err := c.Summarizer.SummarizeTrends(ctx, ranked)
	metrics.RecordSummary("trend", err)
	if err != nil || s == "" {
		return ai.FallbackTrendSummary
	}
	return s
}

// PeriodKey names the delivery day of t in loc.
func PeriodKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("2006-01-02")
}

// RunDaily runs at most one successful delivery per day. Without a Guard it is Run.
func (c *Clipper) RunDaily(ctx context.Context) (*Result, error) {
	if c.Guard == nil {
		return c.Run(ctx)
	}
	period := PeriodKey(c.now(), c.Location)
	done, err := c.Guard.IsPublished(ctx, c.Channel, period)
	if err != nil {
		return nil, fmt.Errorf("clipper: check delivery guard: %w", err)
	}
	if done {
		slog.Info("clipper: already delivered for period", "channel", c.Channel, "period", period)
		return &Result{Success: true, Message: MessageAlreadyDelivered, Skipped: true}, nil
	}
	res, err := c.Run(ctx)
	if err != nil {
		return nil, err
	}
	if res.SlackSent {
		if err := c.Guard.MarkPublished(ctx, c.Channel, period); err != nil {
			slog.Error("clipper: mark delivered failed", "channel", c.Channel, "period", period, "error", err)
		}
	}
	return res, nil
}
