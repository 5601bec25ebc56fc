package clipper

import (
	"fmt"
	"time"

	"ai-news-clipper/internal/ai"
	"ai-news-clipper/internal/config"
	"ai-news-clipper/internal/priority"
	"ai-news-clipper/internal/scrape"
	"ai-news-clipper/internal/slack"
)

// Sources converts configured listings into scrape sources.
func Sources(cfgs []config.SourceConfig) []scrape.Source {
	out := make([]scrape.Source, 0, len(cfgs))
	for _, s := range cfgs {
		out = append(out, scrape.Source{Name: s.Name, URL: s.URL, Selector: s.Selector})
	}
	return out
}

// FromConfig wires a Clipper from configuration. guard may be nil.
func FromConfig(cfg *config.Config, guard Guard) (*Clipper, error) {
	scrapeTimeout, err := time.ParseDuration(cfg.Scrape.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid scrape.timeout %q: %w", cfg.Scrape.Timeout, err)
	}
	slackTimeout, err := time.ParseDuration(cfg.Slack.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid slack.timeout %q: %w", cfg.Slack.Timeout, err)
	}
	loc, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule.timezone %q: %w", cfg.Schedule.Timezone, err)
	}
	return &Clipper{
		Scraper: scrape.New(scrape.Options{
			Timeout:      scrapeTimeout,
			UserAgent:    cfg.Scrape.UserAgent,
			MaxPerSource: cfg.Scrape.MaxPerSource,
			Concurrency:  cfg.Scrape.Concurrency,
			AIKeywords:   cfg.Scrape.AIKeywords,
		}),
		Sources: Sources(cfg.Scrape.Sources),
		Scorer:  priority.New(nil),
		Summarizer: ai.New(ai.Config{
			APIKey:     cfg.OpenAI.APIKey,
			Model:      cfg.OpenAI.Model,
			BaseURL:    cfg.OpenAI.BaseURL,
			Language:   cfg.OpenAI.Language,
			TrendItems: cfg.Clipper.TrendItems,
		}),
		Notifier:  slack.New(cfg.Slack.WebhookURL, slackTimeout),
		Title:     cfg.Slack.Title,
		OtherNews: cfg.Clipper.OtherNews,
		Guard:     guard,
		Channel:   cfg.Schedule.Channel,
		Location:  loc,
	}, nil
}
