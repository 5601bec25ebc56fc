package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"ai-news-clipper/internal/digest"
	"ai-news-clipper/internal/model"
	"ai-news-clipper/internal/priority"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var scoreExplain bool

// scoreCmd ranks items read from a YAML file without scraping.
var scoreCmd = &cobra.Command{
	Use:   "score <items.yaml>",
	Short: "Rank news items from a YAML file by priority",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := readItems(args[0])
		if err != nil {
			return err
		}
		now := time.Now()
		s := priority.At(now)
		for i := range items {
			if items[i].PublishedAt.IsZero() {
				items[i].PublishedAt = now
			}
		}

		var explain func(model.ScoredNewsItem) string
		if scoreExplain {
			explain = func(it model.ScoredNewsItem) string { return s.Explain(it.NewsItem) }
		}
		report, err := digest.Render(digest.Build("Priority ranking", s.Sort(items), explain, now))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), report)
		return nil
	},
}

// itemRecord mirrors model.NewsItem with a raw timestamp so one bad value
// does not reject the whole file.
type itemRecord struct {
	Title       string    `yaml:"title"`
	Content     string    `yaml:"content"`
	Source      string    `yaml:"source"`
	URL         string    `yaml:"url"`
	PublishedAt yaml.Node `yaml:"publishedAt"`
}

// timestampLayouts are the YAML timestamp forms plus RFC3339.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-1-2T15:4:5.999999999Z07:00",
	"2006-1-2t15:4:5.999999999Z07:00",
	"2006-1-2 15:4:5.999999999",
	"2006-1-2",
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// readItems decodes a YAML list of items. A missing or unparsable
// publishedAt is left zero.
func readItems(path string) ([]model.NewsItem, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var recs []itemRecord
	if err := yaml.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	items := make([]model.NewsItem, 0, len(recs))
	for _, r := range recs {
		it := model.NewsItem{Title: r.Title, Content: r.Content, Source: r.Source, URL: r.URL}
		if raw := r.PublishedAt.Value; strings.TrimSpace(raw) != "" {
			if t, ok := parseTimestamp(raw); ok {
				it.PublishedAt = t
			} else {
				slog.Warn("score: invalid publishedAt, using now", "title", r.Title, "publishedAt", raw)
			}
		}
		items = append(items, it)
	}
	return items, nil
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreExplain, "explain", false, "print the score breakdown of each item")
	rootCmd.AddCommand(scoreCmd)
}
