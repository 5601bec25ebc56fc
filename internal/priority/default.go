package priority

import "ai-news-clipper/internal/model"

var wallClock = New(nil)

// Score scores item against the wall clock.
func Score(item model.NewsItem) float64 { return wallClock.Score(item) }

// Classify classifies item against the wall clock.
func Classify(item model.NewsItem) model.Category { return wallClock.Classify(item) }

// Sort ranks items against the wall clock.
func Sort(items []model.NewsItem) []model.ScoredNewsItem { return wallClock.Sort(items) }

// Group buckets items by tier against the wall clock.
func Group(items []model.NewsItem) map[model.Category][]model.ScoredNewsItem {
	return wallClock.Group(items)
}

// Explain explains item's score against the wall clock.
func Explain(item model.NewsItem) string { return wallClock.Explain(item) }
