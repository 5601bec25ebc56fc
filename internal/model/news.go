package model

import "time"

// NewsItem represents a single news listing collected from a source.
type NewsItem struct {
	Title       string    `json:"title" yaml:"title"`
	Content     string    `json:"content" yaml:"content"`
	Source      string    `json:"source" yaml:"source"`
	URL         string    `json:"url" yaml:"url"`
	PublishedAt time.Time `json:"publishedAt" yaml:"publishedAt"`
}

// Category is the coarse priority tier of a scored item.
type Category string

const (
	CategoryHigh   Category = "HIGH"
	CategoryMedium Category = "MEDIUM"
	CategoryLow    Category = "LOW"
)

// Categories lists the tiers from highest to lowest.
var Categories = []Category{CategoryHigh, CategoryMedium, CategoryLow}

// ScoredNewsItem decorates a news item with its priority score and tier.
type ScoredNewsItem struct {
	NewsItem
	PriorityScore    float64  `json:"priorityScore"`
	PriorityCategory Category `json:"priorityCategory"`
}
