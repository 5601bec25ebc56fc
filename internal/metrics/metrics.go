// Package metrics provides Prometheus metrics for the news clipper.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScrapedItems counts AI headlines collected per source.
	ScrapedItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clipper",
			Name:      "scraped_items_total",
			Help:      "Total number of AI headlines collected",
		},
		[]string{"source"},
	)

	// PriorityScores observes the score of every ranked item.
	PriorityScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "clipper",
			Name:      "priority_score",
			Help:      "Distribution of priority scores",
			Buckets:   []float64{2, 3, 4, 5, 6, 7, 8, 8.5, 9, 10},
		},
	)

	// RankedItems counts ranked items per priority tier.
	RankedItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clipper",
			Name:      "ranked_items_total",
			Help:      "Total number of ranked items by priority category",
		},
		[]string{"category"},
	)

	// Summaries counts summarizer calls by kind and outcome.
	Summaries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clipper",
			Name:      "summaries_total",
			Help:      "Total number of summarizer calls",
		},
		[]string{"kind", "status"},
	)

	// Deliveries counts webhook deliveries by outcome.
	Deliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clipper",
			Name:      "deliveries_total",
			Help:      "Total number of webhook deliveries",
		},
		[]string{"status"},
	)

	// RunDuration measures a full pipeline run.
	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "clipper",
			Name:      "run_duration_seconds",
			Help:      "Duration of clipping runs in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordScrape records the items collected from one source.
func RecordScrape(source string, n int) {
	ScrapedItems.WithLabelValues(source).Add(float64(n))
}

// RecordRanked records one ranked item.
func RecordRanked(category string, score float64) {
	RankedItems.WithLabelValues(category).Inc()
	PriorityScores.Observe(score)
}

// RecordSummary records a summarizer call.
func RecordSummary(kind string, err error) {
	Summaries.WithLabelValues(kind, status(err)).Inc()
}

// RecordDelivery records a webhook delivery.
func RecordDelivery(err error) {
	Deliveries.WithLabelValues(status(err)).Inc()
}
