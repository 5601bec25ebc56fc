// Package priority ranks news items by a bounded heuristic score built from
// keyword, recency, source and title-quality signals.
package priority

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"ai-news-clipper/internal/model"
)

const (
	keywordFactor = 2.0
	recencyFactor = 1.5
	sourceFactor  = 1.0
	baseline      = 1.0
	maxScore      = 10.0

	highThreshold   = 8.5
	mediumThreshold = 6.0
)

// Scorer computes priority scores against a clock. The zero value uses the wall clock.
type Scorer struct {
	now func() time.Time
}

// New returns a Scorer reading time from now. A nil now means time.Now.
func New(now func() time.Time) *Scorer {
	return &Scorer{now: now}
}

// At returns a Scorer frozen at t.
func At(t time.Time) *Scorer {
	return New(func() time.Time { return t })
}

func (s *Scorer) clock() time.Time {
	if s == nil || s.now == nil {
		return time.Now()
	}
	return s.now()
}

// frozen pins the clock for the duration of one batch.
func (s *Scorer) frozen() *Scorer {
	return At(s.clock())
}

// MatchKeywords returns every table keyword contained in the item's title or content.
func (s *Scorer) MatchKeywords(item model.NewsItem) []Keyword {
	text := strings.ToLower(item.Title + " " + item.Content)
	var out []Keyword
	for _, k := range keywordTable {
		if strings.Contains(text, strings.ToLower(k.Phrase)) {
			out = append(out, k)
		}
	}
	return out
}

// KeywordWeight sums the strongest match of each category and adds a bonus
// when more than one category matched.
func (s *Scorer) KeywordWeight(item model.NewsItem) float64 {
	best := map[KeywordCategory]float64{}
	for _, k := range s.MatchKeywords(item) {
		if w, ok := best[k.Category]; !ok || k.Weight > w {
			best[k.Category] = k.Weight
		}
	}
	total := 0.0
	for _, w := range best {
		total += w
	}
	if len(best) > 1 {
		total += crossCategoryBonus
	}
	return total
}

// RecencyWeight is a step function over the time elapsed since publication.
// A missing timestamp counts as published now.
func (s *Scorer) RecencyWeight(item model.NewsItem) float64 {
	if item.PublishedAt.IsZero() {
		return 1.0
	}
	age := s.clock().Sub(item.PublishedAt)
	switch {
	case age <= time.Hour:
		return 1.0
	case age <= 6*time.Hour:
		return 0.9
	case age <= 24*time.Hour:
		return 0.8
	case age <= 72*time.Hour:
		return 0.6
	case age <= 168*time.Hour:
		return 0.4
	default:
		return 0.2
	}
}

// SourceWeight looks the source label up in the reputation table.
func (s *Scorer) SourceWeight(item model.NewsItem) float64 {
	if w, ok := sourceWeights[item.Source]; ok {
		return w
	}
	return defaultSourceWeight
}

// TitleQualityWeight rewards titles of moderate length that carry numbers or AI markers.
func (s *Scorer) TitleQualityWeight(item model.NewsItem) float64 {
	title := item.Title
	w := 0.0
	if n := utf8.RuneCountInString(title); n >= 30 && n <= 80 {
		w += 0.3
	}
	if strings.IndexFunc(title, isASCIIDigit) >= 0 {
		w += 0.2
	}
	lower := strings.ToLower(title)
	for _, m := range aiMarkers {
		if strings.Contains(lower, strings.ToLower(m)) {
			w += 0.2
			break
		}
	}
	return w
}

func isASCIIDigit(r rune) bool {
	return r <= unicode.MaxASCII && unicode.IsDigit(r)
}

// Score combines the four signals into a value clamped to [0, 10].
func (s *Scorer) Score(item model.NewsItem) float64 {
	score := s.KeywordWeight(item)*keywordFactor +
		s.RecencyWeight(item)*recencyFactor +
		s.SourceWeight(item)*sourceFactor +
		s.TitleQualityWeight(item) +
		baseline
	if score > maxScore {
		return maxScore
	}
	return score
}

// Classify returns the priority tier of the item's score.
func (s *Scorer) Classify(item model.NewsItem) model.Category {
	return CategoryFor(s.Score(item))
}

// CategoryFor maps a score onto its tier.
func CategoryFor(score float64) model.Category {
	switch {
	case score >= highThreshold:
		return model.CategoryHigh
	case score >= mediumThreshold:
		return model.CategoryMedium
	default:
		return model.CategoryLow
	}
}

// ScoreItem returns a scored copy of item; the input is never modified.
func (s *Scorer) ScoreItem(item model.NewsItem) model.ScoredNewsItem {
	score := s.Score(item)
	return model.ScoredNewsItem{
		NewsItem:         item,
		PriorityScore:    score,
		PriorityCategory: CategoryFor(score),
	}
}

// Sort scores every item and orders them by descending score. Equal scores
// keep their input order.
func (s *Scorer) Sort(items []model.NewsItem) []model.ScoredNewsItem {
	fs := s.frozen()
	out := make([]model.ScoredNewsItem, 0, len(items))
	for _, it := range items {
		out = append(out, fs.ScoreItem(it))
	}
	sortByScore(out)
	return out
}

// Group partitions scored items by tier, each bucket sorted like Sort.
// All three tiers are present in the result, possibly empty.
func (s *Scorer) Group(items []model.NewsItem) map[model.Category][]model.ScoredNewsItem {
	fs := s.frozen()
	out := make(map[model.Category][]model.ScoredNewsItem, len(model.Categories))
	for _, c := range model.Categories {
		out[c] = []model.ScoredNewsItem{}
	}
	for _, it := range items {
		si := fs.ScoreItem(it)
		out[si.PriorityCategory] = append(out[si.PriorityCategory], si)
	}
	for _, c := range model.Categories {
		sortByScore(out[c])
	}
	return out
}

func sortByScore(items []model.ScoredNewsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PriorityScore > items[j].PriorityScore
	})
}

var categoryNotes = map[model.Category]string{
	model.CategoryHigh:   "This item covers a breakthrough technology or a major announcement, so it ranks as high priority.",
	model.CategoryMedium: "This item covers a new feature or an update, so it ranks as medium priority.",
	model.CategoryLow:    "This item covers general AI news.",
}

// Explain describes the item's score, tier and matched keywords.
func (s *Scorer) Explain(item model.NewsItem) string {
	fs := s.frozen()
	si := fs.ScoreItem(item)
	matched := fs.MatchKeywords(item)
	phrases := make([]string, 0, len(matched))
	for _, k := range matched {
		phrases = append(phrases, k.Phrase)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Priority score: %.1f/10.0 (%s)\n", si.PriorityScore, si.PriorityCategory)
	fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(phrases, ", "))
	b.WriteString(categoryNotes[si.PriorityCategory])
	return b.String()
}
