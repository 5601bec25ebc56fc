// Package digest renders ranked news as a plain-text report.
package digest

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"
	"time"

	"ai-news-clipper/internal/model"
)

// Entry is one ranked line of the report.
type Entry struct {
	Rank        int
	Title       string
	URL         string
	Source      string
	Score       float64
	Explanation string
}

// Group holds the entries of one priority tier.
type Group struct {
	Category model.Category
	Entries  []Entry
}

// Report is the template input.
type Report struct {
	Title     string
	Generated string
	Total     int
	Groups    []Group
}

//go:embed report.tmpl
var reportTpl string

var compiled = template.Must(template.New("report").Funcs(template.FuncMap{
	"indent": indent,
}).Parse(reportTpl))

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "   " + l
	}
	return strings.Join(lines, "\n")
}

// Build groups ranked items by tier, keeping their overall rank.
// explain may be nil.
func Build(title string, ranked []model.ScoredNewsItem, explain func(model.ScoredNewsItem) string, now time.Time) Report {
	r := Report{
		Title:     ExpandVars(title, now),
		Generated: now.Format("2006-01-02 15:04 MST"),
		Total:     len(ranked),
	}
	idx := make(map[model.Category]int, len(model.Categories))
	for i, c := range model.Categories {
		r.Groups = append(r.Groups, Group{Category: c})
		idx[c] = i
	}
	for i, it := range ranked {
		e := Entry{
			Rank:   i + 1,
			Title:  it.Title,
			URL:    it.URL,
			Source: it.Source,
			Score:  it.PriorityScore,
		}
		if explain != nil {
			e.Explanation = explain(it)
		}
		g, ok := idx[it.PriorityCategory]
		if !ok {
			g = idx[model.CategoryLow]
		}
		r.Groups[g].Entries = append(r.Groups[g].Entries, e)
	}
	return r
}

// Render executes the report template.
func Render(r Report) (string, error) {
	var buf bytes.Buffer
	if err := compiled.Execute(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}
