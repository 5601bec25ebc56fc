package slack

import (
	"fmt"

	"ai-news-clipper/internal/model"
)

// Message is an incoming-webhook payload with Block Kit blocks.
type Message struct {
	Text   string  `json:"text"`
	Blocks []Block `json:"blocks,omitempty"`
}

// Block is the subset of Block Kit layout blocks the clipper sends.
type Block struct {
	Type string `json:"type"`
	Text *Text  `json:"text,omitempty"`
}

// Text is a Block Kit text object.
type Text struct {
	Type string `json:"type"` // plain_text | mrkdwn
	Text string `json:"text"`
}

func header(s string) Block  { return Block{Type: "header", Text: &Text{Type: "plain_text", Text: s}} }
func divider() Block         { return Block{Type: "divider"} }
func section(s string) Block { return Block{Type: "section", Text: &Text{Type: "mrkdwn", Text: s}} }

// BuildMessage lays out the daily clipping: the main story with its priority,
// the summary, the trend overview and a link to the original article.
func BuildMessage(title string, main model.ScoredNewsItem, summary, trend string) Message {
	body := fmt.Sprintf("📰 *%s*\n\n⭐ *Priority*: %s (%.1f/10.0)\n\n📝 *Summary*\n%s\n\n🔍 *Today's AI trend*\n%s",
		main.Title, main.PriorityCategory, main.PriorityScore, summary, trend)
	link := fmt.Sprintf("📚 *Original article*\n<%s|%s> (%s)", main.URL, main.Title, main.Source)
	return Message{
		Text: title,
		Blocks: []Block{
			header(title),
			divider(),
			section(body),
			divider(),
			section(link),
		},
	}
}
