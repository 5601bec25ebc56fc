package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ai-news-clipper/internal/markdown"
	"ai-news-clipper/internal/model"

	openai "github.com/sashabaranov/go-openai"
)

// Summarizer defines the AI summary interface used by the clipping pipeline.
type Summarizer interface {
	// SummarizeMain creates a 3-4 sentence summary of the top-ranked item.
	SummarizeMain(ctx context.Context, item model.ScoredNewsItem) (string, error)
	// SummarizeTrends creates a 2-3 sentence overview of the day's ranked items.
	SummarizeTrends(ctx context.Context, items []model.ScoredNewsItem) (string, error)
}

const (
	FallbackMainSummary  = "A notable AI story was selected today. See the original article for details."
	FallbackTrendSummary = "AI technology keeps advancing quickly across many fields."

	// ErrorMainSummary replaces the main summary when the OpenAI call fails.
	ErrorMainSummary = "This is an important AI news story."
)

// Fallback returns fixed texts; it is used when no API key is configured.
type Fallback struct{}

func (Fallback) SummarizeMain(context.Context, model.ScoredNewsItem) (string, error) {
	return FallbackMainSummary, nil
}

func (Fallback) SummarizeTrends(context.Context, []model.ScoredNewsItem) (string, error) {
	return FallbackTrendSummary, nil
}

// OpenAIClient implements Summarizer using OpenAI Chat Completions API.
type OpenAIClient struct {
	client     *openai.Client
	model      string
	language   string
	trendItems int
}

type Config struct {
	APIKey     string
	Model      string
	BaseURL    string // optional
	Language   string
	TrendItems int // items included in the trend prompt
}

var stopSequences = []string{"\n\n", "다음:", "추가:", "참고:"}

func NewOpenAI(cfg Config) *OpenAIClient {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4
	}
	n := cfg.TrendItems
	if n <= 0 {
		n = 10
	}
	return &OpenAIClient{client: c, model: model, language: cfg.Language, trendItems: n}
}

// New returns an OpenAI-backed summarizer, or Fallback when cfg has no API key.
func New(cfg Config) Summarizer {
	if strings.TrimSpace(cfg.APIKey) == "" {
		slog.Warn("ai: no API key configured, using fallback summaries")
		return Fallback{}
	}
	return NewOpenAI(cfg)
}

func (o *OpenAIClient) SummarizeMain(ctx context.Context, item model.ScoredNewsItem) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	sys := fmt.Sprintf(`
		Summarize the following AI news item in %s, concisely and to the point.
		Requirements:
		- capture the core of the article
		- exactly 3-4 sentences, each one complete
		- no markdown syntax
		- focus on the key content and its impact rather than technical details
		- easy to read and understand
		`, langOrDefault(o.language))
	user := fmt.Sprintf("Title: %s\nSource: %s\n\nSummary:", item.Title, item.Source)
	out, err := o.create(ctx, sys, user, 400)
	if err != nil {
		slog.Error("openai: summarize main item error", "err", err)
		return "", err
	}
	return markdown.Strip(out), nil
}

func (o *OpenAIClient) SummarizeTrends(ctx context.Context, items []model.ScoredNewsItem) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()
	if len(items) == 0 {
		return "", nil
	}
	parts := make([]string, 0, min(len(items), o.trendItems))
	for i, it := range items {
		if i >= o.trendItems {
			break
		}
		parts = append(parts, fmt.Sprintf("Title: %s\nSource: %s", it.Title, it.Source))
	}
	sys := fmt.Sprintf(`
		Analyze the following AI news items and summarize today's AI trend in %s, concisely.
		Requirements:
		- identify what the items have in common and the main trend
		- exactly 2-3 sentences, each one complete
		- no markdown syntax
		- focus on technology trends and industry movement
		- easy to read and understand
		`, langOrDefault(o.language))
	user := fmt.Sprintf("News items:\n%s\n\nSummary:", strings.Join(parts, "\n\n"))
	out, err := o.create(ctx, sys, user, 300)
	if err != nil {
		slog.Error("openai: summarize trends error", "err", err)
		return "", err
	}
	return markdown.Strip(out), nil
}

func (o *OpenAIClient) create(ctx context.Context, system, user string, maxTokens int) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.2,
		Stop:        stopSequences,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func langOrDefault(lang string) string {
	l := strings.TrimSpace(lang)
	if l == "" {
		return "Korean"
	}
	return l
}
