package config

import "strings"

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// RedisConfig holds redis connection settings. An empty Addr disables the delivery guard.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// OpenAIConfig controls the summarizer.
type OpenAIConfig struct {
	APIKey   string `mapstructure:"api_key"`
	Model    string `mapstructure:"model"`
	BaseURL  string `mapstructure:"base_url"` // optional
	Language string `mapstructure:"language"`
}

// SlackConfig controls webhook delivery.
type SlackConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
	Title      string `mapstructure:"title"` // supports {.CurrentDate}
	Timeout    string `mapstructure:"timeout"`
}

// SourceConfig is one listing page to scrape.
type SourceConfig struct {
	Name     string `mapstructure:"name"`
	URL      string `mapstructure:"url"`
	Selector string `mapstructure:"selector"`
}

// ScrapeConfig controls collection.
type ScrapeConfig struct {
	Timeout      string         `mapstructure:"timeout"` // duration string, e.g., "10s"
	MaxPerSource int            `mapstructure:"max_per_source"`
	Concurrency  int            `mapstructure:"concurrency"`
	UserAgent    string         `mapstructure:"user_agent"`
	AIKeywords   []string       `mapstructure:"ai_keywords"`
	Sources      []SourceConfig `mapstructure:"sources"`
}

// ScheduleConfig controls the daily run.
type ScheduleConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Time     string `mapstructure:"time"`     // HH:MM
	Timezone string `mapstructure:"timezone"` // IANA name
	Channel  string `mapstructure:"channel"`  // delivery guard namespace
}

// ClipperConfig controls the pipeline output.
type ClipperConfig struct {
	OtherNews  int `mapstructure:"other_news"`
	TrendItems int `mapstructure:"trend_items"`
}

// Config is the top-level configuration structure.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Redis    RedisConfig    `mapstructure:"redis"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	Slack    SlackConfig    `mapstructure:"slack"`
	Scrape   ScrapeConfig   `mapstructure:"scrape"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Clipper  ClipperConfig  `mapstructure:"clipper"`
}

// DefaultUserAgent mimics a desktop browser; several sources reject bare clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// DefaultSources are the AI news listings collected when none are configured.
var DefaultSources = []SourceConfig{
	{Name: "TechCrunch AI", URL: "https://techcrunch.com/tag/artificial-intelligence/", Selector: "h2 a, h3 a, .post-block__title a"},
	{Name: "VentureBeat AI", URL: "https://venturebeat.com/category/ai/", Selector: ".Article__title a, h2 a, h3 a"},
	{Name: "MIT Tech Review", URL: "https://www.technologyreview.com/topic/artificial-intelligence/", Selector: ".teaserItem__title a, h2 a, h3 a"},
	{Name: "ZDNet AI", URL: "https://www.zdnet.com/topic/artificial-intelligence/", Selector: "h3 a, h2 a, .item-title a"},
	{Name: "The Verge AI", URL: "https://www.theverge.com/ai-artificial-intelligence", Selector: "h2 a, h3 a"},
	{Name: "Ars Technica AI", URL: "https://arstechnica.com/tag/artificial-intelligence/", Selector: "h2 a, h3 a, .entry-title a"},
	{Name: "Wired AI", URL: "https://www.wired.com/tag/artificial-intelligence/", Selector: "h3 a, h2 a, .SummaryItemHedLink"},
}

// DefaultAIKeywords decide whether a scraped headline is AI news.
var DefaultAIKeywords = []string{
	"AI", "artificial intelligence", "machine learning", "deep learning",
	"GPT", "ChatGPT", "OpenAI", "Google AI", "Microsoft AI",
	"자율주행", "로봇", "챗봇", "추천시스템", "예측분석", "인공지능",
	"바이브 코딩", "Cursor", "Gemini", "HyperClovaX",
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":3000"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4"
	}
	if c.OpenAI.Language == "" {
		c.OpenAI.Language = "Korean"
	}
	if c.Slack.Title == "" {
		c.Slack.Title = "🤖 AI News Clipping - Today's AI Trends"
	}
	if c.Slack.Timeout == "" {
		c.Slack.Timeout = "10s"
	}
	if c.Scrape.Timeout == "" {
		c.Scrape.Timeout = "10s"
	}
	if c.Scrape.MaxPerSource <= 0 {
		c.Scrape.MaxPerSource = 10
	}
	if c.Scrape.Concurrency <= 0 {
		c.Scrape.Concurrency = 1
	}
	if strings.TrimSpace(c.Scrape.UserAgent) == "" {
		c.Scrape.UserAgent = DefaultUserAgent
	}
	if len(c.Scrape.AIKeywords) == 0 {
		c.Scrape.AIKeywords = append([]string(nil), DefaultAIKeywords...)
	}
	if len(c.Scrape.Sources) == 0 {
		c.Scrape.Sources = append([]SourceConfig(nil), DefaultSources...)
	}
	if c.Schedule.Time == "" {
		c.Schedule.Time = "11:00"
	}
	if c.Schedule.Timezone == "" {
		c.Schedule.Timezone = "Asia/Seoul"
	}
	if c.Schedule.Channel == "" {
		c.Schedule.Channel = "daily"
	}
	if c.Clipper.OtherNews <= 0 {
		c.Clipper.OtherNews = 4
	}
	if c.Clipper.TrendItems <= 0 {
		c.Clipper.TrendItems = 10
	}
}
