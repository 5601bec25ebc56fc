package clipper

import (
	"testing"

	"ai-news-clipper/internal/ai"
	"ai-news-clipper/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConfig(t *testing.T) {
	var cfg config.Config
	cfg.Schedule.Timezone = "UTC"
	cfg.FillDefaults()

	c, err := FromConfig(&cfg, nil)
	require.NoError(t, err)
	assert.Len(t, c.Sources, len(config.DefaultSources))
	assert.Equal(t, "TechCrunch AI", c.Sources[0].Name)
	assert.IsType(t, ai.Fallback{}, c.Summarizer)
	assert.Equal(t, 4, c.OtherNews)
	assert.Equal(t, "daily", c.Channel)
	assert.Equal(t, "UTC", c.Location.String())
	assert.Nil(t, c.Guard)
}

func TestFromConfigInvalid(t *testing.T) {
	cases := map[string]func(*config.Config){
		"scrape timeout": func(c *config.Config) { c.Scrape.Timeout = "soon" },
		"slack timeout":  func(c *config.Config) { c.Slack.Timeout = "10" },
		"timezone":       func(c *config.Config) { c.Schedule.Timezone = "Mars/Olympus" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			var cfg config.Config
			cfg.Schedule.Timezone = "UTC"
			cfg.FillDefaults()
			mutate(&cfg)
			_, err := FromConfig(&cfg, nil)
			assert.Error(t, err)
		})
	}
}
