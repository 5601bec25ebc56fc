package config

import "testing"

func TestFillDefaults(t *testing.T) {
	var c Config
	c.FillDefaults()

	if c.Server.Addr != ":3000" {
		t.Errorf("server addr: got %q", c.Server.Addr)
	}
	if c.OpenAI.Model != "gpt-4" {
		t.Errorf("openai model: got %q", c.OpenAI.Model)
	}
	if len(c.Scrape.Sources) != len(DefaultSources) {
		t.Fatalf("sources: got %d want %d", len(c.Scrape.Sources), len(DefaultSources))
	}
	if c.Scrape.MaxPerSource != 10 || c.Scrape.Concurrency != 1 {
		t.Errorf("scrape limits: got %d/%d", c.Scrape.MaxPerSource, c.Scrape.Concurrency)
	}
	if c.Schedule.Time != "11:00" || c.Schedule.Timezone != "Asia/Seoul" {
		t.Errorf("schedule: got %s %s", c.Schedule.Time, c.Schedule.Timezone)
	}
	if c.Redis.Addr != "" {
		t.Errorf("redis must stay disabled by default, got %q", c.Redis.Addr)
	}

	// defaults must not alias the package-level tables
	c.Scrape.Sources[0].Name = "changed"
	if DefaultSources[0].Name != "TechCrunch AI" {
		t.Errorf("DefaultSources mutated through config")
	}
}

func TestFillDefaultsKeepsExplicitValues(t *testing.T) {
	c := Config{
		Server:  ServerConfig{Addr: ":8080"},
		Scrape:  ScrapeConfig{Sources: []SourceConfig{{Name: "x", URL: "http://x", Selector: "a"}}},
		Clipper: ClipperConfig{OtherNews: 2},
	}
	c.FillDefaults()
	if c.Server.Addr != ":8080" {
		t.Errorf("server addr overwritten: %q", c.Server.Addr)
	}
	if len(c.Scrape.Sources) != 1 {
		t.Errorf("sources overwritten: %d", len(c.Scrape.Sources))
	}
	if c.Clipper.OtherNews != 2 {
		t.Errorf("other news overwritten: %d", c.Clipper.OtherNews)
	}
}
