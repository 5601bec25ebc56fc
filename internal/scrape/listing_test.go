package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingHTML = `<html><body>
<h2><a href="/2025/03/openai-gpt">OpenAI ships GPT update</a></h2>
<h2><a href="https://other.example.com/robots">Warehouse 로봇 fleet grows</a></h2>
<h3><a href="relative/path">Deep Learning for weather</a></h3>
<h3><a href="/sports">Local team wins final</a></h3>
<h3><a href="">Empty link about AI</a></h3>
<h3><a href="/blank">   </a></h3>
</body></html>`

func newTestClient(max int) *Client {
	c := New(Options{
		Timeout:      2 * time.Second,
		UserAgent:    "test-agent",
		MaxPerSource: max,
		AIKeywords:   []string{"AI", "GPT", "로봇", "deep learning"},
	})
	c.now = func() time.Time { return time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC) }
	return c
}

func TestScrapeFiltersAndResolves(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, listingHTML)
	}))
	defer srv.Close()

	c := newTestClient(10)
	items, err := c.Scrape(context.Background(), Source{Name: "Test AI", URL: srv.URL + "/tag/ai/", Selector: "h2 a, h3 a"})
	require.NoError(t, err)
	assert.Equal(t, "test-agent", gotUA)

	require.Len(t, items, 3)
	assert.Equal(t, "OpenAI ships GPT update", items[0].Title)
	assert.Equal(t, srv.URL+"/2025/03/openai-gpt", items[0].URL)
	assert.Equal(t, "https://other.example.com/robots", items[1].URL)
	assert.Equal(t, srv.URL+"/relative/path", items[2].URL)
	for _, it := range items {
		assert.Equal(t, "Test AI", it.Source)
		assert.Empty(t, it.Content)
		assert.Equal(t, c.now(), it.PublishedAt)
	}
}

func TestScrapeHonorsMaxPerSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, listingHTML)
	}))
	defer srv.Close()

	items, err := newTestClient(2).Scrape(context.Background(), Source{Name: "x", URL: srv.URL, Selector: "h2 a, h3 a"})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestScrapeStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestClient(10).Scrape(context.Background(), Source{Name: "x", URL: srv.URL, Selector: "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=403")
}

func TestScrapeAllSkipsFailingSources(t *testing.T) {
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<h2><a href="/a">AI %s</a></h2>`, strings.TrimPrefix(r.URL.Path, "/"))
	}))
	defer ok.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	for _, conc := range []int{1, 3} {
		c := newTestClient(10)
		c.concurrency = conc
		items := c.ScrapeAll(context.Background(), []Source{
			{Name: "first", URL: ok.URL + "/one", Selector: "h2 a"},
			{Name: "broken", URL: bad.URL, Selector: "h2 a"},
			{Name: "second", URL: ok.URL + "/two", Selector: "h2 a"},
		})
		require.Len(t, items, 2, "concurrency %d", conc)
		assert.Equal(t, "AI one", items[0].Title)
		assert.Equal(t, "first", items[0].Source)
		assert.Equal(t, "AI two", items[1].Title)
		assert.Equal(t, "second", items[1].Source)
	}
}

func TestResolve(t *testing.T) {
	c := newTestClient(1)
	assert.True(t, c.isAINews("New ai chip"))
	assert.False(t, c.isAINews("Weather report"))

	_, err := resolve(mustParse(t, "relative"), "/x")
	assert.ErrorIs(t, err, errNoHost)
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}
