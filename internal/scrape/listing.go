package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ai-news-clipper/internal/metrics"
	"ai-news-clipper/internal/model"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
)

// Source is a listing page and the selector matching its headline links.
type Source struct {
	Name     string
	URL      string
	Selector string
}

// Client scrapes AI headlines from listing pages.
type Client struct {
	http         *http.Client
	userAgent    string
	maxPerSource int
	concurrency  int
	keywords     []string
	now          func() time.Time
}

// Options configures a Client.
type Options struct {
	Timeout      time.Duration
	UserAgent    string
	MaxPerSource int
	Concurrency  int
	AIKeywords   []string
}

// New creates a listing scraper.
func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.MaxPerSource <= 0 {
		opts.MaxPerSource = 10
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	kw := make([]string, 0, len(opts.AIKeywords))
	for _, k := range opts.AIKeywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			kw = append(kw, k)
		}
	}
	return &Client{
		http:         &http.Client{Timeout: opts.Timeout},
		userAgent:    opts.UserAgent,
		maxPerSource: opts.MaxPerSource,
		concurrency:  opts.Concurrency,
		keywords:     kw,
		now:          time.Now,
	}
}

// ScrapeAll collects items from every source and concatenates them in source
// order. A failing source is logged and contributes nothing.
func (c *Client) ScrapeAll(ctx context.Context, sources []Source) []model.NewsItem {
	results := make([][]model.NewsItem, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			items, err := c.Scrape(gctx, src)
			if err != nil {
				slog.Error("scrape: source failed", "source", src.Name, "error", err)
				return nil
			}
			metrics.RecordScrape(src.Name, len(items))
			results[i] = items
			return nil
		})
	}
	_ = g.Wait()

	var all []model.NewsItem
	for _, items := range results {
		all = append(all, items...)
	}
	return all
}

// Scrape fetches one listing page and returns its AI headlines.
func (c *Client) Scrape(ctx context.Context, src Source) ([]model.NewsItem, error) {
	slog.Info("scrape: fetching", "source", src.Name, "url", src.URL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("scrape %s: status=%d body=%s", src.Name, resp.StatusCode, string(b))
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("scrape %s: parse html: %w", src.Name, err)
	}
	return c.extract(doc, src)
}

func (c *Client) extract(doc *goquery.Document, src Source) ([]model.NewsItem, error) {
	base, err := url.Parse(src.URL)
	if err != nil {
		return nil, fmt.Errorf("scrape %s: invalid url: %w", src.Name, err)
	}
	collectedAt := c.now()
	sel := doc.Find(src.Selector)
	slog.Debug("scrape: selector matched", "source", src.Name, "selector", src.Selector, "count", sel.Length())

	var items []model.NewsItem
	sel.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= c.maxPerSource {
			return false
		}
		title := strings.TrimSpace(s.Text())
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if title == "" || href == "" {
			return true
		}
		if !c.isAINews(title) {
			slog.Debug("scrape: skipped non-AI headline", "source", src.Name, "title", title)
			return true
		}
		link, err := resolve(base, href)
		if err != nil {
			slog.Debug("scrape: bad link", "source", src.Name, "href", href, "error", err)
			return true
		}
		items = append(items, model.NewsItem{
			Title:       title,
			URL:         link,
			Source:      src.Name,
			PublishedAt: collectedAt,
		})
		return true
	})
	slog.Info("scrape: collected AI headlines", "source", src.Name, "count", len(items))
	return items, nil
}

func (c *Client) isAINews(title string) bool {
	t := strings.ToLower(title)
	for _, k := range c.keywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

var errNoHost = errors.New("listing url has no host")

// resolve turns a relative headline link into an absolute URL on the listing's host.
func resolve(base *url.URL, href string) (string, error) {
	if strings.HasPrefix(href, "http") {
		return href, nil
	}
	if base.Host == "" {
		return "", errNoHost
	}
	origin := base.Scheme + "://" + base.Host
	if strings.HasPrefix(href, "/") {
		return origin + href, nil
	}
	return origin + "/" + href, nil
}
