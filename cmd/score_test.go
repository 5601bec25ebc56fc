package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const itemsYAML = `
- title: AI Companies Report Q4 Earnings
  source: TechCrunch AI
  url: https://example.com/earnings
- title: Revolutionary New AI Model Breaks All Previous Records
  content: A breakthrough in artificial intelligence has been achieved
  source: TechCrunch AI
  url: https://example.com/breakthrough
  publishedAt: 2025-03-14T02:00:00Z
`

func writeItems(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte(itemsYAML), 0o644))
	return path
}

func TestReadItems(t *testing.T) {
	items, err := readItems(writeItems(t))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].PublishedAt.IsZero())
	assert.True(t, items[1].PublishedAt.Equal(time.Date(2025, 3, 14, 2, 0, 0, 0, time.UTC)))
	assert.Equal(t, "https://example.com/breakthrough", items[1].URL)
}

func TestReadItemsBadTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	doc := "- title: a\n  publishedAt: \"yesterday\"\n- title: b\n  publishedAt: 2025-03-14 02:00:00\n- title: c\n  publishedAt: 2025-03-14\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	items, err := readItems(path)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.True(t, items[0].PublishedAt.IsZero())
	assert.True(t, items[1].PublishedAt.Equal(time.Date(2025, 3, 14, 2, 0, 0, 0, time.UTC)))
	assert.True(t, items[2].PublishedAt.Equal(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)))
}

func TestScoreCommandRanksItemWithBadTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	doc := `
- title: OpenAI Releases New ChatGPT Features
  source: OpenAI Blog
  publishedAt: "yesterday"
- title: AI Companies Report Q4 Earnings
  source: TechCrunch AI
  publishedAt: 2025-03-14T02:00:00Z
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	var out bytes.Buffer
	scoreCmd.SetOut(&out)
	require.NoError(t, scoreCmd.RunE(scoreCmd, []string{path}))
	report := out.String()
	assert.Contains(t, report, "2 items")
	assert.Contains(t, report, "1. [7.9] OpenAI Releases New ChatGPT Features")
	assert.Contains(t, report, "2. [")
	assert.Contains(t, report, "AI Companies Report Q4 Earnings")
}

func TestReadItemsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: [unclosed"), 0o644))
	_, err := readItems(path)
	assert.Error(t, err)

	_, err = readItems(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestScoreCommand(t *testing.T) {
	var out bytes.Buffer
	scoreCmd.SetOut(&out)
	scoreExplain = true
	t.Cleanup(func() { scoreExplain = false })

	require.NoError(t, scoreCmd.RunE(scoreCmd, []string{writeItems(t)}))
	report := out.String()
	assert.Contains(t, report, "Priority ranking")
	assert.Contains(t, report, "== HIGH (1) ==")
	assert.Contains(t, report, "1. [")
	assert.Contains(t, report, "Keywords: breakthrough, revolutionary")
	assert.Contains(t, report, "2. [4.3] AI Companies Report Q4 Earnings")
}
