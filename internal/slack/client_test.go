package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-news-clipper/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mainItem() model.ScoredNewsItem {
	return model.ScoredNewsItem{
		NewsItem: model.NewsItem{
			Title:  "OpenAI Releases New ChatGPT Features",
			URL:    "https://openai.com/blog/x",
			Source: "OpenAI Blog",
		},
		PriorityScore:    7.94,
		PriorityCategory: model.CategoryMedium,
	}
}

func TestBuildMessage(t *testing.T) {
	msg := BuildMessage("Daily AI", mainItem(), "Summary text.", "Trend text.")

	assert.Equal(t, "Daily AI", msg.Text)
	require.Len(t, msg.Blocks, 5)
	assert.Equal(t, "header", msg.Blocks[0].Type)
	assert.Equal(t, "plain_text", msg.Blocks[0].Text.Type)
	assert.Equal(t, "divider", msg.Blocks[1].Type)
	assert.Nil(t, msg.Blocks[1].Text)

	body := msg.Blocks[2].Text.Text
	assert.Equal(t, "mrkdwn", msg.Blocks[2].Text.Type)
	assert.Contains(t, body, "*OpenAI Releases New ChatGPT Features*")
	assert.Contains(t, body, "MEDIUM (7.9/10.0)")
	assert.Contains(t, body, "Summary text.")
	assert.Contains(t, body, "Trend text.")

	assert.Contains(t, msg.Blocks[4].Text.Text, "<https://openai.com/blog/x|OpenAI Releases New ChatGPT Features> (OpenAI Blog)")

	b, err := json.Marshal(msg.Blocks[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"divider"}`, string(b))
}

func TestPost(t *testing.T) {
	var got Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	require.NoError(t, c.Post(context.Background(), BuildMessage("t", mainItem(), "s", "tr")))
	assert.Equal(t, "t", got.Text)
	assert.Len(t, got.Blocks, 5)
}

func TestPostFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := New(srv.URL, time.Second).Post(context.Background(), Message{Text: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=400")
	assert.Contains(t, err.Error(), "invalid_payload")
}

func TestPostWithoutWebhook(t *testing.T) {
	assert.ErrorIs(t, New("  ", 0).Post(context.Background(), Message{}), ErrNoWebhook)
	var nilClient *Client
	assert.ErrorIs(t, nilClient.Post(context.Background(), Message{}), ErrNoWebhook)
}
