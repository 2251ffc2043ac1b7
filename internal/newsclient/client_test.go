package newsclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEverything(t *testing.T) {
	t.Run("maps articles to candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/everything", r.URL.Path)
			assert.Equal(t, "secret-key", r.Header.Get("X-Api-Key"))

			q := r.URL.Query()
			assert.Equal(t, "(AI OR LLM)", q.Get("q"))
			assert.Equal(t, "en", q.Get("language"))
			assert.Equal(t, "publishedAt", q.Get("sortBy"))
			assert.Equal(t, "20", q.Get("pageSize"))
			assert.Equal(t, "prnewswire.com", q.Get("excludeDomains"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"status": "ok",
				"articles": [
					{
						"source": {"name": "The Verge"},
						"title": "AI breakthrough",
						"description": "Something big",
						"content": "A longer snippet",
						"url": "https://x/1",
						"urlToImage": "https://x/1.jpg",
						"publishedAt": "2025-03-01T12:00:00Z"
					}
				]
			}`))
		}))
		defer server.Close()

		client := NewClient(Config{
			BaseURL:         server.URL,
			APIKey:          "secret-key",
			PageSize:        20,
			ExcludedDomains: "prnewswire.com",
		})

		candidates, err := client.Everything(context.Background(), "(AI OR LLM)")
		require.NoError(t, err)
		require.Len(t, candidates, 1)

		c := candidates[0]
		assert.Equal(t, "https://x/1", c.URL)
		assert.Equal(t, "AI breakthrough", c.Title)
		assert.Equal(t, "Something big", c.Description)
		assert.Equal(t, "A longer snippet", c.Content)
		assert.Equal(t, "https://x/1.jpg", c.ImageURL)
		assert.Equal(t, "The Verge", c.SourceName)
		assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), c.PublishedAt)
	})

	t.Run("non-ok status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"status": "error", "code": "rateLimited", "message": "too many requests"}`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, APIKey: "k", PageSize: 20})

		_, err := client.Everything(context.Background(), "AI")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rateLimited")
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>gateway error</html>`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, APIKey: "k", PageSize: 20})

		_, err := client.Everything(context.Background(), "AI")
		require.Error(t, err)
	})

	t.Run("empty article list is not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "ok", "articles": []}`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, APIKey: "k", PageSize: 20})

		candidates, err := client.Everything(context.Background(), "AI")
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})
}
