// Package newsclient fetches candidate articles from the upstream
// news search API.
package newsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/samScriptt/novapress/internal/domain"
)

// Config holds the settings for the news API client.
type Config struct {
	BaseURL         string
	APIKey          string
	PageSize        int
	ExcludedDomains string
	Timeout         time.Duration
}

// Client calls the news search API.
type Client struct {
	baseURL         string
	apiKey          string
	pageSize        int
	excludedDomains string
	httpClient      *http.Client
}

// NewClient builds a client from configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:         cfg.BaseURL,
		apiKey:          cfg.APIKey,
		pageSize:        cfg.PageSize,
		excludedDomains: cfg.ExcludedDomains,
		httpClient:      &http.Client{Timeout: timeout},
	}
}

type apiArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
	PublishedAt time.Time `json:"publishedAt"`
}

type apiResponse struct {
	Status   string       `json:"status"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Articles []apiArticle `json:"articles"`
}

// Everything fetches one page of recent candidates matching the keyword
// query, sorted by publication time. A non-"ok" upstream status is an
// error; the caller treats it as fatal for the run.
func (c *Client) Everything(ctx context.Context, query string) ([]domain.Candidate, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(c.pageSize))
	if c.excludedDomains != "" {
		params.Set("excludeDomains", c.excludedDomains)
	}

	endpoint := c.baseURL + "/everything?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}
	defer resp.Body.Close()

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode news response: %w", err)
	}

	if body.Status != "ok" {
		return nil, fmt.Errorf("news api status %q (code=%s): %s", body.Status, body.Code, body.Message)
	}

	candidates := make([]domain.Candidate, 0, len(body.Articles))
	for _, a := range body.Articles {
		candidates = append(candidates, domain.Candidate{
			URL:         a.URL,
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			ImageURL:    a.URLToImage,
			SourceName:  a.Source.Name,
			PublishedAt: a.PublishedAt,
		})
	}

	return candidates, nil
}
