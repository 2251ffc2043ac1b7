// Package social publishes one tweet per newly created post.
package social

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// TweetMaxLen is the platform's total character budget.
const TweetMaxLen = 280

const (
	tweetPrefix = "🔥 New edition: "
	readMore    = "\n\nRead more: "
	ellipsis    = "…"
)

// Media is an image payload retained from the rehosting step, attached
// to the tweet when available.
type Media struct {
	Data        []byte
	ContentType string
}

// Config holds the settings for the Twitter client.
type Config struct {
	BaseURL     string
	BearerToken string
	Timeout     time.Duration
}

// Client posts to the social network's v2 API.
type Client struct {
	baseURL     string
	bearerToken string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient builds a Twitter client from configuration. A nil logger
// falls back to slog.Default.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		bearerToken: cfg.BearerToken,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}
}

// Enabled reports whether the client has credentials; a disabled client
// makes the orchestrator record the tweet as skipped.
func (c *Client) Enabled() bool {
	return c != nil && c.bearerToken != ""
}

// ComposeTweet builds the message for one post. The fixed suffix (the
// read-more link) is computed first; the summary is then truncated,
// rune-aware and with an ellipsis marker, so the total never exceeds
// TweetMaxLen. A link long enough to consume the whole budget drops
// the summary instead of truncating into nothing.
func ComposeTweet(summary, link string) string {
	suffix := readMore + link
	budget := TweetMaxLen - len([]rune(tweetPrefix)) - len([]rune(suffix))

	runes := []rune(strings.TrimSpace(summary))
	if len(runes) <= budget {
		return tweetPrefix + string(runes) + suffix
	}
	if budget <= len([]rune(ellipsis)) {
		return tweetPrefix + suffix
	}
	runes = runes[:budget-len([]rune(ellipsis))]
	return tweetPrefix + string(runes) + ellipsis + suffix
}

// PublishPost sends one tweet for the post, attaching the image when a
// media payload is available. Media upload failure degrades to a
// text-only tweet; only the final post-status call can fail.
func (c *Client) PublishPost(ctx context.Context, summary, link string, media *Media) error {
	if !c.Enabled() {
		return fmt.Errorf("twitter client not configured")
	}

	var mediaIDs []string
	if media != nil && len(media.Data) > 0 {
		id, err := c.uploadMedia(ctx, media)
		if err != nil {
			c.logger.Warn("media upload failed, posting text-only",
				slog.String("error", err.Error()))
		} else {
			mediaIDs = append(mediaIDs, id)
		}
	}

	return c.tweet(ctx, ComposeTweet(summary, link), mediaIDs)
}

type mediaUploadResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
	MediaIDString string `json:"media_id_string"`
}

func (c *Client) uploadMedia(ctx context.Context, media *Media) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("media", "image"+extensionFromMIME(media.ContentType))
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(media.Data); err != nil {
		return "", fmt.Errorf("write media payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/2/media/upload", &body)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("media upload %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}

	var mr mediaUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return "", fmt.Errorf("decode media response: %w", err)
	}
	if mr.Data.ID != "" {
		return mr.Data.ID, nil
	}
	if mr.MediaIDString != "" {
		return mr.MediaIDString, nil
	}
	return "", fmt.Errorf("media response missing id")
}

func (c *Client) tweet(ctx context.Context, text string, mediaIDs []string) error {
	payload := map[string]any{"text": text}
	if len(mediaIDs) > 0 {
		payload["media"] = map[string]any{"media_ids": mediaIDs}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal tweet: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/2/tweets", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post tweet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("tweet %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}

	return nil
}

func extensionFromMIME(contentType string) string {
	switch {
	case strings.Contains(contentType, "png"):
		return ".png"
	case strings.Contains(contentType, "gif"):
		return ".gif"
	case strings.Contains(contentType, "webp"):
		return ".webp"
	default:
		return ".jpg"
	}
}
