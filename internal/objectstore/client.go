// Package objectstore uploads binary objects to the hosted storage
// bucket and resolves their public URLs.
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config holds the settings for the storage client.
type Config struct {
	BaseURL    string
	ServiceKey string
	Bucket     string
	Timeout    time.Duration
}

// Client talks to the storage service's object API.
type Client struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
}

// NewClient builds a storage client from configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		serviceKey: cfg.ServiceKey,
		bucket:     cfg.Bucket,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether the client is configured; a disabled client
// makes the image pipeline fall back to original URLs.
func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != "" && c.serviceKey != "" && c.bucket != ""
}

// Upload stores the object under the given name in the bucket.
func (c *Client) Upload(ctx context.Context, name, contentType string, data []byte) error {
	if !c.Enabled() {
		return fmt.Errorf("object storage not configured")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("storage error %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}

	return nil
}

// PublicURL resolves the public URL for an uploaded object.
func (c *Client) PublicURL(name string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, name)
}
