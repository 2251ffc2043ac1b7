// Package auth resolves bearer tokens against the hosted auth provider.
// The portal never mints or verifies tokens itself; it only asks the
// provider who a token belongs to.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// User is the identity slice the portal needs from the provider.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Config holds the settings for the auth client.
type Config struct {
	BaseURL string
	AnonKey string
	Timeout time.Duration
}

// Client calls the provider's user endpoint.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// NewClient builds an auth client from configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		anonKey:    cfg.AnonKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether the client is configured. When disabled every
// request is treated as anonymous.
func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != ""
}

// ResolveToken exchanges an access token for the user it belongs to.
// An invalid or expired token comes back as an error; the middleware
// downgrades that to an anonymous request.
func (c *Client) ResolveToken(ctx context.Context, token string) (*User, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("auth client not configured")
	}
	if token == "" {
		return nil, fmt.Errorf("empty token")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", c.anonKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resolve token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("auth provider %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("auth provider returned user without id")
	}

	return &user, nil
}
