package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveToken(t *testing.T) {
	t.Run("returns the user behind a valid token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/user", r.URL.Path)
			assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
			assert.Equal(t, "anon-key", r.Header.Get("apikey"))

			w.Write([]byte(`{"id": "user-1", "email": "reader@example.com"}`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, AnonKey: "anon-key"})

		user, err := client.ResolveToken(context.Background(), "access-token")
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, "reader@example.com", user.Email)
	})

	t.Run("rejected token is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "invalid JWT"}`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, AnonKey: "anon-key"})

		user, err := client.ResolveToken(context.Background(), "expired")
		require.Error(t, err)
		assert.Nil(t, user)
		assert.Contains(t, err.Error(), "invalid JWT")
	})

	t.Run("user without id is rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, AnonKey: "anon-key"})

		_, err := client.ResolveToken(context.Background(), "token")
		require.Error(t, err)
	})

	t.Run("unconfigured client refuses lookups", func(t *testing.T) {
		client := NewClient(Config{})
		assert.False(t, client.Enabled())

		_, err := client.ResolveToken(context.Background(), "token")
		require.Error(t, err)
	})

	t.Run("empty token short-circuits", func(t *testing.T) {
		client := NewClient(Config{BaseURL: "https://auth.example"})

		_, err := client.ResolveToken(context.Background(), "")
		require.Error(t, err)
	})
}
