package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlevel-io/testlab/internal/auth"
	"github.com/hexlevel-io/testlab/internal/constants"
	"github.com/hexlevel-io/testlab/pkg/testlab"
)

// newTokenServer returns a token endpoint that validates the client
// credentials grant and counts fetches.
func newTokenServer(t *testing.T, fetches *atomic.Int64) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		fetches.Add(1)

		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", request.Header.Get("Content-Type"))

		clientID, clientSecret, ok := request.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "test-client", clientID)
		assert.Equal(t, "test-secret", clientSecret)

		require.NoError(t, request.ParseForm())
		assert.Equal(t, "client_credentials", request.PostForm.Get("grant_type"))
		assert.NotEmpty(t, request.PostForm.Get("scope"))

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"access_token": "fetched-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	}))
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestOAuth2TokenManager_GetToken(t *testing.T) {
	t.Parallel()
	t.Run("fetches and caches a token", func(t *testing.T) {
		t.Parallel()

		var fetches atomic.Int64

		server := newTokenServer(t, &fetches)
		defer server.Close()

		manager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL:     server.URL,
			ClientID:     "test-client",
			ClientSecret: "test-secret",
		})

		token, err := manager.GetToken(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "fetched-token", token)

		// Second call hits the cache.
		token, err = manager.GetToken(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "fetched-token", token)
		assert.Equal(t, int64(1), fetches.Load())
	})

	t.Run("tokens are cached per scope set", func(t *testing.T) {
		t.Parallel()

		var fetches atomic.Int64

		server := newTokenServer(t, &fetches)
		defer server.Close()

		manager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL:     server.URL,
			ClientID:     "test-client",
			ClientSecret: "test-secret",
		})

		_, err := manager.GetToken(context.Background(), []string{"scope-a"})
		require.NoError(t, err)

		_, err = manager.GetToken(context.Background(), []string{"scope-b"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), fetches.Load())

		// Scope order does not matter for the cache key.
		_, err = manager.GetToken(context.Background(), []string{"scope-a", "scope-b"})
		require.NoError(t, err)

		_, err = manager.GetToken(context.Background(), []string{"scope-b", "scope-a"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), fetches.Load())
	})

	t.Run("empty scope set uses the default scope", func(t *testing.T) {
		t.Parallel()

		var fetches atomic.Int64

		server := newTokenServer(t, &fetches)
		defer server.Close()

		manager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL:     server.URL,
			ClientID:     "test-client",
			ClientSecret: "test-secret",
		})

		_, err := manager.GetToken(context.Background(), nil)
		require.NoError(t, err)

		_, err = manager.GetToken(context.Background(), []string{constants.DefaultScope})
		require.NoError(t, err)
		assert.Equal(t, int64(1), fetches.Load())
	})

	t.Run("expired seeded token triggers a fetch", func(t *testing.T) {
		t.Parallel()

		var fetches atomic.Int64

		server := newTokenServer(t, &fetches)
		defer server.Close()

		manager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL:     server.URL,
			ClientID:     "test-client",
			ClientSecret: "test-secret",
		})
		manager.SetToken("stale-token", time.Now().Add(-time.Minute))

		token, err := manager.GetToken(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "fetched-token", token)
		assert.Equal(t, int64(1), fetches.Load())
	})

	t.Run("valid seeded token is served without a fetch", func(t *testing.T) {
		t.Parallel()

		var fetches atomic.Int64

		server := newTokenServer(t, &fetches)
		defer server.Close()

		manager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL:     server.URL,
			ClientID:     "test-client",
			ClientSecret: "test-secret",
		})
		manager.SetToken("seeded-token", time.Now().Add(time.Hour))

		token, err := manager.GetToken(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "seeded-token", token)
		assert.Equal(t, int64(0), fetches.Load())
	})

	t.Run("missing credentials fail", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL: "http://localhost",
		})

		_, err := manager.GetToken(context.Background(), nil)
		require.ErrorIs(t, err, testlab.ErrNoCredentials)
	})

	t.Run("token endpoint error surfaces", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"error": "invalid_client"}`))
		}))
		defer server.Close()

		manager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL:     server.URL,
			ClientID:     "test-client",
			ClientSecret: "wrong-secret",
		})

		_, err := manager.GetToken(context.Background(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("empty access token in response fails", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"token_type": "Bearer"})
		}))
		defer server.Close()

		manager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL:     server.URL,
			ClientID:     "test-client",
			ClientSecret: "test-secret",
		})

		_, err := manager.GetToken(context.Background(), nil)
		require.ErrorIs(t, err, testlab.ErrNoCredentials)
	})
}

func TestOAuth2TokenManager_RefreshToken(t *testing.T) {
	t.Parallel()

	var fetches atomic.Int64

	server := newTokenServer(t, &fetches)
	defer server.Close()

	manager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{
		TokenURL:     server.URL,
		ClientID:     "test-client",
		ClientSecret: "test-secret",
	})
	manager.SetToken("seeded-token", time.Now().Add(time.Hour))

	// Refresh discards the still-valid cached token.
	err := manager.RefreshToken(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fetches.Load())

	token, err := manager.GetToken(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "fetched-token", token)
	assert.Equal(t, int64(1), fetches.Load())
}

func TestOAuth2TokenManager_CurrentToken(t *testing.T) {
	t.Parallel()

	manager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{})
	assert.Nil(t, manager.CurrentToken(nil))

	expiry := time.Now().Add(time.Hour)
	manager.SetToken("seeded-token", expiry)

	token := manager.CurrentToken(nil)
	require.NotNil(t, token)
	assert.Equal(t, "seeded-token", token.AccessToken)
	assert.Equal(t, expiry, token.ExpiresAt)
}
