package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlevel-io/testlab/internal/auth"
	"github.com/hexlevel-io/testlab/internal/constants"
	"github.com/hexlevel-io/testlab/pkg/testlab"
)

func TestNew(t *testing.T) {
	t.Run("requires an endpoint", func(t *testing.T) {
		_, err := New(&testlab.Config{})
		require.ErrorIs(t, err, testlab.ErrEndpointRequired)
	})

	t.Run("creates resource clients", func(t *testing.T) {
		client, err := New(&testlab.Config{Endpoint: "https://testing.googleapis.com"})
		require.NoError(t, err)
		assert.NotNil(t, client.TestMatrices())
		assert.NotNil(t, client.EnvironmentCatalog())
		assert.NotNil(t, client.ApplicationDetail())
	})
}

func TestNewWithTokenManager(t *testing.T) {
	t.Run("requires an endpoint", func(t *testing.T) {
		_, err := NewWithTokenManager(&testlab.Config{}, auth.NewStaticTokenManager("token"))
		require.ErrorIs(t, err, testlab.ErrEndpointRequired)
	})

	t.Run("uses the given token manager", func(t *testing.T) {
		manager := auth.NewStaticTokenManager("custom-token")
		client, err := NewWithTokenManager(&testlab.Config{Endpoint: "https://testing.googleapis.com"}, manager)
		require.NoError(t, err)

		token, err := client.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "custom-token", token)
	})
}

func TestCreateTokenManager(t *testing.T) {
	t.Run("no credentials means no token manager", func(t *testing.T) {
		manager := createTokenManager(&testlab.Config{})
		assert.Nil(t, manager)
	})

	t.Run("access token alone gives a static manager", func(t *testing.T) {
		manager := createTokenManager(&testlab.Config{AccessToken: "static-token"})
		require.NotNil(t, manager)

		_, ok := manager.(*auth.StaticTokenManager)
		assert.True(t, ok)
	})

	t.Run("oauth2 credentials win over an access token", func(t *testing.T) {
		manager := createTokenManager(&testlab.Config{
			AccessToken:  "stored-token",
			ClientID:     "client",
			ClientSecret: "secret",
		})
		require.NotNil(t, manager)

		oauth2Manager, ok := manager.(*auth.OAuth2TokenManager)
		require.True(t, ok)

		// The stored token seeds the cache.
		token := oauth2Manager.CurrentToken(nil)
		require.NotNil(t, token)
		assert.Equal(t, "stored-token", token.AccessToken)
	})

	t.Run("config path gives a persisting manager", func(t *testing.T) {
		manager := createTokenManager(&testlab.Config{
			ClientID:     "client",
			ClientSecret: "secret",
			ConfigPath:   "/tmp/testlab.yaml",
		})
		require.NotNil(t, manager)

		_, ok := manager.(*auth.PersistentTokenManager)
		assert.True(t, ok)
	})
}

func TestGetTokenURL(t *testing.T) {
	assert.Equal(t, constants.DefaultTokenURL, getTokenURL(&testlab.Config{}))
	assert.Equal(t, "https://example.com/token", getTokenURL(&testlab.Config{TokenURL: "https://example.com/token"}))
}

func TestClient_GetToken_NoManager(t *testing.T) {
	client, err := New(&testlab.Config{Endpoint: "https://testing.googleapis.com"})
	require.NoError(t, err)

	_, err = client.GetToken(context.Background())
	require.ErrorIs(t, err, ErrNoTokenManagerConfigured)
}
