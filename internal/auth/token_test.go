package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlevel-io/testlab/internal/auth"
	"github.com/hexlevel-io/testlab/pkg/testlab"
)

func TestStaticTokenManager(t *testing.T) {
	t.Parallel()
	t.Run("returns the configured token", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewStaticTokenManager("static-token")

		token, err := manager.GetToken(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "static-token", token)
	})

	t.Run("same token for every scope set", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewStaticTokenManager("static-token")

		token, err := manager.GetToken(context.Background(), []string{"https://www.googleapis.com/auth/cloud-platform.read-only"})
		require.NoError(t, err)
		assert.Equal(t, "static-token", token)
	})

	t.Run("empty token fails", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewStaticTokenManager("")

		_, err := manager.GetToken(context.Background(), nil)
		require.ErrorIs(t, err, testlab.ErrNoCredentials)
	})

	t.Run("cannot refresh", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewStaticTokenManager("static-token")

		err := manager.RefreshToken(context.Background(), nil)
		require.ErrorIs(t, err, testlab.ErrStaticTokenNoRefresh)
	})

	t.Run("set token replaces the current one", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewStaticTokenManager("old-token")
		manager.SetToken("new-token", time.Time{})

		token, err := manager.GetToken(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "new-token", token)
	})
}

func TestToken_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token *auth.Token
		valid bool
	}{
		{
			name:  "nil token",
			token: nil,
			valid: false,
		},
		{
			name:  "empty access token",
			token: &auth.Token{},
			valid: false,
		},
		{
			name:  "no expiry never goes stale",
			token: &auth.Token{AccessToken: "token"},
			valid: true,
		},
		{
			name:  "future expiry",
			token: &auth.Token{AccessToken: "token", ExpiresAt: time.Now().Add(time.Hour)},
			valid: true,
		},
		{
			name:  "expired",
			token: &auth.Token{AccessToken: "token", ExpiresAt: time.Now().Add(-time.Hour)},
			valid: false,
		},
		{
			name:  "expiring within the buffer counts as stale",
			token: &auth.Token{AccessToken: "token", ExpiresAt: time.Now().Add(5 * time.Second)},
			valid: false,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.valid, testCase.token.Valid())
		})
	}
}
