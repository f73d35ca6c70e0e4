package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hexlevel-io/testlab/internal/constants"
	"github.com/hexlevel-io/testlab/pkg/testlab"
)

// OAuth2Config holds the settings for the client credentials grant.
type OAuth2Config struct {
	// TokenURL is the OAuth2 token endpoint.
	TokenURL string

	// ClientID and ClientSecret authenticate the token request.
	ClientID     string
	ClientSecret string

	// HTTPClient overrides the client used for token requests.
	HTTPClient *http.Client
}

// OAuth2TokenManager fetches tokens via the client credentials grant and
// caches them per scope set until shortly before expiry.
type OAuth2TokenManager struct {
	config *OAuth2Config
	client *http.Client
	store  *tokenStore

	// refreshMu serializes token fetches so concurrent calls for the same
	// scope set do not stampede the token endpoint.
	refreshMu sync.Mutex
}

// NewOAuth2TokenManager creates a token manager for the client credentials
// grant.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	client := config.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: constants.DefaultHTTPTimeout}
	}

	return &OAuth2TokenManager{
		config: config,
		client: client,
		store:  newTokenStore(),
	}
}

// GetToken returns a valid access token for the scope set, fetching a new
// one when the cached token is missing or expiring.
func (m *OAuth2TokenManager) GetToken(ctx context.Context, scopes []string) (string, error) {
	key := scopeKey(scopes)

	token := m.store.Get(key)
	if token.Valid() {
		return token.AccessToken, nil
	}

	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	token = m.store.Get(key)
	if token.Valid() {
		return token.AccessToken, nil
	}

	token, err := m.fetchToken(ctx, key)
	if err != nil {
		return "", err
	}

	m.store.Set(key, token)

	return token.AccessToken, nil
}

// RefreshToken discards the cached token for the scope set and fetches a
// new one.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context, scopes []string) error {
	key := scopeKey(scopes)

	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	m.store.Delete(key)

	token, err := m.fetchToken(ctx, key)
	if err != nil {
		return err
	}

	m.store.Set(key, token)

	return nil
}

// SetToken seeds the default-scope token, e.g. one restored from a config
// file.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(constants.DefaultScope, &Token{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}

// CurrentToken returns the cached token for a scope set, or nil.
func (m *OAuth2TokenManager) CurrentToken(scopes []string) *Token {
	return m.store.Get(scopeKey(scopes))
}

func (m *OAuth2TokenManager) fetchToken(ctx context.Context, scope string) (*Token, error) {
	if m.config.ClientID == "" || m.config.ClientSecret == "" {
		return nil, testlab.ErrNoCredentials
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(m.config.ClientID, m.config.ClientSecret)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var token Token

	err = json.Unmarshal(body, &token)
	if err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	if token.AccessToken == "" {
		return nil, testlab.ErrNoCredentials
	}

	if token.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	return &token, nil
}
