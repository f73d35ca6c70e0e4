// Package auth provides token management for API authentication.
package auth

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hexlevel-io/testlab/internal/constants"
	"github.com/hexlevel-io/testlab/pkg/testlab"
)

// Static errors for err113 compliance. Credential and refresh failures use
// the public sentinels from pkg/testlab so callers can match on them.
var ErrNoTokenPersister = errors.New("no token persister configured")

// TokenManager provides bearer tokens for API requests. Tokens are scoped;
// a fresh token is fetched per scope set when the cached one is missing or
// expiring.
type TokenManager interface {
	// GetToken returns a valid access token for the scope set.
	GetToken(ctx context.Context, scopes []string) (string, error)

	// RefreshToken discards any cached token for the scope set and
	// fetches a new one.
	RefreshToken(ctx context.Context, scopes []string) error

	// SetToken seeds the default-scope token, e.g. from a config file.
	SetToken(token string, expiresAt time.Time)
}

// Token holds an access token and its expiry.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int       `json:"expires_in"`
	ExpiresAt   time.Time `json:"-"`
}

// Valid reports whether the token is usable, honoring the expiration
// buffer. Tokens without an expiry never go stale.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(constants.TokenExpirationBuffer).Before(t.ExpiresAt)
}

// scopeKey canonicalizes a scope set into a cache key.
func scopeKey(scopes []string) string {
	if len(scopes) == 0 {
		return constants.DefaultScope
	}

	sorted := make([]string, len(scopes))
	copy(sorted, scopes)
	sort.Strings(sorted)

	return strings.Join(sorted, " ")
}

// tokenStore is a scope-keyed token cache safe for concurrent use.
type tokenStore struct {
	mu     sync.RWMutex
	tokens map[string]*Token
}

func newTokenStore() *tokenStore {
	return &tokenStore{tokens: make(map[string]*Token)}
}

func (s *tokenStore) Get(key string) *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tokens[key]
}

func (s *tokenStore) Set(key string, token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[key] = token
}

func (s *tokenStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, key)
}

// StaticTokenManager serves a fixed token for every scope set. It cannot
// refresh.
type StaticTokenManager struct {
	mu    sync.RWMutex
	token string
}

// NewStaticTokenManager creates a token manager around a fixed token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken returns the static token.
func (m *StaticTokenManager) GetToken(_ context.Context, _ []string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.token == "" {
		return "", testlab.ErrNoCredentials
	}

	return m.token, nil
}

// RefreshToken always fails for static tokens.
func (m *StaticTokenManager) RefreshToken(_ context.Context, _ []string) error {
	return testlab.ErrStaticTokenNoRefresh
}

// SetToken replaces the static token.
func (m *StaticTokenManager) SetToken(token string, _ time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
}
