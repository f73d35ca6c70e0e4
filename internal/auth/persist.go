package auth

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
)

// TokenPersister stores refreshed tokens, typically in a config file.
type TokenPersister interface {
	UpdateToken(token string, expiresAt time.Time) error
}

// PersistentTokenManager wraps OAuth2TokenManager and writes refreshed
// tokens back through a TokenPersister, so a later process can reuse them.
type PersistentTokenManager struct {
	oauth2Manager *OAuth2TokenManager
	persister     TokenPersister

	mutex         sync.Mutex
	lastPersisted string
}

// NewPersistentTokenManager creates a persisting token manager, seeded with
// a previously stored token when one is given.
func NewPersistentTokenManager(config *OAuth2Config, persister TokenPersister, initialToken string, initialExpiry time.Time) *PersistentTokenManager {
	oauth2Manager := NewOAuth2TokenManager(config)

	if initialToken != "" {
		oauth2Manager.SetToken(initialToken, initialExpiry)
	}

	return &PersistentTokenManager{
		oauth2Manager: oauth2Manager,
		persister:     persister,
		lastPersisted: initialToken,
	}
}

// GetToken returns a valid access token, persisting it when it changed.
func (m *PersistentTokenManager) GetToken(ctx context.Context, scopes []string) (string, error) {
	token, err := m.oauth2Manager.GetToken(ctx, scopes)
	if err != nil {
		return "", err
	}

	m.persistIfChanged(scopes)

	return token, nil
}

// RefreshToken forces a token refresh and persists the result.
func (m *PersistentTokenManager) RefreshToken(ctx context.Context, scopes []string) error {
	err := m.oauth2Manager.RefreshToken(ctx, scopes)
	if err != nil {
		return err
	}

	m.persistIfChanged(scopes)

	return nil
}

// SetToken manually sets the access token.
func (m *PersistentTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.oauth2Manager.SetToken(token, expiresAt)
	m.lastPersisted = token
}

// IsTokenExpiringSoon reports whether the default-scope token expires
// within the given duration.
func (m *PersistentTokenManager) IsTokenExpiringSoon(within time.Duration) bool {
	token := m.oauth2Manager.CurrentToken(nil)
	if token == nil {
		return true
	}

	return time.Now().Add(within).After(token.ExpiresAt)
}

func (m *PersistentTokenManager) persistIfChanged(scopes []string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	current := m.oauth2Manager.CurrentToken(scopes)
	if current == nil || current.AccessToken == m.lastPersisted {
		return
	}

	m.lastPersisted = current.AccessToken

	go func(token *Token) {
		persistErr := m.persistToken(token)
		if persistErr != nil {
			// Log but don't fail the request.
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to persist refreshed token: %v\n", persistErr)
		}
	}(current)
}

func (m *PersistentTokenManager) persistToken(token *Token) error {
	if m.persister == nil {
		return ErrNoTokenPersister
	}

	err := m.persister.UpdateToken(token.AccessToken, token.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to update stored token: %w", err)
	}

	return nil
}
