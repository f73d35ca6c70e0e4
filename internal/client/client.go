// Package client implements the testlab.Client interface.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/hexlevel-io/testlab/internal/auth"
	"github.com/hexlevel-io/testlab/internal/constants"
	"github.com/hexlevel-io/testlab/internal/http"
	"github.com/hexlevel-io/testlab/pkg/testlab"
)

// Static errors for err113 compliance. Endpoint validation uses the public
// sentinel from pkg/testlab so callers can match on it.
var ErrNoTokenManagerConfigured = errors.New("no token manager configured")

// Client implements the testlab.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       testlab.Logger

	// Resource clients
	testMatrices       testlab.TestMatricesClient
	environmentCatalog testlab.EnvironmentCatalogClient
	applicationDetail  testlab.ApplicationDetailClient
}

// createTokenManager creates the appropriate token manager based on config.
// OAuth2 credentials win over a bare access token because they can refresh;
// a stored access token then only seeds the cache.
func createTokenManager(config *testlab.Config) auth.TokenManager {
	if config.ClientID != "" && config.ClientSecret != "" {
		oauthConfig := &auth.OAuth2Config{
			TokenURL:     getTokenURL(config),
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
		}

		if config.ConfigPath != "" {
			store := &testlab.FileTokenStore{Path: config.ConfigPath}

			return auth.NewPersistentTokenManager(oauthConfig, store, config.AccessToken, config.TokenExpiry)
		}

		manager := auth.NewOAuth2TokenManager(oauthConfig)
		if config.AccessToken != "" {
			manager.SetToken(config.AccessToken, config.TokenExpiry)
		}

		return manager
	}

	if config.AccessToken != "" {
		return auth.NewStaticTokenManager(config.AccessToken)
	}

	return nil // No authentication
}

// getTokenURL returns the token URL from config or the default endpoint.
func getTokenURL(config *testlab.Config) string {
	if config.TokenURL != "" {
		return config.TokenURL
	}

	return constants.DefaultTokenURL
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *testlab.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.TransportRetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.TransportRetryWaitMin > 0 {
			retryWaitMin = config.TransportRetryWaitMin
		}

		if config.TransportRetryWaitMax > 0 {
			retryWaitMax = config.TransportRetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.TransportRetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new API client.
func New(config *testlab.Config) (*Client, error) {
	if config.Endpoint == "" {
		return nil, testlab.ErrEndpointRequired
	}

	tokenManager := createTokenManager(config)

	return newWithTokenManager(config, tokenManager), nil
}

// NewWithTokenManager creates a new API client with a custom token manager.
func NewWithTokenManager(config *testlab.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config.Endpoint == "" {
		return nil, testlab.ErrEndpointRequired
	}

	return newWithTokenManager(config, tokenManager), nil
}

func newWithTokenManager(config *testlab.Config, tokenManager auth.TokenManager) *Client {
	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.Endpoint, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.Endpoint,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.testMatrices = NewTestMatricesClient(c.httpClient)
	c.environmentCatalog = NewEnvironmentCatalogClient(c.httpClient)
	c.applicationDetail = NewApplicationDetailClient(c.httpClient)
}

// TestMatrices implements testlab.Client.TestMatrices.
func (c *Client) TestMatrices() testlab.TestMatricesClient {
	return c.testMatrices
}

// EnvironmentCatalog implements testlab.Client.EnvironmentCatalog.
func (c *Client) EnvironmentCatalog() testlab.EnvironmentCatalogClient {
	return c.environmentCatalog
}

// ApplicationDetail implements testlab.Client.ApplicationDetail.
func (c *Client) ApplicationDetail() testlab.ApplicationDetailClient {
	return c.applicationDetail
}

// GetToken returns the current access token from the token manager.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", ErrNoTokenManagerConfigured
	}

	token, err := c.tokenManager.GetToken(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}
