// Package tlclient provides the main entry point for creating Cloud Testing API clients
package tlclient

import (
	"fmt"
	"strings"

	"github.com/hexlevel-io/testlab/internal/client"
	"github.com/hexlevel-io/testlab/internal/constants"
	"github.com/hexlevel-io/testlab/pkg/testlab"
)

// New creates a new Cloud Testing API client from a configuration.
func New(config *testlab.Config) (testlab.Client, error) {
	if config == nil {
		return nil, testlab.ErrConfigRequired
	}

	// Normalize the endpoint, defaulting to production
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = constants.DefaultEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	// Work on a copy so the caller's config is left untouched.
	cfg := *config
	cfg.Endpoint = endpoint

	// Use the internal client implementation
	client, err := client.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithEndpoint creates a new client with just an API endpoint (no auth).
func NewWithEndpoint(endpoint string) (testlab.Client, error) {
	return New(&testlab.Config{
		Endpoint: endpoint,
	})
}

// NewWithToken creates a new client with an API endpoint and access token.
func NewWithToken(endpoint, token string) (testlab.Client, error) {
	return New(&testlab.Config{
		Endpoint:    endpoint,
		AccessToken: token,
	})
}

// NewWithClientCredentials creates a new client using OAuth2 client credentials.
func NewWithClientCredentials(endpoint, clientID, clientSecret string) (testlab.Client, error) {
	return New(&testlab.Config{
		Endpoint:     endpoint,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

// NewFromConfigFile creates a new client from a YAML config file. Tokens
// refreshed during the client's lifetime are written back to the file.
func NewFromConfigFile(path string) (testlab.Client, error) {
	fileConfig, err := testlab.LoadFileConfig(path)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}

	return New(fileConfig.ClientConfig(path))
}
