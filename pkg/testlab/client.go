// Package testlab provides the public interfaces and types for the Cloud
// Testing API client. The client runs mobile application tests against
// device matrices, inspects environment catalogs, and extracts application
// details from uploaded packages.
package testlab

import (
	"context"
	"time"
)

// OAuth2 scopes accepted by the service.
const (
	// ScopeCloudPlatform grants full access; it is the default scope when
	// a call does not name one.
	ScopeCloudPlatform = "https://www.googleapis.com/auth/cloud-platform"

	// ScopeCloudPlatformReadOnly grants read-only access.
	ScopeCloudPlatformReadOnly = "https://www.googleapis.com/auth/cloud-platform.read-only"
)

// Client is the top-level interface for the Cloud Testing API.
type Client interface {
	// TestMatrices returns the client for test matrix operations.
	TestMatrices() TestMatricesClient

	// EnvironmentCatalog returns the client for environment catalog queries.
	EnvironmentCatalog() EnvironmentCatalogClient

	// ApplicationDetail returns the client for application detail queries.
	ApplicationDetail() ApplicationDetailClient

	// GetToken returns the current access token for the default scope.
	GetToken(ctx context.Context) (string, error)
}

// TestMatricesClient manages test matrices within a project.
type TestMatricesClient interface {
	// Create requests execution of a matrix of tests. The returned matrix
	// carries the server-assigned ID and initial state.
	Create(ctx context.Context, projectID string, matrix *TestMatrix, opts ...CallOption) (*TestMatrix, error)

	// Get reports the status of a test matrix.
	Get(ctx context.Context, projectID, matrixID string, opts ...CallOption) (*TestMatrix, error)

	// Cancel asks the service to stop an unfinished test matrix.
	Cancel(ctx context.Context, projectID, matrixID string, opts ...CallOption) (*CancelTestMatrixResponse, error)

	// WaitUntilFinal polls a matrix until it reaches a final state.
	WaitUntilFinal(ctx context.Context, projectID, matrixID string) (*TestMatrix, error)
}

// EnvironmentCatalogClient reads catalogs of supported test environments.
type EnvironmentCatalogClient interface {
	// Get returns the catalog for an environment type, e.g. "ANDROID".
	Get(ctx context.Context, environmentType string, opts ...CallOption) (*TestEnvironmentCatalog, error)
}

// ApplicationDetailClient extracts details from application packages.
type ApplicationDetailClient interface {
	// GetApkDetails returns the manifest details of an APK file.
	GetApkDetails(ctx context.Context, file *FileReference, opts ...CallOption) (*GetApkDetailsResponse, error)
}

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config holds client configuration.
type Config struct {
	// Endpoint is the API endpoint URL. Defaults to the production
	// endpoint when empty; a scheme-less value gets "https://" prefixed.
	Endpoint string

	// AccessToken is a bearer token. Without OAuth2 credentials it is
	// used as-is and never refreshed; with them it seeds the token cache.
	AccessToken string

	// TokenExpiry is the expiry of AccessToken when known.
	TokenExpiry time.Time

	// ClientID and ClientSecret enable the OAuth2 client credentials
	// grant against TokenURL.
	ClientID     string
	ClientSecret string

	// TokenURL is the OAuth2 token endpoint. Defaults to the Google
	// OAuth2 endpoint when empty.
	TokenURL string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPTimeout bounds each HTTP request. Zero means the default.
	HTTPTimeout time.Duration

	// TransportRetryMax enables connection-level retries in the
	// underlying HTTP client. Zero (the default) leaves all retry policy
	// to delegates.
	TransportRetryMax     int
	TransportRetryWaitMin time.Duration
	TransportRetryWaitMax time.Duration

	// Logger receives structured log output. Nil disables logging.
	Logger Logger

	// Debug enables request and response logging through Logger.
	Debug bool

	// ConfigPath names a YAML config file. When set together with OAuth2
	// credentials, refreshed tokens are persisted back to it.
	ConfigPath string
}
