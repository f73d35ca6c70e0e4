package constants

import "time"

// API endpoints.
const (
	// DefaultEndpoint is the production API endpoint.
	DefaultEndpoint = "https://testing.googleapis.com"

	// DefaultTokenURL is the OAuth2 token endpoint used when the
	// configuration does not name one.
	DefaultTokenURL = "https://oauth2.googleapis.com/token"

	// APIVersion is the version segment prefixed to every request path.
	APIVersion = "v1"

	// DefaultScope is the OAuth2 scope used when a call does not name one.
	DefaultScope = "https://www.googleapis.com/auth/cloud-platform"
)

// HTTP client defaults.
const (
	// DefaultUserAgent identifies this client library in requests.
	DefaultUserAgent = "testlab-go-client/1.0"

	// DefaultHTTPTimeout is the per-request timeout of the HTTP client.
	DefaultHTTPTimeout = 30 * time.Second
)

// Transport-level retry configuration. These govern connection retries in
// the underlying HTTP client only; call-level retry policy belongs to
// delegates.
const (
	// DefaultTransportRetryMax disables transport retries so a delegate
	// observes every attempt.
	DefaultTransportRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait between transport retries
	// when a caller enables them.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between transport retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Delegate retry defaults.
const (
	// DefaultRetryMax is the retry budget of the stock retry delegate.
	DefaultRetryMax = 3

	// DefaultRetryDelay is the base delay of the stock retry delegate.
	DefaultRetryDelay = 1 * time.Second

	// DefaultRetryMaxDelay caps the exponential backoff of the stock
	// retry delegate.
	DefaultRetryMaxDelay = 30 * time.Second

	// ExponentialBackoffBase is the multiplier applied per retry attempt.
	ExponentialBackoffBase = 2
)

// Token management.
const (
	// TokenExpirationBuffer refreshes tokens slightly before expiry to
	// avoid sending a token that expires mid-request.
	TokenExpirationBuffer = 30 * time.Second
)

// Matrix polling defaults.
const (
	// DefaultPollInterval is the wait between matrix state checks.
	DefaultPollInterval = 5 * time.Second

	// DefaultPollTimeout bounds how long WaitUntilFinal polls a matrix.
	DefaultPollTimeout = 30 * time.Minute
)

// File and directory permissions for persisted configuration.
const (
	// ConfigFilePerm keeps stored credentials private to the owner.
	ConfigFilePerm = 0600

	// ConfigDirPerm applies when the config directory must be created.
	ConfigDirPerm = 0750
)
