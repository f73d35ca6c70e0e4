package testlab

// CallOptions collects per-call settings resolved from CallOption values.
type CallOptions struct {
	// Params holds additional query parameters. Names that collide with a
	// parameter the call manages itself are rejected before any network
	// traffic.
	Params map[string]string

	// Scopes overrides the OAuth2 scopes used for token acquisition.
	Scopes []string

	// Delegate observes and steers the call. Nil means no observation
	// and no retries.
	Delegate Delegate

	// RequestID makes a create call idempotent across retries. Only
	// honored by calls that document it.
	RequestID string

	// ProjectID scopes a catalog query to a cloud project. Only honored
	// by calls that document it.
	ProjectID string
}

// CallOption customizes a single API call.
type CallOption func(*CallOptions)

// NewCallOptions resolves a list of options into a CallOptions value.
func NewCallOptions(opts ...CallOption) *CallOptions {
	options := &CallOptions{
		Params: make(map[string]string),
	}

	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithParam adds an additional query parameter to the call.
func WithParam(name, value string) CallOption {
	return func(o *CallOptions) {
		o.Params[name] = value
	}
}

// WithScopes overrides the OAuth2 scopes used for the call.
func WithScopes(scopes ...string) CallOption {
	return func(o *CallOptions) {
		o.Scopes = scopes
	}
}

// WithDelegate attaches a delegate to the call.
func WithDelegate(delegate Delegate) CallOption {
	return func(o *CallOptions) {
		o.Delegate = delegate
	}
}

// WithRequestID sets a unique request ID so that a retried create returns
// the already-created matrix instead of creating a duplicate.
func WithRequestID(id string) CallOption {
	return func(o *CallOptions) {
		o.RequestID = id
	}
}

// WithProjectID scopes an environment catalog query to a project.
func WithProjectID(id string) CallOption {
	return func(o *CallOptions) {
		o.ProjectID = id
	}
}
