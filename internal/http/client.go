// Package http implements the request execution pipeline shared by all API
// calls: authentication, delegate-governed retry, error classification, and
// JSON decoding.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/hexlevel-io/testlab/internal/auth"
	"github.com/hexlevel-io/testlab/internal/constants"
	"github.com/hexlevel-io/testlab/pkg/testlab"
)

// Request describes one API call.
type Request struct {
	// Method is the HTTP verb.
	Method string

	// Path is the URL path below the endpoint, e.g.
	// "/v1/projects/p/testMatrices".
	Path string

	// Query holds call-owned query parameters.
	Query url.Values

	// Params holds caller-supplied additional parameters. A name that is
	// "alt" or appears in Reserved aborts the call before any I/O.
	Params map[string]string

	// Reserved lists the parameter names the call manages itself.
	Reserved []string

	// Headers holds extra request headers.
	Headers map[string]string

	// Body is serialized to JSON once and reused across attempts.
	Body interface{}

	// Scopes is the OAuth2 scope set for token acquisition. Empty means
	// the default scope.
	Scopes []string

	// CallID is the dotted method identifier reported to delegates.
	CallID string

	// Delegate observes and steers the call. Nil means no observation
	// and no retries.
	Delegate testlab.Delegate

	// Result, when non-nil, receives the decoded response body.
	Result interface{}
}

// Client executes API requests against a single endpoint.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	tokenManager auth.TokenManager
	userAgent    string
	logger       testlab.Logger
	debug        bool
}

// Option configures the client.
type Option func(*Client)

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets a logger for the client.
func WithLogger(logger testlab.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetryConfig enables connection-level retries in the underlying HTTP
// client. Call-level retry policy stays with delegates.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		retryClient := retryablehttp.NewClient()
		retryClient.RetryMax = retryMax
		retryClient.RetryWaitMin = retryWaitMin
		retryClient.RetryWaitMax = retryWaitMax
		retryClient.Logger = nil
		// Hand the last response back instead of discarding it, so a
		// non-2xx that survives the transport retries still reaches the
		// error classifier.
		retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

		timeout := c.httpClient.Timeout
		c.httpClient = retryClient.StandardClient()
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a client for the given endpoint. A nil token manager
// sends unauthenticated requests, which suits emulators and tests.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultTransportRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	// Hand the last response back instead of discarding it, so a non-2xx
	// that survives the transport retries still reaches the error
	// classifier.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	httpClient := retryClient.StandardClient()
	httpClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:      baseURL,
		httpClient:   httpClient,
		tokenManager: tokenManager,
		userAgent:    constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// TokenManager returns the client's token manager.
func (c *Client) TokenManager() auth.TokenManager {
	return c.tokenManager
}

// Do executes a request through the full pipeline. The returned response is
// fully buffered. The request's delegate sees Finished exactly once.
//
//nolint:funlen
func (c *Client) Do(ctx context.Context, req *Request) (*testlab.Response, error) {
	delegate := req.Delegate
	if delegate == nil {
		delegate = testlab.NoopDelegate{}
	}

	delegate.Begin(testlab.MethodInfo{
		ID:         c.callID(req),
		HTTPMethod: req.Method,
	})

	// Reject clashing parameters before any network traffic.
	for _, name := range req.Reserved {
		if _, ok := req.Params[name]; ok {
			delegate.Finished(false)

			return nil, &testlab.FieldClashError{Field: name}
		}
	}

	if _, ok := req.Params["alt"]; ok {
		delegate.Finished(false)

		return nil, &testlab.FieldClashError{Field: "alt"}
	}

	query := url.Values{}

	for key, values := range req.Query {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	for key, value := range req.Params {
		query.Set(key, value)
	}

	query.Set("alt", "json")

	scopes := req.Scopes
	if len(scopes) == 0 {
		scopes = []string{constants.DefaultScope}
	}

	// The body is serialized once and replayed on every attempt.
	var body []byte

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			delegate.Finished(false)

			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		body = data
	}

	requestURL := c.baseURL + req.Path + "?" + query.Encode()

	for {
		token, err := c.acquireToken(ctx, scopes, delegate)
		if err != nil {
			delegate.Finished(false)

			return nil, err
		}

		delegate.PreRequest()

		resp, transportErr := c.attempt(ctx, req, requestURL, token, body)
		if transportErr != nil {
			delay, retry := delegate.TransportFailure(transportErr)
			if retry {
				err = sleepContext(ctx, delay)
				if err == nil {
					continue
				}

				transportErr = err
			}

			delegate.Finished(false)

			return nil, &testlab.HTTPError{Err: transportErr}
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			var parsed interface{}

			jsonBody := json.Unmarshal(resp.Body, &parsed) == nil
			if !jsonBody {
				parsed = nil
			}

			delay, retry := delegate.HTTPFailure(resp, parsed)
			if retry {
				err = sleepContext(ctx, delay)
				if err == nil {
					continue
				}

				delegate.Finished(false)

				return resp, &testlab.HTTPError{Err: err}
			}

			delegate.Finished(false)

			if jsonBody {
				return resp, &testlab.BadRequestError{
					StatusCode: resp.StatusCode,
					Value:      parsed,
					Status:     testlab.ParseAPIStatus(resp.Body),
				}
			}

			return resp, &testlab.FailureError{
				StatusCode: resp.StatusCode,
				Body:       resp.Body,
			}
		}

		if req.Result != nil {
			err = json.Unmarshal(resp.Body, req.Result)
			if err != nil {
				delegate.DecodeFailure(string(resp.Body), err)
				delegate.Finished(false)

				return resp, &testlab.JSONDecodeError{Body: string(resp.Body), Err: err}
			}
		}

		delegate.Finished(true)

		return resp, nil
	}
}

// Get is a convenience wrapper for GET requests.
func (c *Client) Get(ctx context.Context, path string, query url.Values, result interface{}) (*testlab.Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
		Result: result,
	})
}

// Post is a convenience wrapper for POST requests.
func (c *Client) Post(ctx context.Context, path string, body, result interface{}) (*testlab.Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
		Result: result,
	})
}

// acquireToken fetches a token for the scope set, consulting the delegate
// on failure. A nil token manager means unauthenticated requests.
func (c *Client) acquireToken(ctx context.Context, scopes []string, delegate testlab.Delegate) (string, error) {
	if c.tokenManager == nil {
		return "", nil
	}

	token, err := c.tokenManager.GetToken(ctx, scopes)
	if err != nil {
		substitute, ok := delegate.Token(err)
		if !ok {
			return "", &testlab.MissingTokenError{Err: err}
		}

		token = substitute
	}

	return token, nil
}

// attempt sends one HTTP request and buffers the whole response body.
func (c *Client) attempt(ctx context.Context, req *Request, requestURL, token string, body []byte) (*testlab.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, requestURL, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept", "application/json")

	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.ContentLength = int64(len(body))
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	requestID := ""
	if c.debug && c.logger != nil {
		requestID = uuid.NewString()
		c.logger.Debug("API request", map[string]interface{}{
			"request_id": requestID,
			"method":     req.Method,
			"url":        requestURL,
			"body_size":  len(body),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API response", map[string]interface{}{
			"request_id":  requestID,
			"status_code": httpResp.StatusCode,
			"body_size":   len(respBody),
		})
	}

	return &testlab.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

// callID derives the delegate-visible method identifier.
func (c *Client) callID(req *Request) string {
	if req.CallID != "" {
		return req.CallID
	}

	return req.Method + " " + req.Path
}

// sleepContext waits for the delay unless the context ends first.
func sleepContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		// Still honor cancellation between attempts.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
