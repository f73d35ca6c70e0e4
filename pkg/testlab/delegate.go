package testlab

import (
	"net/http"
	"time"

	"github.com/hexlevel-io/testlab/internal/constants"
)

// MethodInfo identifies the API method a call executes.
type MethodInfo struct {
	// ID is the dotted method identifier, e.g. "projects.testMatrices.create".
	ID string
	// HTTPMethod is the HTTP verb the call uses.
	HTTPMethod string
}

// Response is the buffered HTTP response handed to delegates and returned
// by the execution layer.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Delegate observes and steers the execution of a single API call. The
// execution layer invokes the hooks in call order and never mutates the
// delegate; implementations that keep per-call state (retry counters,
// timers) should be used for one call at a time.
//
// Finished is invoked exactly once per call, on every terminal path.
type Delegate interface {
	// Begin is called once before any work, identifying the method.
	Begin(info MethodInfo)

	// PreRequest is called immediately before each HTTP attempt.
	PreRequest()

	// Token is consulted when the token source fails. Returning a
	// non-empty token with true substitutes it for this call; returning
	// false aborts the call with a missing token error.
	Token(err error) (string, bool)

	// TransportFailure is consulted when a request fails below the HTTP
	// layer. Returning true retries after the given delay.
	TransportFailure(err error) (time.Duration, bool)

	// HTTPFailure is consulted on a non-2xx response. parsed holds the
	// generically decoded JSON body, or nil when the body was not JSON.
	// Returning true retries after the given delay.
	HTTPFailure(resp *Response, parsed interface{}) (time.Duration, bool)

	// DecodeFailure is called when a 2xx body cannot be decoded into the
	// call's result type.
	DecodeFailure(body string, err error)

	// Finished is called exactly once, with true only on success.
	Finished(success bool)
}

// NoopDelegate is the default delegate: it observes nothing and never
// retries. The zero value is ready to use.
type NoopDelegate struct{}

// Begin implements Delegate.
func (NoopDelegate) Begin(MethodInfo) {}

// PreRequest implements Delegate.
func (NoopDelegate) PreRequest() {}

// Token implements Delegate.
func (NoopDelegate) Token(error) (string, bool) { return "", false }

// TransportFailure implements Delegate.
func (NoopDelegate) TransportFailure(error) (time.Duration, bool) { return 0, false }

// HTTPFailure implements Delegate.
func (NoopDelegate) HTTPFailure(*Response, interface{}) (time.Duration, bool) { return 0, false }

// DecodeFailure implements Delegate.
func (NoopDelegate) DecodeFailure(string, error) {}

// Finished implements Delegate.
func (NoopDelegate) Finished(bool) {}

// LoggingDelegate logs call checkpoints through a Logger. It never retries;
// compose it around another delegate to add retry behavior.
type LoggingDelegate struct {
	Logger Logger

	info MethodInfo
}

// NewLoggingDelegate creates a delegate that logs call progress.
func NewLoggingDelegate(logger Logger) *LoggingDelegate {
	return &LoggingDelegate{Logger: logger}
}

// Begin implements Delegate.
func (d *LoggingDelegate) Begin(info MethodInfo) {
	d.info = info
	d.Logger.Debug("API call started", map[string]interface{}{
		"method":      info.ID,
		"http_method": info.HTTPMethod,
	})
}

// PreRequest implements Delegate.
func (d *LoggingDelegate) PreRequest() {
	d.Logger.Debug("API request attempt", map[string]interface{}{
		"method": d.info.ID,
	})
}

// Token implements Delegate.
func (d *LoggingDelegate) Token(err error) (string, bool) {
	d.Logger.Warn("token acquisition failed", map[string]interface{}{
		"method": d.info.ID,
		"error":  err.Error(),
	})

	return "", false
}

// TransportFailure implements Delegate.
func (d *LoggingDelegate) TransportFailure(err error) (time.Duration, bool) {
	d.Logger.Error("transport failure", map[string]interface{}{
		"method": d.info.ID,
		"error":  err.Error(),
	})

	return 0, false
}

// HTTPFailure implements Delegate.
func (d *LoggingDelegate) HTTPFailure(resp *Response, _ interface{}) (time.Duration, bool) {
	d.Logger.Error("API call failed", map[string]interface{}{
		"method":      d.info.ID,
		"status_code": resp.StatusCode,
	})

	return 0, false
}

// DecodeFailure implements Delegate.
func (d *LoggingDelegate) DecodeFailure(body string, err error) {
	d.Logger.Error("response decode failed", map[string]interface{}{
		"method":    d.info.ID,
		"error":     err.Error(),
		"body_size": len(body),
	})
}

// Finished implements Delegate.
func (d *LoggingDelegate) Finished(success bool) {
	d.Logger.Debug("API call finished", map[string]interface{}{
		"method":  d.info.ID,
		"success": success,
	})
}

// RetryDelegate retries transport failures and retryable HTTP status codes
// with exponential backoff. It keeps a per-call attempt counter, so use a
// fresh instance (or one call at a time) per API call.
type RetryDelegate struct {
	NoopDelegate

	// MaxRetries is the number of retry attempts after the initial try.
	MaxRetries int
	// RetryDelay is the base delay; attempt n waits RetryDelay * 2^(n-1).
	RetryDelay time.Duration
	// MaxDelay caps the backoff delay.
	MaxDelay time.Duration
	// RetryOnCodes lists HTTP status codes that trigger a retry.
	RetryOnCodes []int

	attempts int
}

// NewRetryDelegate creates a retry delegate with the default budget,
// backoff, and retryable status codes.
func NewRetryDelegate() *RetryDelegate {
	return &RetryDelegate{
		MaxRetries:   constants.DefaultRetryMax,
		RetryDelay:   constants.DefaultRetryDelay,
		MaxDelay:     constants.DefaultRetryMaxDelay,
		RetryOnCodes: []int{429, 500, 502, 503, 504},
	}
}

// Begin implements Delegate.
func (d *RetryDelegate) Begin(MethodInfo) {
	d.attempts = 0
}

// TransportFailure implements Delegate.
func (d *RetryDelegate) TransportFailure(error) (time.Duration, bool) {
	return d.next()
}

// HTTPFailure implements Delegate.
func (d *RetryDelegate) HTTPFailure(resp *Response, _ interface{}) (time.Duration, bool) {
	for _, code := range d.RetryOnCodes {
		if resp.StatusCode == code {
			return d.next()
		}
	}

	return 0, false
}

func (d *RetryDelegate) next() (time.Duration, bool) {
	if d.attempts >= d.MaxRetries {
		return 0, false
	}

	delay := d.RetryDelay
	for i := 0; i < d.attempts; i++ {
		delay *= constants.ExponentialBackoffBase
		if delay >= d.MaxDelay {
			delay = d.MaxDelay

			break
		}
	}

	d.attempts++

	return delay, true
}
