package testlab

import (
	"sync"
	"time"
)

// Metrics aggregates outcomes for one API method.
type Metrics struct {
	TotalCalls     int64
	TotalErrors    int64
	TotalRetries   int64
	TotalLatency   time.Duration
	AverageLatency time.Duration
	LastCallTime   time.Time
}

// MetricsRegistry aggregates per-method call metrics. The registry itself is
// safe for concurrent use; each call gets its own delegate from Delegate.
type MetricsRegistry struct {
	mu       sync.Mutex
	metrics  map[string]*Metrics
	onChange func(method string, metrics *Metrics)
}

// NewMetricsRegistry creates an empty metrics registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]*Metrics),
	}
}

// SetOnChange sets a callback invoked after each finished call.
func (r *MetricsRegistry) SetOnChange(fn func(method string, metrics *Metrics)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}

// GetMetrics returns a snapshot of the metrics for a method, or nil when the
// method has not been called.
func (r *MetricsRegistry) GetMetrics(method string) *Metrics {
	r.mu.Lock()
	defer r.mu.Unlock()

	metrics, ok := r.metrics[method]
	if !ok {
		return nil
	}

	snapshot := *metrics

	return &snapshot
}

// Delegate returns a fresh delegate recording into the registry. Like
// RetryDelegate, each delegate serves one call at a time.
func (r *MetricsRegistry) Delegate() *MetricsDelegate {
	return &MetricsDelegate{registry: r}
}

func (r *MetricsRegistry) addRetry(method string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entryLocked(method).TotalRetries++
}

func (r *MetricsRegistry) record(method string, latency time.Duration, success bool) {
	r.mu.Lock()

	metrics := r.entryLocked(method)
	metrics.TotalCalls++
	metrics.LastCallTime = time.Now()

	if latency > 0 {
		metrics.TotalLatency += latency
		metrics.AverageLatency = metrics.TotalLatency / time.Duration(metrics.TotalCalls)
	}

	if !success {
		metrics.TotalErrors++
	}

	onChange := r.onChange
	snapshot := *metrics
	r.mu.Unlock()

	if onChange != nil {
		onChange(method, &snapshot)
	}
}

func (r *MetricsRegistry) entryLocked(method string) *Metrics {
	metrics, ok := r.metrics[method]
	if !ok {
		metrics = &Metrics{}
		r.metrics[method] = metrics
	}

	return metrics
}

// MetricsDelegate records one call's timing and attempts into its registry.
// It never requests a retry.
type MetricsDelegate struct {
	NoopDelegate

	registry *MetricsRegistry

	current  string
	started  time.Time
	attempts int
}

// Begin implements Delegate.
func (d *MetricsDelegate) Begin(info MethodInfo) {
	d.current = info.ID
	d.started = time.Now()
	d.attempts = 0
}

// PreRequest implements Delegate.
func (d *MetricsDelegate) PreRequest() {
	d.attempts++
	if d.attempts > 1 {
		d.registry.addRetry(d.current)
	}
}

// Finished implements Delegate.
func (d *MetricsDelegate) Finished(success bool) {
	var latency time.Duration
	if !d.started.IsZero() {
		latency = time.Since(d.started)
	}

	d.registry.record(d.current, latency, success)
}
