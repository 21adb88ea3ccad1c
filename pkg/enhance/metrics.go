package enhance

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-go/compound/pkg/vdom"
)

// MetricsConfig configures the Prometheus instrumentation for an Enhancer.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "compound").
	Namespace string

	// Subsystem is the metrics subsystem (default: "enhance").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for enhance duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus instrumentation.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "compound",
		Subsystem: "enhance",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

type metrics struct {
	callsTotal *prometheus.CounterVec
	duration   prometheus.Histogram
}

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		callsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "calls_total",
			Help:        "Total number of enhance calls by mode and cache outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"mode", "cache"}),

		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "duration_seconds",
			Help:        "Enhance call duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

// InstrumentedEnhancer wraps an Enhancer so every call updates Prometheus
// metrics.
//
// Metrics collected:
//   - compound_enhance_calls_total: Counter of calls by mode and cache outcome
//   - compound_enhance_duration_seconds: Histogram of call duration
type InstrumentedEnhancer struct {
	inner *Enhancer
	m     *metrics
}

// Instrument wraps the given Enhancer with Prometheus instrumentation.
func Instrument(e *Enhancer, opts ...MetricsOption) *InstrumentedEnhancer {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &InstrumentedEnhancer{
		inner: e,
		m:     initMetrics(config),
	}
}

// Enhance delegates to the wrapped Enhancer and records metrics.
func (ie *InstrumentedEnhancer) Enhance(children *vdom.VNode, opts Options) *vdom.VNode {
	start := time.Now()
	before := ie.inner.Stats()

	result := ie.inner.Enhance(children, opts)

	cache := "miss"
	if ie.inner.Stats().Hits > before.Hits {
		cache = "hit"
	}
	ie.m.callsTotal.WithLabelValues(modeLabel(opts), cache).Inc()
	ie.m.duration.Observe(time.Since(start).Seconds())

	return result
}

// Stats returns the wrapped Enhancer's cache counters.
func (ie *InstrumentedEnhancer) Stats() Stats {
	return ie.inner.Stats()
}

func modeLabel(opts Options) string {
	if opts.MapProps != nil {
		return "map"
	}
	return "broadcast"
}
