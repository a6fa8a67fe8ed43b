package render

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures render metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "kiln").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures render metrics.
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

// WithBuckets sets the duration histogram buckets.
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
		Namespace: "kiln",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the render metrics. A nil *Metrics records nothing.
//
// Metrics collected:
//   - kiln_renders_total: Counter of renders by status (ok, partial, error)
//   - kiln_render_duration_seconds: Histogram of render duration
//   - kiln_node_failures_total: Counter of dropped nodes by error code
//   - kiln_side_table_entries: Histogram of side-table values per render
//   - kiln_output_bytes: Histogram of rendered markup size
type Metrics struct {
	rendersTotal     *prometheus.CounterVec
	renderDuration   prometheus.Histogram
	nodeFailures     *prometheus.CounterVec
	sideTableEntries prometheus.Histogram
	outputBytes      prometheus.Histogram
}

// NewMetrics registers the render metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "renders_total",
			Help:        "Total number of top-level renders",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "render_duration_seconds",
			Help:        "Render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		nodeFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "node_failures_total",
			Help:        "Total number of nodes dropped from the output",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		sideTableEntries: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "side_table_entries",
			Help:        "Side-table values written per render",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.ExponentialBuckets(1, 4, 8),
		}),

		outputBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "output_bytes",
			Help:        "Rendered markup size in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1024, 10240, 102400, 1048576, 10485760}, // 1KB to 10MB
		}),
	}
}

func (m *Metrics) observe(res Result) {
	if m == nil {
		return
	}
	m.rendersTotal.WithLabelValues(res.Status()).Inc()
	m.renderDuration.Observe(res.Duration.Seconds())
	m.sideTableEntries.Observe(float64(res.SideTableEntries))
	m.outputBytes.Observe(float64(len(res.HTML)))
	for _, f := range res.Failures {
		m.nodeFailures.WithLabelValues(f.Code).Inc()
	}
}

func (m *Metrics) observeError() {
	if m == nil {
		return
	}
	m.rendersTotal.WithLabelValues("error").Inc()
}
