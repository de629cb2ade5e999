// Package prometheus exports build and traversal metrics through a
// Prometheus registry.
package prometheus

import (
	"time"

	"github.com/hupe1980/bitgraph"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Compile time check to ensure Collector satisfies the MetricsCollector interface.
var _ bitgraph.MetricsCollector = (*Collector)(nil)

// Traversal latency buckets in microseconds.
var latencyBuckets = []float64{
	1, 5, 10, 25, 50, 100, 250, 500,
	1000, // 1ms
	2500, 5000, 10000, 50000,
	100000, // 100ms
	1000000,
}

// Collector records metrics on its own registry.
type Collector struct {
	registry *prom.Registry

	builds            *prom.CounterVec
	buildLatency      *prom.HistogramVec
	buildEdges        *prom.CounterVec
	traversals        *prom.CounterVec
	traversalErrors   *prom.CounterVec
	traversalLatency  *prom.HistogramVec
	traversedVertices *prom.CounterVec
}

// Option configures a Collector.
type Option func(o *options)

type options struct {
	namespace      string
	runtimeMetrics bool
}

// WithNamespace sets the metric namespace. The default is "bitgraph".
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// WithRuntimeMetrics registers the Go runtime and build info collectors.
func WithRuntimeMetrics() Option {
	return func(o *options) {
		o.runtimeMetrics = true
	}
}

// New creates a Collector with a fresh registry.
func New(optFns ...Option) *Collector {
	opts := options{namespace: "bitgraph"}
	for _, fn := range optFns {
		fn(&opts)
	}

	registry := prom.NewRegistry()
	if opts.runtimeMetrics {
		registry.MustRegister(collectors.NewBuildInfoCollector())
		registry.MustRegister(collectors.NewGoCollector())
	}
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		builds: factory.NewCounterVec(prom.CounterOpts{
			Namespace: opts.namespace,
			Subsystem: "build",
			Name:      "total",
			Help:      "Number of graphs built.",
		}, []string{"kind"}),
		buildLatency: factory.NewHistogramVec(prom.HistogramOpts{
			Namespace: opts.namespace,
			Subsystem: "build",
			Name:      "latency_microseconds",
			Help:      "Graph construction latency.",
			Buckets:   latencyBuckets,
		}, []string{"kind"}),
		buildEdges: factory.NewCounterVec(prom.CounterOpts{
			Namespace: opts.namespace,
			Subsystem: "build",
			Name:      "edges_total",
			Help:      "Number of edges inserted.",
		}, []string{"kind"}),
		traversals: factory.NewCounterVec(prom.CounterOpts{
			Namespace: opts.namespace,
			Subsystem: "traversal",
			Name:      "total",
			Help:      "Number of traversals run.",
		}, []string{"kernel", "kind"}),
		traversalErrors: factory.NewCounterVec(prom.CounterOpts{
			Namespace: opts.namespace,
			Subsystem: "traversal",
			Name:      "errors_total",
			Help:      "Number of failed traversals.",
		}, []string{"kernel", "kind"}),
		traversalLatency: factory.NewHistogramVec(prom.HistogramOpts{
			Namespace: opts.namespace,
			Subsystem: "traversal",
			Name:      "latency_microseconds",
			Help:      "Traversal latency.",
			Buckets:   latencyBuckets,
		}, []string{"kernel", "kind"}),
		traversedVertices: factory.NewCounterVec(prom.CounterOpts{
			Namespace: opts.namespace,
			Subsystem: "traversal",
			Name:      "vertices_total",
			Help:      "Number of vertices in traversed graphs.",
		}, []string{"kernel", "kind"}),
	}
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prom.Registry {
	return c.registry
}

// RecordBuild implements bitgraph.MetricsCollector.
func (c *Collector) RecordBuild(kind string, _, edges int, d time.Duration) {
	c.builds.WithLabelValues(kind).Inc()
	c.buildEdges.WithLabelValues(kind).Add(float64(edges))
	c.buildLatency.WithLabelValues(kind).Observe(float64(d.Microseconds()))
}

// RecordTraversal implements bitgraph.MetricsCollector.
func (c *Collector) RecordTraversal(kernel, kind string, vertices int, d time.Duration, err error) {
	c.traversals.WithLabelValues(kernel, kind).Inc()
	if err != nil {
		c.traversalErrors.WithLabelValues(kernel, kind).Inc()
		return
	}
	c.traversedVertices.WithLabelValues(kernel, kind).Add(float64(vertices))
	c.traversalLatency.WithLabelValues(kernel, kind).Observe(float64(d.Microseconds()))
}

// WriteTextfile writes the registry in the text exposition format to path,
// for pickup by the node exporter's textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, c.registry)
}
