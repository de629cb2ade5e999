package bench

import (
	"github.com/hupe1980/bitgraph"
	"github.com/hupe1980/bitgraph/adjacency"
	"github.com/hupe1980/bitgraph/traverse"
)

// DefaultIterations is the number of timed runs per kernel and representation.
const DefaultIterations = 10

// Option configures a Runner.
type Option func(o *options)

type options struct {
	iterations int
	source     int
	kinds      []adjacency.Kind
	kernels    []traverse.Kernel
	pushPolicy traverse.PushPolicy
	outputDir  string
	logger     *bitgraph.Logger
	metrics    bitgraph.MetricsCollector
}

func defaultOptions() options {
	return options{
		iterations: DefaultIterations,
		kinds:      adjacency.Kinds(),
		kernels:    traverse.Kernels(),
		pushPolicy: traverse.PushAll,
		logger:     bitgraph.NoopLogger(),
		metrics:    bitgraph.NoopMetricsCollector{},
	}
}

// WithIterations sets the number of timed runs. Values below 1 are ignored.
func WithIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.iterations = n
		}
	}
}

// WithSource sets the traversal source vertex. The default is 0.
func WithSource(s int) Option {
	return func(o *options) {
		o.source = s
	}
}

// WithKinds restricts the measured representations.
func WithKinds(kinds ...adjacency.Kind) Option {
	return func(o *options) {
		if len(kinds) > 0 {
			o.kinds = kinds
		}
	}
}

// WithKernels restricts the measured kernels.
func WithKernels(kernels ...traverse.Kernel) Option {
	return func(o *options) {
		if len(kernels) > 0 {
			o.kernels = kernels
		}
	}
}

// WithPushPolicy sets the DFS push policy.
func WithPushPolicy(p traverse.PushPolicy) Option {
	return func(o *options) {
		o.pushPolicy = p
	}
}

// WithOutputDir makes the runner write the first run's per-vertex values
// to dir/output_<kernel>_<kind>.txt.
func WithOutputDir(dir string) Option {
	return func(o *options) {
		o.outputDir = dir
	}
}

// WithLogger sets the logger.
func WithLogger(l *bitgraph.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m bitgraph.MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}
