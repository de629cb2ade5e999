package bitgraph

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting traversal metrics.
// Implement this interface to integrate with monitoring systems; see
// metrics/prometheus for a Prometheus-backed implementation.
type MetricsCollector interface {
	// RecordBuild is called after an adjacency representation is built from
	// an edge list.
	RecordBuild(kind string, vertices, edges int, duration time.Duration)

	// RecordTraversal is called after each BFS/DFS run.
	// kernel is "bfs" or "dfs", kind is the adjacency representation.
	RecordTraversal(kernel, kind string, vertices int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(string, int, int, time.Duration)                {}
func (NoopMetricsCollector) RecordTraversal(string, string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	BuildCount           atomic.Int64
	BuildTotalNanos      atomic.Int64
	TraversalCount       atomic.Int64
	TraversalErrors      atomic.Int64
	TraversalTotalNanos  atomic.Int64
	TraversedVertexCount atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(_ string, _, _ int, duration time.Duration) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
}

// RecordTraversal implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTraversal(_, _ string, vertices int, duration time.Duration, err error) {
	b.TraversalCount.Add(1)
	b.TraversalTotalNanos.Add(duration.Nanoseconds())
	b.TraversedVertexCount.Add(int64(vertices))
	if err != nil {
		b.TraversalErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:        b.BuildCount.Load(),
		TraversalCount:    b.TraversalCount.Load(),
		TraversalErrors:   b.TraversalErrors.Load(),
		TraversalAvgNanos: b.getAvgTraversalNanos(),
		TraversedVertices: b.TraversedVertexCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgTraversalNanos() int64 {
	count := b.TraversalCount.Load()
	if count == 0 {
		return 0
	}
	return b.TraversalTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount        int64
	TraversalCount    int64
	TraversalErrors   int64
	TraversalAvgNanos int64
	TraversedVertices int64
}
