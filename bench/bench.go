// Package bench times the traversal kernels over every adjacency
// representation and writes per-vertex outputs and a summary.
package bench

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/hupe1980/bitgraph"
	"github.com/hupe1980/bitgraph/adjacency"
	"github.com/hupe1980/bitgraph/dimacs"
	"github.com/hupe1980/bitgraph/internal/fs"
	"github.com/hupe1980/bitgraph/traverse"
	"golang.org/x/time/rate"
)

// Measurement is the timing of one kernel over one representation.
type Measurement struct {
	Graph        string
	Kernel       traverse.Kernel
	Kind         adjacency.Kind
	Vertices     int
	Edges        int
	Iterations   int
	Build        time.Duration
	Mean         time.Duration
	Min          time.Duration
	Max          time.Duration
	Reached      int
	PeakFrontier int
	// OutputFile is the path of the per-vertex output, if one was written.
	OutputFile string
}

// Runner measures kernels. It is safe to reuse across graphs but not for
// concurrent use.
type Runner struct {
	opts     options
	fsys     fs.FileSystem
	progress rate.Sometimes
}

// New creates a Runner.
func New(optFns ...Option) *Runner {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Runner{
		opts:     opts,
		fsys:     fs.Default,
		progress: rate.Sometimes{First: 1, Interval: time.Second},
	}
}

// Run measures every configured kernel and representation on f. Results
// are ordered by kernel, then representation.
func (r *Runner) Run(ctx context.Context, name string, f *dimacs.File) ([]Measurement, error) {
	if f == nil {
		return nil, fmt.Errorf("bench: nil graph: %w", bitgraph.ErrInvalidArgument)
	}
	logger := r.opts.logger.WithGraph(name, f.Vertices)
	if r.opts.outputDir != "" {
		if err := r.fsys.MkdirAll(r.opts.outputDir, 0o755); err != nil {
			return nil, fmt.Errorf("bench: %w", err)
		}
	}

	total := len(r.opts.kernels) * len(r.opts.kinds)
	out := make([]Measurement, 0, total)
	for _, kernel := range r.opts.kernels {
		for _, kind := range r.opts.kinds {
			m, err := r.measure(ctx, name, f, kernel, kind)
			if err != nil {
				return out, err
			}
			r.progress.Do(func() {
				logger.InfoContext(ctx, "benchmark progress",
					"kernel", kernel,
					"repr", kind.String(),
					"mean", m.Mean,
					"done", len(out)+1,
					"total", total,
				)
			})
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *Runner) measure(ctx context.Context, name string, f *dimacs.File, kernel traverse.Kernel, kind adjacency.Kind) (Measurement, error) {
	logger := r.opts.logger.WithGraph(name, f.Vertices).WithKernel(string(kernel), kind.String())
	m := Measurement{
		Graph:      name,
		Kernel:     kernel,
		Kind:       kind,
		Vertices:   f.Vertices,
		Edges:      len(f.Edges),
		Iterations: r.opts.iterations,
	}

	start := time.Now()
	g, err := f.Build(kind)
	m.Build = time.Since(start)
	logger.LogBuild(ctx, kind.String(), f.Vertices, len(f.Edges), m.Build, err)
	if err != nil {
		return m, fmt.Errorf("bench: build %s: %w", kind, err)
	}
	r.opts.metrics.RecordBuild(kind.String(), f.Vertices, len(f.Edges), m.Build)

	tr := traverse.New(traverse.WithCapacity(f.Vertices), traverse.WithPushPolicy(r.opts.pushPolicy))

	var total time.Duration
	for i := 0; i < r.opts.iterations; i++ {
		if err := ctx.Err(); err != nil {
			return m, err
		}

		start := time.Now()
		res, err := tr.Run(kernel, g, r.opts.source)
		d := time.Since(start)

		r.opts.metrics.RecordTraversal(string(kernel), kind.String(), f.Vertices, d, err)
		if err != nil {
			logger.LogTraversal(ctx, string(kernel), kind.String(), r.opts.source, 0, d, err)
			return m, fmt.Errorf("bench: %s over %s: %w", kernel, kind, err)
		}
		logger.LogTraversal(ctx, string(kernel), kind.String(), r.opts.source, res.Reached, d, nil)

		total += d
		if i == 0 {
			m.Min, m.Max = d, d
			m.Reached = res.Reached
			m.PeakFrontier = res.PeakFrontier
			if r.opts.outputDir != "" {
				path, err := r.writeOutput(kernel, kind, res.Values)
				if err != nil {
					return m, err
				}
				m.OutputFile = path
			}
		}
		m.Min = min(m.Min, d)
		m.Max = max(m.Max, d)
	}
	m.Mean = total / time.Duration(r.opts.iterations)
	return m, nil
}

func (r *Runner) writeOutput(kernel traverse.Kernel, kind adjacency.Kind, values []int) (string, error) {
	path := filepath.Join(r.opts.outputDir, fmt.Sprintf("output_%s_%s.txt", kernel, kind))
	_, err := fs.WriteFileAtomic(r.fsys, path, func(w io.Writer) error {
		return WriteOutput(w, kernel, r.opts.source, values)
	})
	if err != nil {
		return "", fmt.Errorf("bench: %w", err)
	}
	return path, nil
}

// WriteOutput writes one line per vertex other than source:
//
//	Node <source> -> <j> shortest distance: <d>   (bfs)
//	Node <source> -> <j> rank: <r>                (dfs)
func WriteOutput(w io.Writer, kernel traverse.Kernel, source int, values []int) error {
	label := "rank"
	if kernel == traverse.KernelBFS {
		label = "shortest distance"
	}
	bw := bufio.NewWriter(w)
	for j, v := range values {
		if j == source {
			continue
		}
		if _, err := fmt.Fprintf(bw, "Node %d -> %d %s: %d\n", source, j, label, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteSummary writes mean run times grouped by kernel and graph:
//
//	BFS Graph Comparison Results
//	graph<name>
//	bitset : 1.2e-05 s
//	list : 2.3e-05 s
//
// Graphs and representations keep the order in which they appear in ms.
func WriteSummary(w io.Writer, ms []Measurement) error {
	bw := bufio.NewWriter(w)
	for _, kernel := range kernelsOf(ms) {
		fmt.Fprintf(bw, "%s Graph Comparison Results\n", strings.ToUpper(string(kernel)))
		var (
			graph string
			first = true
		)
		for _, m := range ms {
			if m.Kernel != kernel {
				continue
			}
			if first || m.Graph != graph {
				first = false
				graph = m.Graph
				fmt.Fprintf(bw, "graph%s\n", graph)
			}
			fmt.Fprintf(bw, "%s : %g s\n", m.Kind, m.Mean.Seconds())
		}
	}
	return bw.Flush()
}

func kernelsOf(ms []Measurement) []traverse.Kernel {
	var out []traverse.Kernel
	seen := make(map[traverse.Kernel]bool)
	for _, m := range ms {
		if !seen[m.Kernel] {
			seen[m.Kernel] = true
			out = append(out, m.Kernel)
		}
	}
	return out
}
