package traverse

import (
	"fmt"
	"strings"

	bbset "github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/bitgraph"
	"github.com/hupe1980/bitgraph/adjacency"
	"github.com/hupe1980/bitgraph/internal/queue"
	"github.com/hupe1980/bitgraph/internal/visited"
)

// Result holds the per-vertex output of one traversal.
type Result struct {
	// Values has one entry per vertex: the hop distance from the source for
	// BFS, or the 1-based discovery rank for DFS. Unreached vertices are -1.
	Values []int

	// Reached is the number of vertices with a non-negative value.
	Reached int

	// PeakFrontier is the largest queue (BFS) or stack (DFS) length observed.
	PeakFrontier int
}

func newResult(n int) *Result {
	values := make([]int, n)
	for i := range values {
		values[i] = -1
	}
	return &Result{Values: values}
}

// Traverser runs BFS and DFS kernels, reusing its work lists across calls.
// A Traverser must not be used concurrently; run one per goroutine.
type Traverser struct {
	opts    options
	fifo    *queue.FIFO
	stack   *queue.Stack
	visited *visited.VisitedSet
	pushed  *bbset.BitSet
}

// New creates a Traverser.
func New(optFns ...Option) *Traverser {
	opts := defaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Traverser{
		opts:    opts,
		fifo:    queue.NewFIFO(opts.capacity),
		stack:   queue.NewStack(opts.capacity),
		visited: visited.New(opts.capacity),
		pushed:  bbset.New(uint(opts.capacity)),
	}
}

// BFS computes hop distances from source with a fresh Traverser.
func BFS(g adjacency.Graph, source int) (*Result, error) {
	return New().BFS(g, source)
}

// DFS computes discovery ranks from source with a fresh Traverser.
func DFS(g adjacency.Graph, source int, optFns ...Option) (*Result, error) {
	return New(optFns...).DFS(g, source)
}

// rowScanner is implemented by representations that can enumerate a row
// with a callback, avoiding the iterator adapter on the hot path.
type rowScanner interface {
	ForEachNeighbor(u int, fn func(v int) bool)
}

// BFS computes the hop distance from source to every vertex.
//
// A vertex's distance is assigned when it is first discovered and it is
// enqueued exactly once.
func (t *Traverser) BFS(g adjacency.Graph, source int) (*Result, error) {
	n := g.VertexCount()
	if err := bitgraph.CheckIndex("traverse.BFS", source, n); err != nil {
		return nil, err
	}

	res := newResult(n)
	dist := res.Values
	q := t.fifo
	q.Reset()

	dist[source] = 0
	q.Push(source)
	res.Reached = 1
	res.PeakFrontier = 1

	var (
		du    int
		visit = func(v int) bool {
			if dist[v] == -1 {
				dist[v] = du + 1
				q.Push(v)
				res.Reached++
			}
			return true
		}
	)

	scanner, fast := g.(rowScanner)
	for q.Len() > 0 {
		u, _ := q.Pop()
		du = dist[u]
		if fast {
			scanner.ForEachNeighbor(u, visit)
		} else {
			for v := range g.Neighbors(u) {
				visit(v)
			}
		}
		res.PeakFrontier = max(res.PeakFrontier, q.Len())
	}
	return res, nil
}

// DFS assigns 1-based discovery ranks in the preorder of an iterative
// depth-first search from source.
//
// Neighbors are pushed in enumeration order, so the one enumerated last is
// explored first.
func (t *Traverser) DFS(g adjacency.Graph, source int) (*Result, error) {
	n := g.VertexCount()
	if err := bitgraph.CheckIndex("traverse.DFS", source, n); err != nil {
		return nil, err
	}

	res := newResult(n)
	rank := res.Values
	s := t.stack
	s.Reset()
	seen := t.visited
	seen.Reset()
	seen.EnsureCapacity(n)

	unique := t.opts.pushPolicy == PushUnique
	if unique {
		t.resetPushed(n)
		t.pushed.Set(uint(source))
	}

	s.Push(source)
	res.PeakFrontier = 1
	next := 0

	for s.Len() > 0 {
		u, _ := s.Pop()
		if seen.TestAndVisit(u) {
			continue
		}
		next++
		rank[u] = next

		for v := range g.Neighbors(u) {
			if seen.Visited(v) {
				continue
			}
			if unique {
				if t.pushed.Test(uint(v)) {
					continue
				}
				t.pushed.Set(uint(v))
			}
			s.Push(v)
		}
		res.PeakFrontier = max(res.PeakFrontier, s.Len())
	}
	res.Reached = next
	return res, nil
}

func (t *Traverser) resetPushed(n int) {
	if t.pushed.Len() < uint(n) {
		t.pushed = bbset.New(uint(n))
		return
	}
	t.pushed.ClearAll()
}

// Kernel names a traversal kernel.
type Kernel string

const (
	KernelBFS Kernel = "bfs"
	KernelDFS Kernel = "dfs"
)

// Kernels returns every kernel in a stable order.
func Kernels() []Kernel {
	return []Kernel{KernelBFS, KernelDFS}
}

// ParseKernel parses "bfs" or "dfs".
func ParseKernel(s string) (Kernel, error) {
	switch k := Kernel(strings.ToLower(strings.TrimSpace(s))); k {
	case KernelBFS, KernelDFS:
		return k, nil
	default:
		return "", fmt.Errorf("traverse: unknown kernel %q: %w", s, bitgraph.ErrInvalidArgument)
	}
}

// Run dispatches to the kernel k.
func (t *Traverser) Run(k Kernel, g adjacency.Graph, source int) (*Result, error) {
	switch k {
	case KernelBFS:
		return t.BFS(g, source)
	case KernelDFS:
		return t.DFS(g, source)
	default:
		return nil, fmt.Errorf("traverse: unknown kernel %q: %w", k, bitgraph.ErrInvalidArgument)
	}
}

// ParsePushPolicy parses "all" or "unique".
func ParsePushPolicy(s string) (PushPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return PushAll, nil
	case "unique":
		return PushUnique, nil
	default:
		return 0, fmt.Errorf("traverse: unknown push policy %q: %w", s, bitgraph.ErrInvalidArgument)
	}
}
