package testutil

import (
	"math/rand"
	"sync"
)

// Edge is an undirected 0-based vertex pair.
type Edge = [2]int

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns n pseudo-random values in [0,max).
func (r *RNG) Ints(n, max int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(max)
	}
	return out
}

// RandomEdges returns up to m distinct undirected edges over n vertices,
// without self-loops, in generation order.
func (r *RNG) RandomEdges(n, m int) []Edge {
	if n < 2 {
		return nil
	}
	if maxEdges := n * (n - 1) / 2; m > maxEdges {
		m = maxEdges
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[Edge]struct{}, m)
	edges := make([]Edge, 0, m)
	for len(edges) < m {
		u, v := r.rand.Intn(n), r.rand.Intn(n)
		if u == v {
			continue
		}
		key := Edge{min(u, v), max(u, v)}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		edges = append(edges, Edge{u, v})
	}
	return edges
}

// PathEdges returns the edges of the path 0-1-...-(n-1).
func PathEdges(n int) []Edge {
	edges := make([]Edge, 0, max(n-1, 0))
	for i := 0; i+1 < n; i++ {
		edges = append(edges, Edge{i, i + 1})
	}
	return edges
}

// CompleteEdges returns every edge of the complete graph on n vertices.
func CompleteEdges(n int) []Edge {
	edges := make([]Edge, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, Edge{u, v})
		}
	}
	return edges
}

// AdjacencyLists builds plain neighbor slices from an edge list.
func AdjacencyLists(n int, edges []Edge) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	return adj
}

// ReferenceBFS computes hop distances from source with a textbook BFS over
// plain slices. Unreached vertices get -1.
func ReferenceBFS(n int, edges []Edge, source int) []int {
	adj := AdjacencyLists(n, edges)
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[source] = 0
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if dist[v] == -1 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}
