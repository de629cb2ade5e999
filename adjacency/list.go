package adjacency

import (
	"fmt"
	"iter"

	"github.com/hupe1980/bitgraph"
	"github.com/hupe1980/bitgraph/internal/conv"
)

// List is an unpacked adjacency list. Neighbors are reported in insertion
// order; inserting the same edge twice stores it twice.
type List struct {
	rows [][]int32
}

// Compile time check to ensure List satisfies the Graph interface.
var _ Graph = (*List)(nil)

// NewList allocates n empty rows.
func NewList(n int) (*List, error) {
	if err := bitgraph.CheckCount("adjacency.NewList", n); err != nil {
		return nil, err
	}
	if _, err := conv.IntToInt32(n); err != nil {
		return nil, fmt.Errorf("adjacency.NewList: vertex ids must fit int32: %w", err)
	}
	return &List{rows: make([][]int32, n)}, nil
}

// VertexCount returns the number of vertices.
func (g *List) VertexCount() int { return len(g.rows) }

// AddEdge appends v to row u and u to row v.
func (g *List) AddEdge(u, v int) error {
	if err := checkEdge("adjacency.List.AddEdge", u, v, len(g.rows)); err != nil {
		return err
	}
	g.rows[u] = append(g.rows[u], int32(v))
	g.rows[v] = append(g.rows[v], int32(u))
	return nil
}

// Neighbors yields the neighbors of u in insertion order.
func (g *List) Neighbors(u int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if u < 0 || u >= len(g.rows) {
			return
		}
		for _, v := range g.rows[u] {
			if !yield(int(v)) {
				return
			}
		}
	}
}

// EdgeCount returns the number of AddEdge calls, duplicates included.
func (g *List) EdgeCount() int {
	total := 0
	for _, row := range g.rows {
		total += len(row)
	}
	// A self-loop appends u to its own row twice.
	return total / 2
}

// Degree returns the length of row u.
func (g *List) Degree(u int) int {
	if u < 0 || u >= len(g.rows) {
		return 0
	}
	return len(g.rows[u])
}
