package adjacency

import (
	"fmt"
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/bitgraph"
)

// Roaring stores each adjacency row as a compressed roaring bitmap.
// Neighbors are reported in ascending id order.
type Roaring struct {
	rows []*roaring.Bitmap
}

// Compile time check to ensure Roaring satisfies the Graph interface.
var _ Graph = (*Roaring)(nil)

// NewRoaring allocates n empty rows.
func NewRoaring(n int) (*Roaring, error) {
	if err := bitgraph.CheckCount("adjacency.NewRoaring", n); err != nil {
		return nil, err
	}
	if uint64(n) > math.MaxUint32 {
		return nil, fmt.Errorf("adjacency.NewRoaring: %d vertices exceed uint32 ids: %w", n, bitgraph.ErrInvalidArgument)
	}
	rows := make([]*roaring.Bitmap, n)
	for i := range rows {
		rows[i] = roaring.New()
	}
	return &Roaring{rows: rows}, nil
}

// VertexCount returns the number of vertices.
func (g *Roaring) VertexCount() int { return len(g.rows) }

// AddEdge adds v to row u and u to row v.
func (g *Roaring) AddEdge(u, v int) error {
	if err := checkEdge("adjacency.Roaring.AddEdge", u, v, len(g.rows)); err != nil {
		return err
	}
	g.rows[u].Add(uint32(v))
	g.rows[v].Add(uint32(u))
	return nil
}

// HasEdge reports whether (u, v) is an edge.
func (g *Roaring) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.rows) || v < 0 || v >= len(g.rows) {
		return false
	}
	return g.rows[u].Contains(uint32(v))
}

// Neighbors yields the neighbors of u in ascending order.
func (g *Roaring) Neighbors(u int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if u < 0 || u >= len(g.rows) {
			return
		}
		it := g.rows[u].Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Degree returns the cardinality of row u.
func (g *Roaring) Degree(u int) int {
	if u < 0 || u >= len(g.rows) {
		return 0
	}
	return int(g.rows[u].GetCardinality())
}

// EdgeCount returns the number of distinct undirected edges (a self-loop
// counts once).
func (g *Roaring) EdgeCount() int {
	total, loops := 0, 0
	for u, rb := range g.rows {
		total += int(rb.GetCardinality())
		if rb.Contains(uint32(u)) {
			loops++
		}
	}
	return (total + loops) / 2
}

// Optimize converts row containers to run encoding where that is smaller.
// Build calls it once all edges are inserted.
func (g *Roaring) Optimize() {
	for _, rb := range g.rows {
		rb.RunOptimize()
	}
}

// SizeBytes returns the serialized size of all rows.
func (g *Roaring) SizeBytes() int {
	total := 0
	for _, rb := range g.rows {
		total += int(rb.GetSerializedSizeInBytes())
	}
	return total
}
