// Package coloring checks vertex colorings of a graph for properness and
// equitability.
package coloring

import (
	"fmt"

	"github.com/hupe1980/bitgraph"
	"github.com/hupe1980/bitgraph/adjacency"
	"github.com/hupe1980/bitgraph/packed"
)

// MaxConflicts caps the number of conflicting edges recorded in a Report.
const MaxConflicts = 32

// Conflict is an edge whose endpoints share a color. U < V.
type Conflict struct {
	U, V  int
	Color int
}

// Report summarizes a coloring.
type Report struct {
	// Proper is true when no edge joins two vertices of the same color.
	Proper bool
	// ConflictCount is the total number of conflicting edges.
	ConflictCount int
	// Conflicts holds the first MaxConflicts conflicting edges.
	Conflicts []Conflict
	// Equitable is true when the sizes of the used color classes differ by
	// at most one.
	Equitable bool
	// ColorsUsed is the number of distinct colors.
	ColorsUsed int
	// MinClass and MaxClass are the smallest and largest class sizes.
	MinClass int
	MaxClass int
}

// Valid reports whether the coloring is proper, equitable and, when k > 0,
// uses exactly k colors.
func (r Report) Valid(k int) bool {
	return r.Proper && r.Equitable && (k <= 0 || r.ColorsUsed == k)
}

// FromInts packs a plain color slice into a strict packed array. Colors must
// lie in [0, len(colors)).
func FromInts(colors []int) (*packed.Array, error) {
	a, err := packed.New(len(colors), packed.WithStrict())
	if err != nil {
		return nil, err
	}
	for i, c := range colors {
		if c < 0 || c >= len(colors) {
			return nil, fmt.Errorf("coloring: vertex %d: color %d outside [0, %d): %w",
				i, c, len(colors), bitgraph.ErrValueOutOfRange)
		}
	}
	if err := a.Load(colors); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks colors against g. colors must have one entry per vertex.
func Validate(g adjacency.Graph, colors *packed.Array) (Report, error) {
	if colors == nil {
		return Report{}, fmt.Errorf("coloring: nil colors: %w", bitgraph.ErrInvalidArgument)
	}
	n := g.VertexCount()
	if colors.Len() != n {
		return Report{}, &bitgraph.SizeError{Op: "coloring.Validate", Want: n, Got: colors.Len()}
	}

	plain := colors.Ints()
	rep := Report{Proper: true}

	for u := 0; u < n; u++ {
		cu := plain[u]
		for v := range g.Neighbors(u) {
			if u < v && cu == plain[v] {
				rep.Proper = false
				rep.ConflictCount++
				if len(rep.Conflicts) < MaxConflicts {
					rep.Conflicts = append(rep.Conflicts, Conflict{U: u, V: v, Color: cu})
				}
			}
		}
	}

	sizes := make([]int, colors.MaxValue()+1)
	for _, c := range plain {
		sizes[c]++
	}
	rep.MinClass = n
	for _, s := range sizes {
		if s == 0 {
			continue
		}
		rep.ColorsUsed++
		rep.MinClass = min(rep.MinClass, s)
		rep.MaxClass = max(rep.MaxClass, s)
	}
	rep.Equitable = rep.MaxClass-rep.MinClass <= 1
	return rep, nil
}
