package adjacency

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hupe1980/bitgraph"
)

// Graph is an undirected, unweighted adjacency structure over vertices
// 0..VertexCount()-1.
//
// Implementations are not synchronized. Once all edges are added a Graph is
// read-only and may be traversed concurrently.
type Graph interface {
	// VertexCount returns the number of vertices.
	VertexCount() int

	// AddEdge inserts the undirected edge (u, v). Both endpoints must be in
	// [0, VertexCount()).
	AddEdge(u, v int) error

	// Neighbors returns a lazy, restartable sequence of the neighbors of u.
	// An out-of-range u yields nothing.
	Neighbors(u int) iter.Seq[int]

	// Degree returns the number of neighbor entries of u.
	Degree(u int) int

	// EdgeCount returns the number of undirected edges stored.
	EdgeCount() int
}

// Kind identifies an adjacency representation.
type Kind uint8

const (
	// KindBitset is the packed 1-bit-per-pair matrix.
	KindBitset Kind = iota
	// KindList is the unpacked adjacency list.
	KindList
	// KindRoaring stores each row as a roaring bitmap.
	KindRoaring
)

// Kinds returns every representation in a stable order.
func Kinds() []Kind {
	return []Kind{KindBitset, KindList, KindRoaring}
}

// String returns the flag spelling of k.
func (k Kind) String() string {
	switch k {
	case KindBitset:
		return "bitset"
	case KindList:
		return "list"
	case KindRoaring:
		return "roaring"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind parses "bitset", "list" or "roaring" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bitset", "matrix":
		return KindBitset, nil
	case "list":
		return KindList, nil
	case "roaring":
		return KindRoaring, nil
	default:
		return 0, fmt.Errorf("adjacency: unknown representation %q: %w", s, bitgraph.ErrInvalidArgument)
	}
}

// New allocates an empty graph of the given kind.
func New(kind Kind, n int) (Graph, error) {
	switch kind {
	case KindBitset:
		return NewBitset(n)
	case KindList:
		return NewList(n)
	case KindRoaring:
		return NewRoaring(n)
	default:
		return nil, fmt.Errorf("adjacency: unknown kind %d: %w", kind, bitgraph.ErrInvalidArgument)
	}
}

// Build allocates a graph of the given kind and inserts edges in order.
// It stops at the first invalid edge.
func Build(kind Kind, n int, edges [][2]int) (Graph, error) {
	g, err := New(kind, n)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("adjacency: edge %d: %w", i, err)
		}
	}
	if r, ok := g.(*Roaring); ok {
		r.Optimize()
	}
	return g, nil
}

func checkEdge(op string, u, v, n int) error {
	if err := bitgraph.CheckIndex(op, u, n); err != nil {
		return err
	}
	return bitgraph.CheckIndex(op, v, n)
}
