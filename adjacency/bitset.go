package adjacency

import (
	"fmt"
	"iter"

	"github.com/hupe1980/bitgraph"
	"github.com/hupe1980/bitgraph/internal/bitset"
	"github.com/hupe1980/bitgraph/internal/conv"
)

// Bitset is a packed adjacency matrix: bit v of row u is set iff the edge
// (u, v) exists.
//
// Memory layout (one flat slice, rowWords = ceil(n/64)):
//
//	┌──────────────────────────┬──────────────────────────┬─────┐
//	│ row 0: rowWords × uint64 │ row 1: rowWords × uint64 │ ... │
//	└──────────────────────────┴──────────────────────────┴─────┘
//
// Bits at positions >= n in the last word of each row are padding and are
// never set by AddEdge.
type Bitset struct {
	n        int
	rowWords int
	words    []uint64
}

// Compile time check to ensure Bitset satisfies the Graph interface.
var _ Graph = (*Bitset)(nil)

// NewBitset allocates a zeroed n×n matrix.
func NewBitset(n int) (*Bitset, error) {
	if err := bitgraph.CheckCount("adjacency.NewBitset", n); err != nil {
		return nil, err
	}
	rowWords := bitset.Words(n)
	total, err := conv.MulInt(n, rowWords)
	if err != nil {
		return nil, fmt.Errorf("adjacency.NewBitset: %w", err)
	}
	return &Bitset{
		n:        n,
		rowWords: rowWords,
		words:    make([]uint64, total),
	}, nil
}

// VertexCount returns the number of vertices.
func (g *Bitset) VertexCount() int { return g.n }

// RowWords returns the number of words per row.
func (g *Bitset) RowWords() int { return g.rowWords }

func (g *Bitset) row(u int) bitset.Set {
	off := u * g.rowWords
	return bitset.Set(g.words[off : off+g.rowWords : off+g.rowWords])
}

// Row returns the words of row u. The slice aliases internal storage and
// must not be modified.
func (g *Bitset) Row(u int) []uint64 {
	if u < 0 || u >= g.n {
		return nil
	}
	return g.row(u)
}

// AddEdge sets bit v in row u and bit u in row v.
func (g *Bitset) AddEdge(u, v int) error {
	if err := checkEdge("adjacency.Bitset.AddEdge", u, v, g.n); err != nil {
		return err
	}
	g.row(u).Add(v)
	g.row(v).Add(u)
	return nil
}

// HasEdge reports whether (u, v) is an edge. Out-of-range ids report false.
func (g *Bitset) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}
	return g.row(u).Contains(v)
}

// Neighbors yields the neighbors of u in ascending id order.
func (g *Bitset) Neighbors(u int) iter.Seq[int] {
	return func(yield func(int) bool) {
		g.ForEachNeighbor(u, yield)
	}
}

// ForEachNeighbor calls fn for each neighbor of u in ascending order until
// fn returns false. Ids at or past VertexCount are never reported, even if
// padding bits were corrupted.
func (g *Bitset) ForEachNeighbor(u int, fn func(v int) bool) {
	if u < 0 || u >= g.n {
		return
	}
	g.row(u).ForEach(g.n, fn)
}

// Degree returns the number of set bits in row u.
func (g *Bitset) Degree(u int) int {
	if u < 0 || u >= g.n {
		return 0
	}
	return g.row(u).Count()
}

// EdgeCount returns the number of distinct undirected edges (a self-loop
// counts once).
func (g *Bitset) EdgeCount() int {
	total := bitset.Set(g.words).Count()
	loops := 0
	for u := 0; u < g.n; u++ {
		if g.row(u).Contains(u) {
			loops++
		}
	}
	return (total + loops) / 2
}

// Clone returns a deep copy.
func (g *Bitset) Clone() *Bitset {
	words := make([]uint64, len(g.words))
	copy(words, g.words)
	return &Bitset{n: g.n, rowWords: g.rowWords, words: words}
}

// SizeBytes returns the size of the matrix storage in bytes.
func (g *Bitset) SizeBytes() int {
	return len(g.words) * 8
}
