// Package bitgraph provides bit-packed graph storage and traversal kernels.
//
// The module compares breadth-first and depth-first traversal across three
// adjacency representations and ships a variable-width packed value array
// for dense per-vertex state such as color assignments.
//
// # Packages
//
//   - adjacency: Bitset (1 bit per vertex pair), List and Roaring representations
//   - packed: Array, a variable bit-width packed integer array
//   - traverse: BFS and DFS kernels, concurrent multi-source BFS
//   - coloring: proper/equitable validation of a packed color assignment
//   - dimacs: reader for the line-oriented graph description format
//   - bench: repeated-iteration timing harness and result writers
//
// # Quick Start
//
//	g, _ := adjacency.NewBitset(4)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	_ = g.AddEdge(2, 3)
//
//	res, _ := traverse.BFS(g, 0)
//	fmt.Println(res.Values) // [0 1 2 3]
//
//	colors, _ := packed.New(4)
//	_ = colors.Set(3, 1)
//
// # Bit Scanning
//
// Bitset rows are enumerated with math/bits.TrailingZeros64: the lowest set
// bit of each word is extracted and cleared (w &= w-1) until the word is
// empty, so neighbor enumeration costs O(1) per set bit plus O(1) per word.
//
// # Errors
//
// All packages report misuse with the sentinel kinds defined here
// (ErrInvalidArgument, ErrOutOfRange, ErrSizeMismatch, ErrValueOutOfRange).
// Use errors.Is to test for a kind and errors.As to reach *IndexError or
// *SizeError for details.
//
// # Thread Safety
//
// No type in this module synchronizes internally. A fully built graph may be
// traversed from many goroutines at once (see traverse.MultiSourceBFS);
// AddEdge must be serialized against all readers by the caller.
package bitgraph
