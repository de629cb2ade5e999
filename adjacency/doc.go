// Package adjacency provides undirected graph representations.
//
// Bitset is the packed adjacency matrix: one bit per vertex pair, rows of
// ceil(n/64) words stored back to back in a single slice. Neighbor
// enumeration scans each word for its lowest set bit, so the cost of a row
// is proportional to its word count plus its degree.
//
// List and Roaring implement the same Graph interface for comparison:
//
//	g, err := adjacency.Build(adjacency.KindBitset, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
//	if err != nil {
//		return err
//	}
//	for v := range g.Neighbors(1) {
//		fmt.Println(v) // 0, 2
//	}
//
// A Bitset can be persisted with WriteSnapshot and restored with
// ReadSnapshot; the payload is optionally LZ4 or ZSTD compressed.
package adjacency
