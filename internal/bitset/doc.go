// Package bitset provides word-level helpers for fixed-size bitsets.
//
// Architecture:
//   - Plain []uint64 storage, bit i lives in word i/64 at position i%64
//   - Lowest-set-bit scanning via math/bits.TrailingZeros64
//   - Little-endian word encoding for snapshots
//
// Used internally for:
//   - Adjacency matrix rows (adjacency.Bitset)
//   - Visited tracking in traversal kernels (internal/visited)
package bitset
