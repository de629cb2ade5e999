// Package testutil provides testing utilities for bitgraph.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG, edge-list generators and a reference BFS over
// plain slices used as ground truth for the bit-packed kernels.
//
// # Random Graphs
//
//	rng := testutil.NewRNG(seed)
//	edges := rng.RandomEdges(500, 2000)
//
// # Ground Truth
//
//	want := testutil.ReferenceBFS(500, edges, 0)
package testutil
