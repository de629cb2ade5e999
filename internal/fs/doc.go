// Package fs provides the filesystem abstraction used to publish snapshots,
// per-vertex outputs and summaries.
//
// Files are written with WriteFileAtomic (temporary file, sync, rename), so
// an interrupted run never leaves a truncated result behind.
//
// Tests can inject [FaultyFS] to simulate failures:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("output_bfs", fs.Fault{FailAfterBytes: 16})
//	// inject ffs into component under test
package fs
