// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow
// when sizes come from untrusted input (snapshot headers, graph files).
// Failures wrap bitgraph.ErrInvalidArgument.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
