// Package packed provides a fixed-width bit-packed array of small unsigned
// values.
//
// The element width is chosen so that any index of the array can be stored
// as a value, which makes Array a compact container for per-vertex labels
// such as BFS distances, DFS ranks or colors:
//
//	a, _ := packed.New(10) // 4 bits per element, 16 per word
//	_ = a.Set(3, 15)
//	v, _ := a.Get(3) // 15
//	_ = a.Set(3, 20)
//	v, _ = a.Get(3) // 4, only the low 4 bits are kept
//
// Use WithStrict to reject values wider than the element width instead.
package packed
