// Package traverse implements breadth-first and depth-first search kernels
// over any adjacency.Graph.
//
// BFS returns hop distances from a source; DFS returns 1-based preorder
// discovery ranks. Both return -1 for vertices the source cannot reach.
//
//	res, err := traverse.BFS(g, 0)
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Values, res.Reached)
//
// A Traverser reuses its queue, stack and visited set across calls, which
// matters when the same kernel is timed repeatedly. MultiSourceBFS runs
// independent traversals over one graph in parallel.
package traverse
