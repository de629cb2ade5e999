package bitgraph_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/hupe1980/bitgraph/adjacency"
	"github.com/hupe1980/bitgraph/coloring"
	"github.com/hupe1980/bitgraph/dimacs"
	"github.com/hupe1980/bitgraph/packed"
	"github.com/hupe1980/bitgraph/traverse"
)

// Example_bfs builds a packed adjacency matrix and computes hop distances.
func Example_bfs() {
	g, err := adjacency.NewBitset(4)
	if err != nil {
		log.Fatal(err)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			log.Fatal(err)
		}
	}

	res, err := traverse.BFS(g, 0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Values)
	// Output: [0 1 2 3]
}

// Example_dfs shows discovery ranks; -1 marks an unreachable vertex.
func Example_dfs() {
	g, err := adjacency.Build(adjacency.KindList, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	if err != nil {
		log.Fatal(err)
	}

	res, err := traverse.DFS(g, 0, traverse.WithPushPolicy(traverse.PushUnique))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Values, res.Reached)
	// Output: [1 2 3 4 -1] 4
}

// Example_packed stores values in the fewest bits that hold any index.
func Example_packed() {
	a, err := packed.New(10)
	if err != nil {
		log.Fatal(err)
	}
	_ = a.Set(3, 15)
	v1, _ := a.Get(3)
	_ = a.Set(3, 20) // masked to the low 4 bits
	v2, _ := a.Get(3)

	fmt.Println(a.BitWidth(), v1, v2)
	// Output: 4 15 4
}

// Example_dimacs reads a DIMACS file and validates a two-coloring of it.
func Example_dimacs() {
	const src = `c square
p edge 4 4
e 1 2
e 2 3
e 3 4
e 4 1
`
	f, err := dimacs.Read(strings.NewReader(src))
	if err != nil {
		log.Fatal(err)
	}
	g, err := f.Build(adjacency.KindRoaring)
	if err != nil {
		log.Fatal(err)
	}

	colors, err := coloring.FromInts([]int{0, 1, 0, 1})
	if err != nil {
		log.Fatal(err)
	}
	rep, err := coloring.Validate(g, colors)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(rep.Proper, rep.Equitable, rep.Valid(2))
	// Output: true true true
}

// Example_multiSource runs independent traversals in parallel.
func Example_multiSource() {
	g, err := adjacency.Build(adjacency.KindBitset, 3, [][2]int{{0, 1}, {1, 2}})
	if err != nil {
		log.Fatal(err)
	}

	results, err := traverse.MultiSourceBFS(context.Background(), g, []int{0, 2}, 2)
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range results {
		fmt.Println(r.Values)
	}
	// Output:
	// [0 1 2]
	// [2 1 0]
}
