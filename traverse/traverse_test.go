package traverse

import (
	"slices"
	"testing"

	"github.com/hupe1980/bitgraph"
	"github.com/hupe1980/bitgraph/adjacency"
	"github.com/hupe1980/bitgraph/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t testing.TB, kind adjacency.Kind, n int, edges []testutil.Edge) adjacency.Graph {
	t.Helper()
	g, err := adjacency.Build(kind, n, edges)
	require.NoError(t, err)
	return g
}

func TestBFS_Path(t *testing.T) {
	for _, k := range adjacency.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			g := build(t, k, 4, testutil.PathEdges(4))

			res, err := BFS(g, 0)
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1, 2, 3}, res.Values)
			assert.Equal(t, 4, res.Reached)
			assert.Equal(t, 1, res.PeakFrontier)
		})
	}
}

func TestBFS_Disconnected(t *testing.T) {
	for _, k := range adjacency.Kinds() {
		g := build(t, k, 2, nil)

		res, err := BFS(g, 0)
		require.NoError(t, err)
		assert.Equal(t, []int{0, -1}, res.Values, k.String())
		assert.Equal(t, 1, res.Reached)
	}
}

func TestBFS_SourceOutOfRange(t *testing.T) {
	g := build(t, adjacency.KindBitset, 3, nil)
	for _, s := range []int{-1, 3} {
		_, err := BFS(g, s)
		assert.ErrorIs(t, err, bitgraph.ErrOutOfRange)
		_, err = DFS(g, s)
		assert.ErrorIs(t, err, bitgraph.ErrOutOfRange)
	}
}

func TestBFS_MatchesReference(t *testing.T) {
	rng := testutil.NewRNG(42)
	for _, tc := range []struct{ n, m int }{
		{1, 0},
		{50, 40},
		{200, 600},
		{257, 3000},
	} {
		edges := rng.RandomEdges(tc.n, tc.m)
		source := rng.Intn(tc.n)
		want := testutil.ReferenceBFS(tc.n, edges, source)

		for _, k := range adjacency.Kinds() {
			g := build(t, k, tc.n, edges)
			res, err := BFS(g, source)
			require.NoError(t, err)
			require.Equal(t, want, res.Values, "%s n=%d", k, tc.n)
		}
	}
}

func TestBFS_DistanceProperties(t *testing.T) {
	rng := testutil.NewRNG(9)
	const n = 400
	edges := rng.RandomEdges(n, 900)
	g := build(t, adjacency.KindBitset, n, edges)

	res, err := BFS(g, 0)
	require.NoError(t, err)
	dist := res.Values
	require.Equal(t, 0, dist[0])

	reached := 0
	for v := 0; v < n; v++ {
		if dist[v] < 0 {
			// No neighbor of an unreached vertex is reached.
			for u := range g.Neighbors(v) {
				require.Equal(t, -1, dist[u])
			}
			continue
		}
		reached++
		if v == 0 {
			continue
		}
		hasParent := false
		for u := range g.Neighbors(v) {
			require.LessOrEqual(t, dist[u], dist[v]+1)
			if dist[u] == dist[v]-1 {
				hasParent = true
			}
		}
		require.True(t, hasParent, "vertex %d at distance %d has no parent", v, dist[v])
	}
	assert.Equal(t, reached, res.Reached)
}

func TestDFS_Path(t *testing.T) {
	for _, k := range adjacency.Kinds() {
		for _, p := range []PushPolicy{PushAll, PushUnique} {
			g := build(t, k, 4, testutil.PathEdges(4))

			res, err := DFS(g, 0, WithPushPolicy(p))
			require.NoError(t, err)
			assert.Equal(t, []int{1, 2, 3, 4}, res.Values, "%s/%s", k, p)
			assert.Equal(t, 4, res.Reached)
		}
	}
}

func TestDFS_Disconnected(t *testing.T) {
	g := build(t, adjacency.KindBitset, 2, nil)
	res, err := DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, -1}, res.Values)
	assert.Equal(t, 1, res.Reached)
}

func TestDFS_BitsetOrder(t *testing.T) {
	// Star around 0 plus 1-2. Neighbors enumerate ascending, so the highest
	// id is popped first.
	g := build(t, adjacency.KindBitset, 4, []testutil.Edge{{0, 1}, {0, 2}, {0, 3}, {1, 2}})

	res, err := DFS(g, 0)
	require.NoError(t, err)
	// 0 → 3, then 2 → 1.
	assert.Equal(t, []int{1, 4, 3, 2}, res.Values)
	// After visiting 0 the stack holds 1, 2, 3; visiting 2 pushes 1 again.
	assert.Equal(t, 3, res.PeakFrontier)
}

func TestDFS_ListInsertionOrder(t *testing.T) {
	g := build(t, adjacency.KindList, 4, []testutil.Edge{{0, 3}, {0, 1}, {0, 2}})

	res, err := DFS(g, 0)
	require.NoError(t, err)
	// Row 0 is [3, 1, 2]; 2 is on top, then 1, then 3.
	assert.Equal(t, []int{1, 3, 2, 4}, res.Values)
}

func TestDFS_RankPermutation(t *testing.T) {
	rng := testutil.NewRNG(5)
	const n = 300
	edges := rng.RandomEdges(n, 700)
	reach := testutil.ReferenceBFS(n, edges, 0)

	for _, k := range adjacency.Kinds() {
		for _, p := range []PushPolicy{PushAll, PushUnique} {
			g := build(t, k, n, edges)
			res, err := DFS(g, 0, WithPushPolicy(p))
			require.NoError(t, err)

			assert.Equal(t, 1, res.Values[0])
			var ranks []int
			for v, r := range res.Values {
				// DFS reaches exactly the BFS-reachable set.
				require.Equal(t, reach[v] >= 0, r > 0, "%s/%s vertex %d", k, p, v)
				if r > 0 {
					ranks = append(ranks, r)
				}
			}
			slices.Sort(ranks)
			for i, r := range ranks {
				require.Equal(t, i+1, r)
			}
			assert.Equal(t, len(ranks), res.Reached)
			if p == PushUnique {
				assert.LessOrEqual(t, res.PeakFrontier, n)
			}
		}
	}
}

func TestDFS_PushUniqueBoundsStack(t *testing.T) {
	const n = 64
	g := build(t, adjacency.KindBitset, n, testutil.CompleteEdges(n))

	all, err := DFS(g, 0)
	require.NoError(t, err)
	unique, err := DFS(g, 0, WithPushPolicy(PushUnique))
	require.NoError(t, err)

	assert.Greater(t, all.PeakFrontier, n)
	assert.Equal(t, n-1, unique.PeakFrontier)
	assert.Equal(t, n, unique.Reached)
}

func TestTraverser_Reuse(t *testing.T) {
	tr := New(WithCapacity(8))
	small := build(t, adjacency.KindBitset, 4, testutil.PathEdges(4))
	large := build(t, adjacency.KindRoaring, 200, testutil.PathEdges(200))

	for i := 0; i < 3; i++ {
		res, err := tr.DFS(small, 0)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, res.Values)

		res, err = tr.DFS(large, 199)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Values[199])
		assert.Equal(t, 200, res.Values[0])

		res, err = tr.Run(KernelBFS, large, 0)
		require.NoError(t, err)
		assert.Equal(t, 199, res.Values[199])
	}

	_, err := tr.Run(Kernel("sssp"), small, 0)
	assert.ErrorIs(t, err, bitgraph.ErrInvalidArgument)
}

func TestParse(t *testing.T) {
	k, err := ParseKernel(" DFS")
	require.NoError(t, err)
	assert.Equal(t, KernelDFS, k)
	_, err = ParseKernel("astar")
	assert.ErrorIs(t, err, bitgraph.ErrInvalidArgument)

	p, err := ParsePushPolicy("unique")
	require.NoError(t, err)
	assert.Equal(t, PushUnique, p)
	assert.Equal(t, "unique", p.String())
	_, err = ParsePushPolicy("some")
	assert.ErrorIs(t, err, bitgraph.ErrInvalidArgument)
}

func BenchmarkBFS(b *testing.B) {
	rng := testutil.NewRNG(1)
	const n = 2048
	edges := rng.RandomEdges(n, 16*n)

	for _, k := range adjacency.Kinds() {
		g := build(b, k, n, edges)
		tr := New(WithCapacity(n))
		b.Run(k.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = tr.BFS(g, 0)
			}
		})
	}
}

func BenchmarkDFS(b *testing.B) {
	rng := testutil.NewRNG(1)
	const n = 2048
	edges := rng.RandomEdges(n, 16*n)

	for _, k := range adjacency.Kinds() {
		g := build(b, k, n, edges)
		tr := New(WithCapacity(n))
		b.Run(k.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = tr.DFS(g, 0)
			}
		})
	}
}
