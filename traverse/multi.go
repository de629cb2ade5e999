package traverse

import (
	"context"
	"fmt"
	"runtime"

	"github.com/hupe1980/bitgraph"
	"github.com/hupe1980/bitgraph/adjacency"
	"golang.org/x/sync/errgroup"
)

// MultiSourceBFS runs one BFS per source over the shared, read-only graph g.
// At most workers traversals run at once; workers <= 0 uses GOMAXPROCS.
//
// Results are returned in source order. Cancelling ctx stops scheduling
// further sources and returns ctx's error; traversals already running are
// allowed to finish.
func MultiSourceBFS(ctx context.Context, g adjacency.Graph, sources []int, workers int) ([]*Result, error) {
	n := g.VertexCount()
	for _, s := range sources {
		if err := bitgraph.CheckIndex("traverse.MultiSourceBFS", s, n); err != nil {
			return nil, err
		}
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, len(sources))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, s := range sources {
		if err := egCtx.Err(); err != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			t := getTraverser()
			res, err := t.BFS(g, s)
			putTraverser(t, n)
			if err != nil {
				return fmt.Errorf("source %d: %w", s, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
