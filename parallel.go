package kdtree2d

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Query is a single nearest-neighbor request.
type Query struct {
	Location Location
	Exclude  int
}

// Result is the answer to a Query. Found is false when the index holds no
// point with an ObjectID other than the excluded one.
type Result struct {
	Neighbor
	Found bool
}

// NearestBatch answers queries against idx using cfg.Workers goroutines.
// Each worker handles a contiguous range of queries and writes only its
// own slots of the result, so no synchronization is needed beyond the
// final wait. The output is identical to calling idx.Nearest in a loop.
//
// Workers check ctx between queries; if it is cancelled the partial
// results are discarded and ctx.Err() is returned.
func NearestBatch(ctx context.Context, idx Index, queries []Query, cfg Config) ([]Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := len(queries)
	results := make([]Result, n)
	numWorkers := min(cfg.Workers, n)

	cfg.Logger.Debug("nearest batch",
		zap.Int("queries", n),
		zap.Int("points", idx.NumPoints()),
		zap.Int("workers", numWorkers),
	)

	if numWorkers <= 1 {
		for i, q := range queries {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			nb, ok := idx.Nearest(q.Location, q.Exclude)
			results[i] = Result{Neighbor: nb, Found: ok}
		}
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	perWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * perWorker
		end := min(start+perWorker, n)
		if start >= n {
			break
		}

		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				nb, ok := idx.Nearest(queries[i].Location, queries[i].Exclude)
				results[i] = Result{Neighbor: nb, Found: ok}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// NearestAll finds, for every point stored in t, the closest other object:
// each point is queried from its own location with its own ObjectID
// excluded. Results are keyed by the queried point, in pre-order.
func NearestAll(ctx context.Context, t *KDTree, cfg Config) ([]Point, []Result, error) {
	points := t.Points()
	queries := make([]Query, len(points))
	for i, p := range points {
		queries[i] = Query{Location: p.Location(), Exclude: p.ObjectID}
	}
	results, err := NearestBatch(ctx, t, queries, cfg)
	if err != nil {
		return nil, nil, err
	}
	return points, results, nil
}
