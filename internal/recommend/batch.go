package recommend

import (
	"context"
	"runtime"

	"github.com/abhisek/coursefit/internal/catalog"
	"github.com/abhisek/coursefit/internal/profile"
	"golang.org/x/sync/errgroup"
)

// RankAll ranks each student against the same courses, running up to
// workers rankings at once. Results are returned in input order. A
// workers value below 1 uses one per CPU.
func RankAll(ctx context.Context, students []profile.Student, courses []catalog.Course, workers int) ([][]Result, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	out := make([][]Result, len(students))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, s := range students {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = Rank(s.Snapshot(), courses)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
