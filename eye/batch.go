package eye

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TraceAll traces every ray through the model in parallel and returns the results in the
// same order as rays. workers <= 0 uses one goroutine per CPU.
//
// Individual ray failures are reported in their TraceResult. The only error returned is
// the context's, when ctx is cancelled before every ray is traced; a cancellation
// after the last trace finishes still returns the results.
func (m *EyeModel) TraceAll(ctx context.Context, rays []Ray, pupil []PupilLine, workers int) ([]TraceResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]TraceResult, len(rays))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	// Set when rays are left unscheduled
	var skipped error
	for i, ray := range rays {
		i, ray := i, ray // per-iteration copies; go 1.21 shares loop variables
		if skipped = gctx.Err(); skipped != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = m.Trace(ray, pupil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if skipped != nil {
		return nil, skipped
	}
	return results, nil
}
