package scenario

import (
	"context"
	"errors"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/lightseek/internal/config"
	"github.com/zeusync/lightseek/internal/core/df"
	"github.com/zeusync/lightseek/internal/core/observability/log"
	"github.com/zeusync/lightseek/internal/core/observability/metrics"
	"github.com/zeusync/lightseek/internal/core/seeker"
	"github.com/zeusync/lightseek/internal/core/systems/physics"
)

// SweepRun is the outcome of seeking from one start position. Err is set
// only when the loop gave up without converging.
type SweepRun struct {
	Start  physics.Vec3
	Result seeker.Result
	Err    error
}

// Summary aggregates a sweep.
type Summary struct {
	Runs           int
	Converged      int
	MeanIterations float64
	MaxIterations  int
	WorstMiss      float64 // largest planar distance from the source after a run
}

type sweepOptions struct {
	metrics metrics.Collector
	finders *df.Registry
}

type SweepOption func(*sweepOptions)

// WithMetrics instruments every run of the sweep into c.
func WithMetrics(c metrics.Collector) SweepOption {
	return func(o *sweepOptions) { o.metrics = c }
}

// WithFinders resolves finder kinds through reg instead of the built-ins.
func WithFinders(reg *df.Registry) SweepOption {
	return func(o *sweepOptions) { o.finders = reg }
}

// Starts spreads count start positions evenly on a circle of the given
// radius around center, at the mount's height.
func Starts(center physics.Vec3, radius float64, count int) []physics.Vec3 {
	if count < 1 {
		return nil
	}
	out := make([]physics.Vec3, count)
	spacing := 360 / float64(count)
	for i := range out {
		sin, cos := math.Sincos(physics.Radians(float64(i) * spacing))
		out[i] = physics.V3(center.X+radius*cos, center.Y+radius*sin, center.Z)
	}
	return out
}

// Sweep runs one independent loop per start position, at most limit at a
// time. Each run gets its own mount; only the logger is shared. Runs that
// do not converge are reported in their SweepRun. Any other failure cancels
// the sweep.
func Sweep(ctx context.Context, base config.Scenario, starts []physics.Vec3, limit int, logger log.Log, opts ...SweepOption) ([]SweepRun, error) {
	if logger == nil {
		logger = log.Nop()
	}
	var o sweepOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.finders == nil {
		o.finders = df.NewRegistry()
	}
	runs := make([]SweepRun, len(starts))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, start := range starts {
		i, start := i, start
		cfg := base
		cfg.Mount.Location = []float64{start.X, start.Y, start.Z}
		g.Go(func() error {
			loop, err := Build(cfg, o.finders, logger.With(log.Int("run", i)))
			if err != nil {
				return err
			}
			if o.metrics != nil {
				loop.Observe(seeker.Instrument(o.metrics))
			}
			res, err := loop.Run(gctx)
			runs[i] = SweepRun{Start: start, Result: res}
			if errors.Is(err, seeker.ErrNotConverged) {
				runs[i].Err = err
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return runs, nil
}

// Summarize measures each run's planar miss against target.
func Summarize(runs []SweepRun, target physics.Vec3) Summary {
	var s Summary
	total := 0
	for _, r := range runs {
		s.Runs++
		if r.Result.Converged {
			s.Converged++
		}
		total += r.Result.Iterations
		s.MaxIterations = max(s.MaxIterations, r.Result.Iterations)
		s.WorstMiss = max(s.WorstMiss, r.Result.Position.Sub(target).PlanarLength())
	}
	if s.Runs > 0 {
		s.MeanIterations = float64(total) / float64(s.Runs)
	}
	return s
}
