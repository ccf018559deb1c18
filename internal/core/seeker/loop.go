package seeker

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/zeusync/lightseek/internal/core/df"
	"github.com/zeusync/lightseek/internal/core/model"
	"github.com/zeusync/lightseek/internal/core/observability/log"
	"github.com/zeusync/lightseek/internal/core/systems/physics"
)

// Turns smaller than this many degrees are not applied, so heading noise
// from atan2 does not leak into sensor positions.
const angleEpsilon = 1e-9

// StepResult describes one sense-estimate-move iteration.
type StepResult struct {
	Iteration  int
	Position   physics.Vec3 // mount position before the move
	Rotation   float64      // mount orientation before the move
	Samples    []df.Sample
	Estimate   df.Estimate
	Move       physics.Vec3
	Turn       float64
	StepLength float64
	Converged  bool
}

// Result summarises a run.
type Result struct {
	RunID      uuid.UUID
	Finder     string
	Iterations int
	Skipped    int
	Converged  bool
	Position   physics.Vec3
	Rotation   float64
}

// Observer is called after every step, in order.
type Observer func(StepResult)

// Loop drives a sensor mount towards a light source. It owns the mount for
// the duration of the run and is not safe for concurrent use.
type Loop struct {
	id     uuid.UUID
	source *model.LightSource
	mount  *model.SensorMount
	finder df.Finder
	cfg    Config
	log    log.Log

	step      float64
	lastMove  physics.Vec3
	iteration int
	skipped   int
	observers []Observer
}

func New(source *model.LightSource, mount *model.SensorMount, finder df.Finder, cfg Config, logger log.Log) (*Loop, error) {
	if source == nil || mount == nil || mount.Len() == 0 || finder == nil {
		return nil, ErrMissingPart
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.StepPolicy, _ = ParseStepPolicy(string(cfg.StepPolicy))
	if logger == nil {
		logger = log.Nop()
	}

	id := uuid.New()
	return &Loop{
		id:     id,
		source: source,
		mount:  mount,
		finder: finder,
		cfg:    cfg,
		log:    logger.With(log.String("run_id", id.String()), log.String("finder", finder.Name())),
		step:   cfg.StepLength,
	}, nil
}

func (l *Loop) ID() uuid.UUID              { return l.id }
func (l *Loop) Config() Config             { return l.cfg }
func (l *Loop) Mount() *model.SensorMount  { return l.mount }
func (l *Loop) Source() *model.LightSource { return l.source }
func (l *Loop) Finder() df.Finder          { return l.finder }
func (l *Loop) Logger() log.Log            { return l.log }
func (l *Loop) Observe(o Observer)         { l.observers = append(l.observers, o) }

// Sample reads every sensor on the mount. Locations are relative to the
// mount and flattened onto the plane.
func (l *Loop) Sample() ([]df.Sample, error) {
	origin := l.mount.Position()
	sensors := l.mount.Sensors()
	samples := make([]df.Sample, 0, len(sensors))
	for i, s := range sensors {
		abs := s.Position()
		incident, err := l.source.IntensityAt(abs)
		if err != nil {
			return nil, fmt.Errorf("sensor %d: %w", i, err)
		}
		reading, err := s.Reading(incident)
		if err != nil {
			return nil, fmt.Errorf("sensor %d: %w", i, err)
		}
		samples = append(samples, df.Sample{
			Amplitude: reading,
			Location:  abs.Sub(origin).Planar(),
		})
	}
	return samples, nil
}

// Step runs a single iteration. A step with no usable estimate leaves the
// mount where it is.
func (l *Loop) Step() (StepResult, error) {
	l.iteration++
	res := StepResult{
		Iteration: l.iteration,
		Position:  l.mount.Position(),
		Rotation:  l.mount.Rotation(),
	}

	samples, err := l.Sample()
	if err != nil {
		return res, err
	}
	res.Samples = samples

	est, err := l.finder.FindDirection(samples)
	if err != nil {
		return res, err
	}
	res.Estimate = est

	if !est.Valid {
		l.skipped++
		res.StepLength = l.step
		l.log.Warn("no direction estimate, holding position",
			log.Int("iteration", res.Iteration),
			log.Float64("x", res.Position.X),
			log.Float64("y", res.Position.Y))
		l.notify(res)
		return res, nil
	}

	move, converged := l.boundedMove(est.Direction.Planar())
	res.Move = move
	res.StepLength = l.step
	res.Converged = converged
	if converged {
		l.notify(res)
		return res, nil
	}

	heading, err := l.mount.Heading()
	if err != nil {
		return res, err
	}
	turn := physics.NormalizeAngle(heading - move.Heading())
	if math.Abs(turn) < angleEpsilon {
		turn = 0
	}
	res.Turn = turn

	if err := l.mount.MoveTo(res.Position.Add(move), res.Rotation+turn); err != nil {
		return res, err
	}
	l.lastMove = move

	l.log.Debug("step",
		log.Int("iteration", res.Iteration),
		log.Float64("x", res.Position.X),
		log.Float64("y", res.Position.Y),
		log.Float64("move_x", move.X),
		log.Float64("move_y", move.Y),
		log.Float64("turn", turn),
		log.Float64("step", l.step))
	l.notify(res)
	return res, nil
}

// boundedMove clips raw to the current step length along its own heading.
// A raw direction, or a step length, within tolerance of zero converges.
func (l *Loop) boundedMove(raw physics.Vec3) (physics.Vec3, bool) {
	if raw.PlanarLength() <= l.cfg.Tolerance {
		return physics.Vec3{}, true
	}
	if l.cfg.StepPolicy == StepAdaptive && raw.Dot(l.lastMove) < 0 {
		l.step *= l.cfg.StepDecay
	}
	if l.step <= l.cfg.Tolerance {
		return physics.Vec3{}, true
	}
	return raw.ClampLength(l.step), false
}

// Run steps until the move vanishes or the iteration budget is spent. The
// context is checked between iterations.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	l.log.Info("seek started",
		log.Int("max_iterations", l.cfg.MaxIterations),
		log.Float64("step_length", l.cfg.StepLength),
		log.String("step_policy", string(l.cfg.StepPolicy)))

	for l.iteration < l.cfg.MaxIterations {
		if err := ctx.Err(); err != nil {
			return l.result(false), err
		}
		res, err := l.Step()
		if err != nil {
			l.log.Error("seek aborted", log.Int("iteration", res.Iteration), log.Error(err))
			return l.result(false), fmt.Errorf("iteration %d: %w", res.Iteration, err)
		}
		if res.Converged {
			out := l.result(true)
			l.log.Info("seek converged",
				log.Int("iterations", out.Iterations),
				log.Float64("x", out.Position.X),
				log.Float64("y", out.Position.Y),
				log.Float64("rotation", out.Rotation))
			return out, nil
		}
	}

	out := l.result(false)
	l.log.Warn("seek did not converge",
		log.Int("iterations", out.Iterations),
		log.Float64("x", out.Position.X),
		log.Float64("y", out.Position.Y))
	return out, fmt.Errorf("%w after %d iterations", ErrNotConverged, out.Iterations)
}

func (l *Loop) result(converged bool) Result {
	return Result{
		RunID:      l.id,
		Finder:     l.finder.Name(),
		Iterations: l.iteration,
		Skipped:    l.skipped,
		Converged:  converged,
		Position:   l.mount.Position(),
		Rotation:   l.mount.Rotation(),
	}
}

func (l *Loop) notify(res StepResult) {
	for _, o := range l.observers {
		o(res)
	}
}
