package seeker

import (
	"math"

	"github.com/zeusync/lightseek/internal/core/observability/metrics"
	"github.com/zeusync/lightseek/internal/core/systems/physics"
)

// Metric names recorded by Instrument.
const (
	MetricSteps      = "seek_steps_total"
	MetricSkipped    = "seek_skipped_total"
	MetricConverged  = "seek_converged_total"
	MetricReversals  = "seek_reversals_total"
	MetricDistance   = "seek_distance_cm_total"
	MetricTurn       = "seek_turn_degrees_total"
	MetricStepLength = "seek_step_length_cm"
)

// Instrument returns an observer that records each step of one loop into c.
// Several loops may share a collector but each needs its own observer.
func Instrument(c metrics.Collector) Observer {
	var (
		steps      = c.Counter(MetricSteps)
		skipped    = c.Counter(MetricSkipped)
		converged  = c.Counter(MetricConverged)
		reversals  = c.Counter(MetricReversals)
		distance   = c.Counter(MetricDistance)
		turned     = c.Counter(MetricTurn)
		stepLength = c.Gauge(MetricStepLength)
	)
	var last physics.Vec3
	return func(s StepResult) {
		steps.Inc()
		stepLength.Set(s.StepLength)
		switch {
		case !s.Estimate.Valid:
			skipped.Inc()
		case s.Converged:
			converged.Inc()
		default:
			distance.Add(s.Move.PlanarLength())
			turned.Add(math.Abs(s.Turn))
			if s.Move.Dot(last) < 0 {
				reversals.Inc()
			}
			last = s.Move
		}
	}
}
