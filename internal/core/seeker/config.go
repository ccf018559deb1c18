package seeker

import (
	"fmt"
	"math"
	"strings"
)

// StepPolicy selects how the step length evolves between iterations.
type StepPolicy string

const (
	// StepFixed keeps the same step length for the whole run.
	StepFixed StepPolicy = "fixed"
	// StepAdaptive shrinks the step each time the platform reverses, so it
	// settles on the source instead of oscillating around it.
	StepAdaptive StepPolicy = "adaptive"
)

func ParseStepPolicy(s string) (StepPolicy, error) {
	switch StepPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StepFixed:
		return StepFixed, nil
	case StepAdaptive, "scaled":
		return StepAdaptive, nil
	default:
		return "", fmt.Errorf("%w: unknown step policy %q", ErrInvalidConfig, s)
	}
}

// Config bounds one seek run. Lengths are centimetres.
type Config struct {
	MaxIterations int
	StepLength    float64
	Tolerance     float64
	StepPolicy    StepPolicy
	StepDecay     float64
}

func DefaultConfig() Config {
	return Config{
		MaxIterations: 100,
		StepLength:    5,
		Tolerance:     1e-6,
		StepPolicy:    StepFixed,
		StepDecay:     0.5,
	}
}

func (c Config) Validate() error {
	switch {
	case c.MaxIterations < 1:
		return fmt.Errorf("%w: max iterations %d", ErrInvalidConfig, c.MaxIterations)
	case !positive(c.StepLength):
		return fmt.Errorf("%w: step length %v", ErrInvalidConfig, c.StepLength)
	case c.Tolerance < 0 || math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0):
		return fmt.Errorf("%w: tolerance %v", ErrInvalidConfig, c.Tolerance)
	}
	policy, err := ParseStepPolicy(string(c.StepPolicy))
	if err != nil {
		return err
	}
	if policy == StepAdaptive && !(c.StepDecay > 0 && c.StepDecay < 1) {
		return fmt.Errorf("%w: step decay %v must be in (0, 1)", ErrInvalidConfig, c.StepDecay)
	}
	return nil
}

func positive(f float64) bool { return f > 0 && !math.IsInf(f, 0) }
