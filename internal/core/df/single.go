package df

import (
	"math"

	"github.com/zeusync/lightseek/internal/core/systems/physics"
)

var _ Finder = (*SingleElement)(nil)

// SingleElement picks the location of the single strongest sample. It does
// not interpolate between elements.
type SingleElement struct {
	tolerance float64
}

type SingleOption func(*SingleElement)

// WithTolerance treats amplitudes whose spread is within tol times the
// largest magnitude as identical. The default of 0 demands exact equality.
func WithTolerance(tol float64) SingleOption {
	return func(s *SingleElement) {
		if tol > 0 {
			s.tolerance = tol
		}
	}
}

func NewSingleElement(opts ...SingleOption) *SingleElement {
	s := &SingleElement{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SingleElement) Name() string { return KindSingle }

func (s *SingleElement) Tolerance() float64 { return s.tolerance }

// FindDirection returns the zero vector when every amplitude is identical,
// including all zero. Otherwise the first invalid amplitude aborts with
// NoEstimate, and the location of the strictly greatest amplitude wins, ties
// going to the earliest sample.
func (s *SingleElement) FindDirection(samples []Sample) (Estimate, error) {
	if len(samples) == 0 {
		return NoEstimate, ErrNoSamples
	}

	if s.identical(samples) {
		return direction(physics.Vec3{}), nil
	}

	best := 0
	for i, sample := range samples {
		if !sample.Valid() {
			return NoEstimate, nil
		}
		if sample.Amplitude > samples[best].Amplitude {
			best = i
		}
	}
	return direction(samples[best].Location), nil
}

func (s *SingleElement) identical(samples []Sample) bool {
	if allEqual(samples) {
		return true
	}
	if s.tolerance == 0 {
		return false
	}

	first := samples[0].Amplitude
	lo, hi := first, first
	for _, sample := range samples {
		a := sample.Amplitude
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return false
		}
		lo = math.Min(lo, a)
		hi = math.Max(hi, a)
	}
	return hi-lo <= s.tolerance*math.Max(math.Abs(lo), math.Abs(hi))
}

func allEqual(samples []Sample) bool {
	first := samples[0].Amplitude
	for _, sample := range samples[1:] {
		if sample.Amplitude != first {
			return false
		}
	}
	return true
}
