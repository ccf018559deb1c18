package model

import (
	"fmt"
	"math"

	"github.com/zeusync/lightseek/internal/core/systems/physics"
)

// LightSource is an omni-directional emitter fixed at one location.
// Locations are in centimetres.
type LightSource struct {
	location  physics.Vec3
	intensity float64
}

func NewLightSource(location physics.Vec3, intensity float64) (*LightSource, error) {
	if math.IsNaN(intensity) || math.IsInf(intensity, 0) || intensity <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIntensity, intensity)
	}
	if !location.IsFinite() {
		return nil, fmt.Errorf("light source location %+v: %w", location, ErrNonFinite)
	}
	return &LightSource{location: location, intensity: intensity}, nil
}

func (s *LightSource) Position() physics.Vec3   { return s.location }
func (s *LightSource) OutputIntensity() float64 { return s.intensity }

// IntensityAt returns the incident intensity at p following the inverse
// square law. Distances are converted from centimetres to metres first.
func (s *LightSource) IntensityAt(p physics.Vec3) (float64, error) {
	d := s.location.Sub(p)
	dx, dy, dz := d.X/100, d.Y/100, d.Z/100
	distSq := dx*dx + dy*dy + dz*dz
	if distSq == 0 {
		return 0, fmt.Errorf("%w at %+v", ErrCoincident, p)
	}
	return s.intensity / (4 * math.Pi * distSq), nil
}
