package model

import (
	"fmt"

	"github.com/zeusync/lightseek/internal/core/systems/physics"
)

// Range is a closed [Min, Max] scale used by a transfer function.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Width() float64 { return r.Max - r.Min }

// LightSensor models a single photosensitive element and its A/D stage.
type LightSensor struct {
	location physics.Vec3
	input    Range
	output   Range
}

func NewLightSensor(location physics.Vec3, input, output Range) *LightSensor {
	return &LightSensor{location: location, input: input, output: output}
}

// MoveTo overwrites the sensor's absolute position.
func (s *LightSensor) MoveTo(location physics.Vec3) { s.location = location }

func (s *LightSensor) Position() physics.Vec3 { return s.location }

func (s *LightSensor) InputRange() Range  { return s.input }
func (s *LightSensor) OutputRange() Range { return s.output }

// Reading maps an incident intensity from the input range onto the output
// range with an affine transform.
func (s *LightSensor) Reading(incident float64) (float64, error) {
	inWidth := s.input.Width()
	if inWidth == 0 {
		return 0, fmt.Errorf("%w: [%v, %v]", ErrZeroInputRange, s.input.Min, s.input.Max)
	}
	scale := s.output.Width() / inWidth
	return (incident-s.input.Min)*scale + s.output.Min, nil
}
