package model

import (
	"fmt"
	"math"

	"github.com/zeusync/lightseek/internal/core/systems/physics"
)

// SensorMount is a rigid frame carrying an ordered set of sensors. It only
// rotates about the vertical axis, which is enough for a cart on a floor.
// Sensor 0 is the front of the platform.
//
// A mount is not safe for concurrent use.
type SensorMount struct {
	location physics.Vec3
	rotation float64
	sensors  []*LightSensor
}

// NewSensorMount returns an empty mount at the origin facing rotation 0.
func NewSensorMount() *SensorMount {
	return &SensorMount{}
}

// Attach appends sensors in order. Their current positions are taken as
// absolute coordinates in the mount's present frame.
func (m *SensorMount) Attach(sensors ...*LightSensor) {
	m.sensors = append(m.sensors, sensors...)
}

func (m *SensorMount) Len() int { return len(m.sensors) }

func (m *SensorMount) Sensor(index int) (*LightSensor, error) {
	if index < 0 || index >= len(m.sensors) {
		return nil, fmt.Errorf("%w: %d of %d", ErrSensorIndex, index, len(m.sensors))
	}
	return m.sensors[index], nil
}

// Sensors returns the attached sensors in mount order.
func (m *SensorMount) Sensors() []*LightSensor {
	out := make([]*LightSensor, len(m.sensors))
	copy(out, m.sensors)
	return out
}

func (m *SensorMount) Position() physics.Vec3 { return m.location }

// Rotation is the accumulated orientation in degrees.
func (m *SensorMount) Rotation() float64 { return m.rotation }

// Heading is the planar direction, in degrees, from the mount to its front
// sensor.
func (m *SensorMount) Heading() (float64, error) {
	if len(m.sensors) == 0 {
		return 0, ErrNoSensors
	}
	return m.sensors[0].Position().Sub(m.location).Heading(), nil
}

// MoveTo turns the mount to the absolute orientation rotation (degrees)
// about its current location and then translates it to location. Every
// sensor follows. Either all sensors and the mount are updated or, on
// error, none are.
func (m *SensorMount) MoveTo(location physics.Vec3, rotation float64) error {
	if !location.IsFinite() {
		return fmt.Errorf("move to %+v: %w", location, ErrNonFinite)
	}
	if math.IsNaN(rotation) || math.IsInf(rotation, 0) {
		return fmt.Errorf("rotate to %v: %w", rotation, ErrNonFinite)
	}

	delta := rotation - m.rotation
	translation := location.Sub(m.location)

	next := make([]physics.Vec3, len(m.sensors))
	for i, s := range m.sensors {
		offset := s.Position().Sub(m.location)
		if delta != 0 {
			offset = offset.RotateZ(delta)
		}
		p := offset.Add(m.location).Add(translation)
		if !p.IsFinite() {
			return fmt.Errorf("sensor %d would move to %+v: %w", i, p, ErrNonFinite)
		}
		next[i] = p
	}

	for i, s := range m.sensors {
		s.MoveTo(next[i])
	}
	m.location = location
	m.rotation = rotation
	return nil
}
