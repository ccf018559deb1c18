package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/lightseek/internal/core/systems/physics"
)

func TestLightSensorPosition(t *testing.T) {
	s := NewLightSensor(physics.V3(1, 5, 3), Range{1, 5}, Range{1, 5})
	assert.Equal(t, physics.V3(1, 5, 3), s.Position())

	s.MoveTo(physics.V3(2, 3, 2))
	assert.Equal(t, physics.V3(2, 3, 2), s.Position())

	// No bounds checking.
	s.MoveTo(physics.V3(-1e9, 0, 1e9))
	assert.Equal(t, physics.V3(-1e9, 0, 1e9), s.Position())
}

func TestLightSensorTransferFunction(t *testing.T) {
	cases := []struct {
		name     string
		in, out  Range
		incident float64
		want     float64
	}{
		{"identity", Range{1, 5}, Range{1, 5}, 4, 4},
		{"shifted", Range{1, 5}, Range{2, 6}, 4, 5},
		{"scaled", Range{1, 5}, Range{2, 10}, 4, 8},
		{"adc", Range{0, 304}, Range{0, 1023}, 152, 511.5},
		{"inverted", Range{0, 10}, Range{10, 0}, 2, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewLightSensor(physics.Vec3{}, tc.in, tc.out)
			got, err := s.Reading(tc.incident)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestLightSensorZeroWidthInput(t *testing.T) {
	s := NewLightSensor(physics.Vec3{}, Range{3, 3}, Range{0, 1023})
	_, err := s.Reading(1)
	assert.ErrorIs(t, err, ErrZeroInputRange)
	assert.Equal(t, Range{3, 3}, s.InputRange())
	assert.Equal(t, Range{0, 1023}, s.OutputRange())
}
