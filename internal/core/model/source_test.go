package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/lightseek/internal/core/systems/physics"
)

func TestLightSourceAccessors(t *testing.T) {
	src, err := NewLightSource(physics.V3(200, 300, 700), 505)
	require.NoError(t, err)
	assert.Equal(t, physics.V3(200, 300, 700), src.Position())
	assert.Equal(t, 505.0, src.OutputIntensity())
}

func TestLightSourceInverseSquare(t *testing.T) {
	src, err := NewLightSource(physics.V3(200, 300, 700), 505)
	require.NoError(t, err)

	oneMetre, err := src.IntensityAt(physics.V3(300, 300, 700))
	require.NoError(t, err)
	assert.InDelta(t, 40.1866231307, oneMetre, 1e-6)

	twoMetres, err := src.IntensityAt(physics.V3(400, 300, 700))
	require.NoError(t, err)
	assert.InDelta(t, 10.0466557827, twoMetres, 1e-6)

	// Direction does not matter, only distance.
	below, err := src.IntensityAt(physics.V3(200, 300, 600))
	require.NoError(t, err)
	assert.InDelta(t, oneMetre, below, 1e-12)
}

func TestLightSourceCoincidentPoint(t *testing.T) {
	src, err := NewLightSource(physics.V3(1, 2, 3), 100)
	require.NoError(t, err)

	_, err = src.IntensityAt(physics.V3(1, 2, 3))
	assert.ErrorIs(t, err, ErrCoincident)
}

func TestLightSourceRejectsBadIntensity(t *testing.T) {
	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewLightSource(physics.Vec3{}, v)
		assert.ErrorIs(t, err, ErrInvalidIntensity, "intensity %v", v)
	}
	_, err := NewLightSource(physics.V3(math.NaN(), 0, 0), 1)
	assert.ErrorIs(t, err, ErrNonFinite)
}
