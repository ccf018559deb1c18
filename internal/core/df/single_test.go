package df

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/lightseek/internal/core/systems/physics"
)

// diagonal builds samples at (1,1), (2,2), ... with the given amplitudes.
func diagonal(amps ...float64) []Sample {
	out := make([]Sample, len(amps))
	for i, a := range amps {
		out[i] = Sample{Amplitude: a, Location: physics.V2(float64(i+1), float64(i+1))}
	}
	return out
}

func TestSingleElementIdenticalAmplitudes(t *testing.T) {
	finder := NewSingleElement()
	for _, amp := range []float64{128, 0, 3.5, 1e9} {
		got, err := finder.FindDirection(diagonal(amp, amp, amp, amp, amp, amp, amp, amp))
		require.NoError(t, err)
		assert.True(t, got.Valid, "amp %v", amp)
		assert.Equal(t, physics.Vec3{}, got.Direction, "amp %v", amp)
	}

	got, err := finder.FindDirection(diagonal(128, 128, 128, 128, 128, 128, 128))
	require.NoError(t, err)
	assert.Equal(t, Estimate{Valid: true}, got)
}

func TestSingleElementSingleMax(t *testing.T) {
	got, err := NewSingleElement().FindDirection(diagonal(128, 128, 128, 256, 128, 128, 128, 128))
	require.NoError(t, err)
	require.True(t, got.Valid)
	assert.Equal(t, physics.V2(4, 4), got.Direction)
}

func TestSingleElementTiesGoToFirst(t *testing.T) {
	got, err := NewSingleElement().FindDirection(diagonal(256, 128, 128, 128, 128, 256, 128, 128))
	require.NoError(t, err)
	assert.Equal(t, physics.V2(1, 1), got.Direction)
}

func TestSingleElementInvalidAmplitude(t *testing.T) {
	finder := NewSingleElement()
	for _, bad := range []float64{math.NaN(), -1, math.Inf(1), math.Inf(-1)} {
		got, err := finder.FindDirection(diagonal(128, 128, bad, 128, 512, 128, 128, 128))
		require.NoError(t, err)
		assert.Equal(t, NoEstimate, got, "bad amplitude %v", bad)
		assert.False(t, got.Valid)
	}
}

func TestSingleElementFailsFastOnInvalid(t *testing.T) {
	// The maximum comes after the invalid entry, so a skip-and-continue scan
	// would have produced an estimate.
	got, err := NewSingleElement().FindDirection(diagonal(1, math.NaN(), 900))
	require.NoError(t, err)
	assert.False(t, got.Valid)
}

func TestSingleElementEmpty(t *testing.T) {
	_, err := NewSingleElement().FindDirection(nil)
	assert.ErrorIs(t, err, ErrNoSamples)
}

func TestSingleElementTolerance(t *testing.T) {
	noisy := diagonal(100, 100*(1+1e-12), 100*(1-1e-12))

	got, err := NewSingleElement().FindDirection(noisy)
	require.NoError(t, err)
	assert.Equal(t, physics.V2(2, 2), got.Direction, "exact mode must see the spread")

	finder := NewSingleElement(WithTolerance(1e-9))
	assert.Equal(t, 1e-9, finder.Tolerance())
	got, err = finder.FindDirection(noisy)
	require.NoError(t, err)
	assert.Equal(t, Estimate{Valid: true}, got)

	got, err = finder.FindDirection(diagonal(0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, Estimate{Valid: true}, got)

	got, err = finder.FindDirection(diagonal(100, 101, 100))
	require.NoError(t, err)
	assert.Equal(t, physics.V2(2, 2), got.Direction)

	got, err = finder.FindDirection(diagonal(100, math.NaN(), 100))
	require.NoError(t, err)
	assert.False(t, got.Valid)

	// Identical amplitudes short-circuit in both modes, even when infinite.
	saturated := diagonal(math.Inf(1), math.Inf(1))
	for _, f := range []*SingleElement{NewSingleElement(), finder} {
		got, err = f.FindDirection(saturated)
		require.NoError(t, err)
		assert.Equal(t, Estimate{Valid: true}, got)
	}

	got, err = finder.FindDirection(diagonal(math.Inf(1), 100))
	require.NoError(t, err)
	assert.False(t, got.Valid)
}
