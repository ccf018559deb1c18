package model

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/lightseek/internal/core/systems/physics"
)

const tol = 1e-6

var approx = cmpopts.EquateApprox(0, tol)

func mountWith(positions ...physics.Vec3) *SensorMount {
	m := NewSensorMount()
	for _, p := range positions {
		m.Attach(NewLightSensor(p, Range{0, 1}, Range{0, 1}))
	}
	return m
}

func sensorPositions(m *SensorMount) []physics.Vec3 {
	out := make([]physics.Vec3, 0, m.Len())
	for _, s := range m.Sensors() {
		out = append(out, s.Position())
	}
	return out
}

func TestMountReportsOwnPosition(t *testing.T) {
	m := NewSensorMount()
	require.NoError(t, m.MoveTo(physics.V3(1, 2, 3), 0))
	assert.Equal(t, physics.V3(1, 2, 3), m.Position())
	assert.Equal(t, 0.0, m.Rotation())
}

func TestMountTranslatesSensor(t *testing.T) {
	m := mountWith(physics.V3(1, 0, 0))
	require.NoError(t, m.MoveTo(physics.V3(1, 2, 3), 0))

	s, err := m.Sensor(0)
	require.NoError(t, err)
	assert.Equal(t, physics.V3(2, 2, 3), s.Position())
}

func TestMountRotationAboutOrigin(t *testing.T) {
	cases := []struct {
		deg  float64
		want physics.Vec3
	}{
		{90, physics.V3(0, -1, 0)},
		{180, physics.V3(-1, 0, 0)},
		{270, physics.V3(0, 1, 0)},
		{360, physics.V3(1, 0, 0)},
	}
	for _, tc := range cases {
		m := mountWith(physics.V3(1, 0, 0))
		require.NoError(t, m.MoveTo(physics.Vec3{}, tc.deg))
		got := sensorPositions(m)[0]
		if diff := cmp.Diff(tc.want, got, approx); diff != "" {
			t.Errorf("rotate %v (-want +got):\n%s", tc.deg, diff)
		}
	}
}

func TestMountFullTurnAboutOffsetPivot(t *testing.T) {
	start := []physics.Vec3{physics.V3(13, -4, 2), physics.V3(-7, 9, 0), physics.V3(0.5, 0.25, 10)}
	m := mountWith(start...)
	require.NoError(t, m.MoveTo(physics.V3(40, -25, 3), 0))
	before := sensorPositions(m)

	require.NoError(t, m.MoveTo(physics.V3(40, -25, 3), 360))
	if diff := cmp.Diff(before, sensorPositions(m), approx); diff != "" {
		t.Errorf("full turn moved sensors (-want +got):\n%s", diff)
	}
}

func TestMountRotateAndTranslate(t *testing.T) {
	m := mountWith(physics.V3(100, 0, 0))
	require.NoError(t, m.MoveTo(physics.V3(2, 5, 7), 32))

	want := physics.V3(86.804809616, -47.991926423, 7)
	if diff := cmp.Diff(want, sensorPositions(m)[0], approx); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	assert.Equal(t, 32.0, m.Rotation())
}

func TestMountRotateAndTranslateRing(t *testing.T) {
	const d = 70.710678119
	m := mountWith(
		physics.V3(100, 0, 0),
		physics.V3(d, d, 0),
		physics.V3(0, 100, 0),
		physics.V3(-d, d, 0),
		physics.V3(-100, 0, 0),
		physics.V3(-d, -d, 0),
		physics.V3(0, -100, 0),
		physics.V3(d, -d, 0),
	)
	require.NoError(t, m.MoveTo(physics.V3(2, 5, 7), 45))

	// A 45 degree turn moves each sensor onto its predecessor's slot.
	want := []physics.Vec3{
		physics.V3(2+d, 5-d, 7),
		physics.V3(102, 5, 7),
		physics.V3(2+d, 5+d, 7),
		physics.V3(2, 105, 7),
		physics.V3(2-d, 5+d, 7),
		physics.V3(-98, 5, 7),
		physics.V3(2-d, 5-d, 7),
		physics.V3(2, -95, 7),
	}
	if diff := cmp.Diff(want, sensorPositions(m), approx); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMountRotationIsAbsolute(t *testing.T) {
	m := mountWith(physics.V3(1, 0, 0))
	require.NoError(t, m.MoveTo(physics.Vec3{}, 90))
	require.NoError(t, m.MoveTo(physics.Vec3{}, 90))

	if diff := cmp.Diff(physics.V3(0, -1, 0), sensorPositions(m)[0], approx); diff != "" {
		t.Errorf("repeating the same orientation rotated again:\n%s", diff)
	}

	require.NoError(t, m.MoveTo(physics.Vec3{}, 0))
	if diff := cmp.Diff(physics.V3(1, 0, 0), sensorPositions(m)[0], approx); diff != "" {
		t.Errorf("returning to 0 did not restore:\n%s", diff)
	}
}

func TestMountRotatesAboutCurrentLocation(t *testing.T) {
	m := mountWith(physics.V3(1, 0, 0))
	require.NoError(t, m.MoveTo(physics.V3(10, 10, 0), 0))
	require.NoError(t, m.MoveTo(physics.V3(10, 10, 0), 90))

	if diff := cmp.Diff(physics.V3(10, 9, 0), sensorPositions(m)[0], approx); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMountHeading(t *testing.T) {
	m := NewSensorMount()
	_, err := m.Heading()
	assert.ErrorIs(t, err, ErrNoSensors)

	m = mountWith(physics.V3(0, 30, 10), physics.V3(30, 0, 10))
	h, err := m.Heading()
	require.NoError(t, err)
	assert.InDelta(t, 90, h, tol)

	require.NoError(t, m.MoveTo(physics.V3(5, 5, 0), 90))
	h, err = m.Heading()
	require.NoError(t, err)
	assert.InDelta(t, 0, h, tol)
}

func TestMountFailedMoveIsAtomic(t *testing.T) {
	m := mountWith(physics.V3(1, 0, 0), physics.V3(0, 1, 0))
	require.NoError(t, m.MoveTo(physics.V3(3, 4, 0), 10))
	before := sensorPositions(m)

	err := m.MoveTo(physics.V3(math.Inf(1), 0, 0), 20)
	assert.ErrorIs(t, err, ErrNonFinite)
	err = m.MoveTo(physics.V3(0, 0, 0), math.NaN())
	assert.ErrorIs(t, err, ErrNonFinite)

	assert.Equal(t, before, sensorPositions(m))
	assert.Equal(t, physics.V3(3, 4, 0), m.Position())
	assert.Equal(t, 10.0, m.Rotation())

	// A sensor that already sits at a non-finite position poisons the move
	// before anything is written.
	bad, err := m.Sensor(1)
	require.NoError(t, err)
	bad.MoveTo(physics.V3(math.NaN(), 0, 0))
	err = m.MoveTo(physics.V3(8, 8, 0), 10)
	assert.ErrorIs(t, err, ErrNonFinite)
	first, err := m.Sensor(0)
	require.NoError(t, err)
	assert.Equal(t, before[0], first.Position())
}

func TestMountSensorIndex(t *testing.T) {
	m := mountWith(physics.V3(1, 0, 0))
	_, err := m.Sensor(1)
	assert.ErrorIs(t, err, ErrSensorIndex)
	_, err = m.Sensor(-1)
	assert.ErrorIs(t, err, ErrSensorIndex)
}
