package model

import "errors"

var (
	// Configuration errors

	ErrZeroInputRange   = errors.New("sensor input range has zero width")
	ErrInvalidIntensity = errors.New("light source intensity must be finite and positive")

	// Geometry errors

	ErrCoincident  = errors.New("point coincides with light source")
	ErrNonFinite   = errors.New("non-finite coordinate")
	ErrNoSensors   = errors.New("mount has no sensors")
	ErrSensorIndex = errors.New("sensor index out of range")
)
