package df

import (
	"math"

	"github.com/zeusync/lightseek/internal/core/systems/physics"
)

// Sample is one element's measurement: the reading it produced and where it
// sits relative to a shared origin, usually the mount.
type Sample struct {
	Amplitude float64
	Location  physics.Vec3
}

// Valid reports whether the amplitude is a usable, non-negative number.
func (s Sample) Valid() bool {
	return !math.IsNaN(s.Amplitude) && !math.IsInf(s.Amplitude, 0) && s.Amplitude >= 0
}

// Estimate is the direction towards the source in the samples' frame.
// The zero value means no estimate could be made; a valid zero
// Direction means "stay where you are".
type Estimate struct {
	Direction physics.Vec3
	Valid     bool
}

// NoEstimate is returned when the input cannot support an AOA estimate.
var NoEstimate = Estimate{}

func direction(v physics.Vec3) Estimate { return Estimate{Direction: v, Valid: true} }

// Finder estimates an angle of arrival from a set of samples.
//
// Implementations differ on purpose in how they treat identical and invalid
// amplitudes; see SingleElement and MultiElement.
type Finder interface {
	// FindDirection returns NoEstimate for unusable data and an error for
	// caller defects such as an empty sample set.
	FindDirection(samples []Sample) (Estimate, error)
	// Name identifies the finder in logs and configuration.
	Name() string
}
