package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/zeusync/lightseek/internal/core/df"
	"github.com/zeusync/lightseek/internal/core/seeker"
)

// Scenario describes one simulated room: the bulb, the cart, its sensor
// array, the direction finder and the seek loop. Coordinates are
// centimetres given as [x, y, z]; ranges as [min, max].
type Scenario struct {
	Source  SourceConfig  `yaml:"source" toml:"source"`
	Mount   MountConfig   `yaml:"mount" toml:"mount"`
	Sensors SensorsConfig `yaml:"sensors" toml:"sensors"`
	Finder  FinderConfig  `yaml:"finder" toml:"finder"`
	Loop    LoopConfig    `yaml:"loop" toml:"loop"`
	Log     LogConfig     `yaml:"log" toml:"log"`
}

type SourceConfig struct {
	Location  []float64 `yaml:"location" toml:"location"`
	Intensity float64   `yaml:"intensity" toml:"intensity"`
}

// MountConfig is the pose the cart is moved to before the first iteration.
type MountConfig struct {
	Location []float64 `yaml:"location" toml:"location"`
	Rotation float64   `yaml:"rotation" toml:"rotation"`
}

// SensorsConfig lays sensors out relative to the mount. Explicit positions
// win over the ring; the first position is the front.
type SensorsConfig struct {
	InputRange  []float64   `yaml:"input_range" toml:"input_range"`
	OutputRange []float64   `yaml:"output_range" toml:"output_range"`
	Ring        RingConfig  `yaml:"ring" toml:"ring"`
	Positions   [][]float64 `yaml:"positions,omitempty" toml:"positions,omitempty"`
}

// RingConfig places Count sensors on a circle, the first at StartAngle
// degrees and the rest clockwise.
type RingConfig struct {
	Count      int     `yaml:"count" toml:"count"`
	Radius     float64 `yaml:"radius" toml:"radius"`
	Height     float64 `yaml:"height" toml:"height"`
	StartAngle float64 `yaml:"start_angle" toml:"start_angle"`
}

type FinderConfig struct {
	Kind      string  `yaml:"kind" toml:"kind"`
	Elements  int     `yaml:"elements" toml:"elements"`
	Tolerance float64 `yaml:"tolerance" toml:"tolerance"`
}

type LoopConfig struct {
	MaxIterations int     `yaml:"max_iterations" toml:"max_iterations"`
	StepLength    float64 `yaml:"step_length" toml:"step_length"`
	Tolerance     float64 `yaml:"tolerance" toml:"tolerance"`
	StepPolicy    string  `yaml:"step_policy" toml:"step_policy"`
	StepDecay     float64 `yaml:"step_decay" toml:"step_decay"`
}

type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Default returns a bulb three metres above the middle of the room and an
// eight sensor cart one metre away from the spot below it.
func Default() Scenario {
	loop := seeker.DefaultConfig()
	return Scenario{
		Source: SourceConfig{
			Location:  []float64{0, 0, 304},
			Intensity: 500,
		},
		Mount: MountConfig{
			Location: []float64{0, -100, 0},
		},
		Sensors: SensorsConfig{
			InputRange:  []float64{0, 304},
			OutputRange: []float64{0, 1023},
			Ring: RingConfig{
				Count:      8,
				Radius:     30,
				Height:     10,
				StartAngle: 90,
			},
		},
		Finder: FinderConfig{
			Kind:      df.KindSingle,
			Elements:  3,
			Tolerance: 1e-9,
		},
		Loop: LoopConfig{
			MaxIterations: loop.MaxIterations,
			StepLength:    loop.StepLength,
			Tolerance:     loop.Tolerance,
			StepPolicy:    string(loop.StepPolicy),
			StepDecay:     loop.StepDecay,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// SensorCount is the number of sensors the scenario will attach.
func (s Scenario) SensorCount() int {
	if len(s.Sensors.Positions) > 0 {
		return len(s.Sensors.Positions)
	}
	return s.Sensors.Ring.Count
}

// SeekerConfig converts the loop section.
func (s Scenario) SeekerConfig() seeker.Config {
	return seeker.Config{
		MaxIterations: s.Loop.MaxIterations,
		StepLength:    s.Loop.StepLength,
		Tolerance:     s.Loop.Tolerance,
		StepPolicy:    seeker.StepPolicy(s.Loop.StepPolicy),
		StepDecay:     s.Loop.StepDecay,
	}
}

func Validate(s Scenario) error {
	if err := checkPoint("source.location", s.Source.Location); err != nil {
		return err
	}
	if !(s.Source.Intensity > 0) || math.IsInf(s.Source.Intensity, 0) {
		return fmt.Errorf("source.intensity must be positive, got %v", s.Source.Intensity)
	}
	if err := checkPoint("mount.location", s.Mount.Location); err != nil {
		return err
	}
	if err := checkFinite("mount.rotation", s.Mount.Rotation); err != nil {
		return err
	}
	if err := validateSensors(s.Sensors); err != nil {
		return err
	}
	if err := validateFinder(s.Finder, s.SensorCount()); err != nil {
		return err
	}
	if err := s.SeekerConfig().Validate(); err != nil {
		return fmt.Errorf("loop: %w", err)
	}
	switch strings.ToLower(s.Log.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", s.Log.Format)
	}
	return nil
}

func validateSensors(c SensorsConfig) error {
	if err := checkRange("sensors.input_range", c.InputRange); err != nil {
		return err
	}
	if c.InputRange[1] == c.InputRange[0] {
		return fmt.Errorf("sensors.input_range has zero width")
	}
	if err := checkRange("sensors.output_range", c.OutputRange); err != nil {
		return err
	}
	if len(c.Positions) > 0 {
		for i, p := range c.Positions {
			if err := checkPoint(fmt.Sprintf("sensors.positions[%d]", i), p); err != nil {
				return err
			}
		}
		return nil
	}
	if c.Ring.Count < 1 {
		return fmt.Errorf("sensors.ring.count must be at least 1, got %d", c.Ring.Count)
	}
	if !(c.Ring.Radius > 0) || math.IsInf(c.Ring.Radius, 0) {
		return fmt.Errorf("sensors.ring.radius must be positive, got %v", c.Ring.Radius)
	}
	if err := checkFinite("sensors.ring.height", c.Ring.Height); err != nil {
		return err
	}
	return checkFinite("sensors.ring.start_angle", c.Ring.StartAngle)
}

func validateFinder(c FinderConfig, sensors int) error {
	switch strings.ToLower(strings.TrimSpace(c.Kind)) {
	case df.KindSingle:
		if c.Tolerance < 0 || math.IsNaN(c.Tolerance) {
			return fmt.Errorf("finder.tolerance must not be negative, got %v", c.Tolerance)
		}
	case df.KindMulti:
		if c.Elements < 1 {
			return fmt.Errorf("finder.elements must be at least 1, got %d", c.Elements)
		}
		if c.Elements > sensors {
			return fmt.Errorf("finder.elements %d exceeds the %d sensors on the mount", c.Elements, sensors)
		}
	}
	// Unknown kinds are reported by the finder registry, which also knows
	// about kinds registered at runtime.
	return nil
}

func checkPoint(name string, p []float64) error {
	if len(p) != 3 {
		return fmt.Errorf("%s must have 3 coordinates, got %d", name, len(p))
	}
	for _, v := range p {
		if err := checkFinite(name, v); err != nil {
			return err
		}
	}
	return nil
}

func checkRange(name string, r []float64) error {
	if len(r) != 2 {
		return fmt.Errorf("%s must be [min, max], got %d values", name, len(r))
	}
	for _, v := range r {
		if err := checkFinite(name, v); err != nil {
			return err
		}
	}
	return nil
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be finite, got %v", name, v)
	}
	return nil
}
