// Package scenario turns a scenario file into a ready-to-run seek loop.
package scenario

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/wire"

	"github.com/zeusync/lightseek/internal/config"
	"github.com/zeusync/lightseek/internal/core/df"
	"github.com/zeusync/lightseek/internal/core/model"
	"github.com/zeusync/lightseek/internal/core/observability/log"
	"github.com/zeusync/lightseek/internal/core/seeker"
	"github.com/zeusync/lightseek/internal/core/systems/physics"
)

// ProviderSet builds every dependency of seeker.New from a config.Scenario.
var ProviderSet = wire.NewSet(
	df.NewRegistry,
	ProvideLogger,
	ProvideSource,
	ProvideMount,
	ProvideFinder,
	ProvideLoopConfig,
)

func ProvideLogger(cfg config.Scenario) (log.Log, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return log.New(level, log.Options{Console: !strings.EqualFold(cfg.Log.Format, "json")}), nil
}

func ProvideSource(cfg config.Scenario) (*model.LightSource, error) {
	return model.NewLightSource(point(cfg.Source.Location), cfg.Source.Intensity)
}

// ProvideMount attaches the configured sensors to a mount at the origin and
// then moves it to the start pose.
func ProvideMount(cfg config.Scenario) (*model.SensorMount, error) {
	in := rangeOf(cfg.Sensors.InputRange)
	out := rangeOf(cfg.Sensors.OutputRange)

	mount := model.NewSensorMount()
	for _, p := range Layout(cfg.Sensors) {
		mount.Attach(model.NewLightSensor(p, in, out))
	}
	if mount.Len() == 0 {
		return nil, model.ErrNoSensors
	}
	if err := mount.MoveTo(point(cfg.Mount.Location), cfg.Mount.Rotation); err != nil {
		return nil, fmt.Errorf("moving mount to start: %w", err)
	}
	return mount, nil
}

// ProvideFinder resolves the configured kind through finders.
func ProvideFinder(cfg config.Scenario, finders *df.Registry) (df.Finder, error) {
	return finders.New(cfg.Finder.Kind, df.Params{
		Elements:  cfg.Finder.Elements,
		Tolerance: cfg.Finder.Tolerance,
	})
}

func ProvideLoopConfig(cfg config.Scenario) seeker.Config {
	return cfg.SeekerConfig()
}

// Build wires a loop by hand with a caller supplied finder registry and
// logger. A nil registry means the built-in finders.
func Build(cfg config.Scenario, finders *df.Registry, logger log.Log) (*seeker.Loop, error) {
	if finders == nil {
		finders = df.NewRegistry()
	}
	source, err := ProvideSource(cfg)
	if err != nil {
		return nil, err
	}
	mount, err := ProvideMount(cfg)
	if err != nil {
		return nil, err
	}
	finder, err := ProvideFinder(cfg, finders)
	if err != nil {
		return nil, err
	}
	return seeker.New(source, mount, finder, ProvideLoopConfig(cfg), logger)
}

// Layout returns sensor positions relative to the mount. Explicit positions
// are used as given; otherwise the ring is walked clockwise from its start
// angle.
func Layout(c config.SensorsConfig) []physics.Vec3 {
	if len(c.Positions) > 0 {
		out := make([]physics.Vec3, len(c.Positions))
		for i, p := range c.Positions {
			out[i] = point(p)
		}
		return out
	}

	r := c.Ring
	if r.Count < 1 {
		return nil
	}
	out := make([]physics.Vec3, r.Count)
	spacing := 360 / float64(r.Count)
	for i := range out {
		sin, cos := math.Sincos(physics.Radians(r.StartAngle - float64(i)*spacing))
		out[i] = physics.V3(r.Radius*cos, r.Radius*sin, r.Height)
	}
	return out
}

func point(p []float64) physics.Vec3 {
	var v physics.Vec3
	if len(p) > 0 {
		v.X = p[0]
	}
	if len(p) > 1 {
		v.Y = p[1]
	}
	if len(p) > 2 {
		v.Z = p[2]
	}
	return v
}

func rangeOf(r []float64) model.Range {
	if len(r) < 2 {
		return model.Range{}
	}
	return model.Range{Min: r[0], Max: r[1]}
}
