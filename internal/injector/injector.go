//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/lightseek/internal/config"
	"github.com/zeusync/lightseek/internal/core/seeker"
	"github.com/zeusync/lightseek/internal/scenario"
)

func InitializeLoop(cfg config.Scenario) (*seeker.Loop, error) {
	wire.Build(scenario.ProviderSet, seeker.New)
	return nil, nil
}
