package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zeusync/lightseek/internal/config"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "lightseek",
		Short:         "Drive a simulated sensor cart towards a light source",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "scenario file (.yaml or .toml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log.level (debug, info, warn, error, off)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "override log.format (json, console)")

	cmd.AddCommand(
		newRunCmd(opts),
		newSweepCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}

// load reads the scenario file, applies overrides and validates the result.
func (o *rootOptions) load(overrides ...func(*config.Scenario)) (config.Scenario, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	for _, apply := range overrides {
		apply(&cfg)
	}
	if err := config.Validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid scenario: %w", err)
	}
	return cfg, nil
}
