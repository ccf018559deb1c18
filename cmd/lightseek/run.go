package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zeusync/lightseek/internal/config"
	"github.com/zeusync/lightseek/internal/core/observability/metrics"
	"github.com/zeusync/lightseek/internal/core/seeker"
	"github.com/zeusync/lightseek/internal/injector"
)

type runOptions struct {
	finder        string
	elements      int
	maxIterations int
	stepPolicy    string
	start         []float64
	trace         bool
	stats         bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Seek the light source from the configured start pose",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load(opts.apply(cmd))
			if err != nil {
				return err
			}
			return runSeek(cmd, cfg, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.finder, "finder", "", "direction finder kind (single, multi)")
	f.IntVarP(&opts.elements, "elements", "k", 0, "strongest sensors summed by the multi finder")
	f.IntVar(&opts.maxIterations, "max-iterations", 0, "iteration budget")
	f.StringVar(&opts.stepPolicy, "step-policy", "", "step policy (fixed, adaptive)")
	f.Float64SliceVar(&opts.start, "start", nil, "start location x,y,z in centimetres")
	f.BoolVar(&opts.trace, "trace", false, "print every iteration")
	f.BoolVar(&opts.stats, "stats", false, "print step metrics after the run")
	return cmd
}

func (o *runOptions) apply(cmd *cobra.Command) func(*config.Scenario) {
	return func(cfg *config.Scenario) {
		flags := cmd.Flags()
		if flags.Changed("finder") {
			cfg.Finder.Kind = o.finder
		}
		if flags.Changed("elements") {
			cfg.Finder.Elements = o.elements
		}
		if flags.Changed("max-iterations") {
			cfg.Loop.MaxIterations = o.maxIterations
		}
		if flags.Changed("step-policy") {
			cfg.Loop.StepPolicy = o.stepPolicy
		}
		if flags.Changed("start") {
			cfg.Mount.Location = o.start
		}
	}
}

func runSeek(cmd *cobra.Command, cfg config.Scenario, opts *runOptions) error {
	loop, err := injector.InitializeLoop(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = loop.Logger().Sync() }()

	out := cmd.OutOrStdout()
	reg := metrics.NewRegistry()
	loop.Observe(seeker.Instrument(reg))
	if opts.trace {
		fmt.Fprintf(out, "%4s  %10s %10s %8s  %8s %8s %8s\n", "iter", "x", "y", "rot", "move_x", "move_y", "turn")
		loop.Observe(func(s seeker.StepResult) {
			traceStep(out, s)
		})
	}

	res, err := loop.Run(cmd.Context())
	printResult(out, res)
	if opts.stats {
		if err := printMetrics(out, reg); err != nil {
			return err
		}
	}
	return err
}

func traceStep(w io.Writer, s seeker.StepResult) {
	switch {
	case !s.Estimate.Valid:
		fmt.Fprintf(w, "%4d  %10.3f %10.3f %8.2f  no estimate\n", s.Iteration, s.Position.X, s.Position.Y, s.Rotation)
	case s.Converged:
		fmt.Fprintf(w, "%4d  %10.3f %10.3f %8.2f  converged\n", s.Iteration, s.Position.X, s.Position.Y, s.Rotation)
	default:
		fmt.Fprintf(w, "%4d  %10.3f %10.3f %8.2f  %8.3f %8.3f %8.2f\n",
			s.Iteration, s.Position.X, s.Position.Y, s.Rotation, s.Move.X, s.Move.Y, s.Turn)
	}
}

func printResult(w io.Writer, res seeker.Result) {
	state := "did not converge"
	if res.Converged {
		state = "converged"
	}
	fmt.Fprintf(w, "run %s (%s): %s after %d iterations at (%.3f, %.3f), rotation %.2f",
		res.RunID, res.Finder, state, res.Iterations, res.Position.X, res.Position.Y, res.Rotation)
	if res.Skipped > 0 {
		fmt.Fprintf(w, ", %d skipped", res.Skipped)
	}
	fmt.Fprintln(w)
}

func printMetrics(w io.Writer, c metrics.Collector) error {
	samples, err := c.Export()
	if err != nil {
		return err
	}
	for _, s := range samples {
		fmt.Fprintf(w, "%-26s %-8s %g\n", s.Name, s.Kind, s.Value)
	}
	return nil
}
