package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/lightseek/internal/core/observability/metrics"
	"github.com/zeusync/lightseek/internal/core/systems/physics"
	"github.com/zeusync/lightseek/internal/scenario"
)

type sweepOptions struct {
	radius   float64
	count    int
	parallel int
	stats    bool
}

func newSweepCmd(root *rootOptions) *cobra.Command {
	opts := &sweepOptions{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Seek from start positions on a circle around the source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", opts.count)
			}
			cfg, err := root.load()
			if err != nil {
				return err
			}
			logger, err := scenario.ProvideLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			src := cfg.Source.Location
			center := physics.V3(src[0], src[1], cfg.Mount.Location[2])
			reg := metrics.NewRegistry()
			starts := scenario.Starts(center, opts.radius, opts.count)
			runs, err := scenario.Sweep(cmd.Context(), cfg, starts, opts.parallel, logger, scenario.WithMetrics(reg))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			target := physics.V3(src[0], src[1], src[2])
			for _, r := range runs {
				fmt.Fprintf(out, "(%8.2f, %8.2f) -> (%8.3f, %8.3f) %3d iterations, miss %.3f\n",
					r.Start.X, r.Start.Y, r.Result.Position.X, r.Result.Position.Y,
					r.Result.Iterations, r.Result.Position.Sub(target).PlanarLength())
			}
			sum := scenario.Summarize(runs, target)
			fmt.Fprintf(out, "%d/%d converged, mean %.1f iterations, max %d, worst miss %.3f\n",
				sum.Converged, sum.Runs, sum.MeanIterations, sum.MaxIterations, sum.WorstMiss)
			if opts.stats {
				if err := printMetrics(out, reg); err != nil {
					return err
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&opts.radius, "radius", 100, "distance of each start from the spot below the source")
	f.IntVar(&opts.count, "count", 8, "number of start positions")
	f.IntVar(&opts.parallel, "parallel", 4, "runs in flight at once (0 for unlimited)")
	f.BoolVar(&opts.stats, "stats", false, "print step metrics summed over all runs")
	return cmd
}
