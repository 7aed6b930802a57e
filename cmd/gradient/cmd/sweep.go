package cmd

import (
	"github.com/spf13/cobra"

	"github.com/born-ml/gradient/internal/logging"
	"github.com/born-ml/gradient/internal/report"
	"github.com/born-ml/gradient/internal/sweep"
)

func newSweepCmd() *cobra.Command {
	var (
		s       settings
		rates   []float64
		workers int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare final estimates across step sizes",
		Long: `Sweep runs one independent descent per step size with the same start,
objective and iteration count, and prints a table of results.

Example:
  gradient sweep --rates 0.01,0.1,0.5,1,1.5 --iterations 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.load(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)

			pcfg := sweep.DefaultConfig()
			if cmd.Flags().Changed("workers") {
				pcfg.Workers = workers
			}

			points, err := sweep.Run(sweep.Job{
				Objective:  cfg.BuildObjective(),
				Start:      cfg.Start,
				Iterations: cfg.Iterations,
				Strict:     cfg.Strict,
				NewRule:    cfg.NewRule,
			}, rates, pcfg)
			if err != nil {
				logger.Error("sweep had failing runs", "error", err)
			}
			logger.Info("sweep finished", "runs", len(points), "workers", pcfg.Workers)

			if werr := report.SweepTable(cmd.OutOrStdout(), points); werr != nil {
				return werr
			}
			return err
		},
	}

	s.bind(cmd)
	cmd.Flags().Float64SliceVar(&rates, "rates", []float64{0.001, 0.01, 0.1, 0.5, 1, 1.5}, "step sizes to compare")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel runs (default: number of CPUs)")
	return cmd
}
