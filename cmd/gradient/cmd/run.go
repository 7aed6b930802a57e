package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/born-ml/gradient/internal/config"
	"github.com/born-ml/gradient/internal/descent"
	"github.com/born-ml/gradient/internal/logging"
	"github.com/born-ml/gradient/internal/report"
	"github.com/born-ml/gradient/internal/runid"
)

func newRunCmd() *cobra.Command {
	var (
		s        settings
		plotPath string
		csvPath  string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run gradient descent and report the result",
		Long: `Run gradient descent from a config file and/or flags, print the final
estimate and optionally plot the trajectory or dump it as CSV.

Example:
  gradient run --start 5 --lr 0.01 --iterations 1000 --plot trajectory.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("plot") {
				cfg.Plot.Path = plotPath
			}
			if cmd.Flags().Changed("csv") {
				cfg.CSVPath = csvPath
			}
			return runOnce(cmd, cfg)
		},
	}

	s.bind(cmd)
	cmd.Flags().StringVar(&plotPath, "plot", "", "write a trajectory plot (png, svg, pdf)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write the trajectory as CSV")
	return cmd
}

func runOnce(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)

	run := report.Run{
		ID:        runid.New(),
		Objective: cfg.BuildObjective(),
		Rule:      cfg.Rule,
		LR:        cfg.LearningRate,
		Start:     cfg.Start,
	}
	logger.Debug("starting run",
		"run", run.ID, "rule", run.Rule, "lr", run.LR,
		"start", run.Start, "iterations", cfg.Iterations)

	res, err := descent.Minimize(run.Objective, cfg.Start, cfg.OptimizerConfig())
	if err != nil {
		logger.Error("run failed", "run", run.ID, "error", err)
		return err
	}
	run.Result = res

	logger.Info("run finished", "run", run.ID, "final", res.Final, "status", res.Status)
	if res.Status == descent.Diverging {
		logger.Warn("trajectory is diverging; the step size is too large for this objective",
			"run", run.ID, "lr", run.LR)
	}

	if err := report.Summary(cmd.OutOrStdout(), run); err != nil {
		return err
	}

	if cfg.CSVPath != "" {
		if err := writeCSV(cfg.CSVPath, run); err != nil {
			return err
		}
		logger.Info("wrote trajectory", "path", cfg.CSVPath)
	}

	if cfg.Plot.Path != "" {
		opts := report.PlotOptions{
			Width:   vg.Length(cfg.Plot.Width) * vg.Inch,
			Height:  vg.Length(cfg.Plot.Height) * vg.Inch,
			XMin:    cfg.Plot.XMin,
			XMax:    cfg.Plot.XMax,
			Samples: cfg.Plot.Samples,
		}
		if err := report.SavePlot(cfg.Plot.Path, run, opts); err != nil {
			return err
		}
		logger.Info("wrote plot", "path", cfg.Plot.Path)
	}

	return nil
}

func writeCSV(path string, run report.Run) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	if err := report.WriteCSV(f, run); err != nil {
		f.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	return f.Close()
}
