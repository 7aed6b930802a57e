package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/gradient/internal/config"
)

// settings holds the flags shared by run and sweep.
type settings struct {
	configPath string
	start      float64
	lr         float64
	iterations int
	rule       string
	momentum   float64
	objective  string
	strict     bool
	logLevel   string
	logFormat  string
}

func (s *settings) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&s.configPath, "config", "f", "", "path to config file (YAML or JSON)")
	f.Float64Var(&s.start, "start", 5, "initial estimate")
	f.Float64Var(&s.lr, "lr", 0.01, "step size (learning rate)")
	f.IntVarP(&s.iterations, "iterations", "n", 1000, "number of update steps")
	f.StringVar(&s.rule, "rule", config.RuleFixed, "update rule: fixed, momentum or adam")
	f.Float64Var(&s.momentum, "momentum", 0, "momentum factor for the momentum rule")
	f.StringVar(&s.objective, "objective", config.ObjectiveSquare, "objective: square or quadratic (coefficients from the config file)")
	f.BoolVar(&s.strict, "strict", false, "reject negative iteration counts and non-finite inputs")
	f.StringVar(&s.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	f.StringVar(&s.logFormat, "log-format", "text", "log format: text or json")
}

// load reads the config file, if any, then applies every flag the user set
// explicitly.
func (s *settings) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if s.configPath != "" {
		var err error
		cfg, err = config.LoadFromFile(s.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	f := cmd.Flags()
	if f.Changed("start") {
		cfg.Start = s.start
	}
	if f.Changed("lr") {
		cfg.LearningRate = s.lr
	}
	if f.Changed("iterations") {
		cfg.Iterations = s.iterations
	}
	if f.Changed("rule") {
		cfg.Rule = s.rule
	}
	if f.Changed("momentum") {
		cfg.Momentum = s.momentum
	}
	if f.Changed("objective") {
		cfg.Objective.Type = s.objective
	}
	if f.Changed("strict") {
		cfg.Strict = s.strict
	}
	if f.Changed("log-level") {
		cfg.Log.Level = s.logLevel
	}
	if f.Changed("log-format") {
		cfg.Log.Format = s.logFormat
	}

	return cfg, nil
}
