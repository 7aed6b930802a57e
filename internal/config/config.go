// Package config loads run settings for the gradient CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/gradient/internal/descent"
)

// Rule names accepted in Config.Rule.
const (
	RuleFixed    = "fixed"
	RuleMomentum = "momentum"
	RuleAdam     = "adam"
)

// Objective types accepted in ObjectiveConfig.Type.
const (
	ObjectiveSquare    = "square"
	ObjectiveQuadratic = "quadratic"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config is the complete run configuration.
type Config struct {
	Start        float64         `json:"start" yaml:"start"`
	LearningRate float64         `json:"learning_rate" yaml:"learning_rate"`
	Iterations   int             `json:"iterations" yaml:"iterations"`
	Rule         string          `json:"rule" yaml:"rule"`
	Momentum     float64         `json:"momentum,omitempty" yaml:"momentum,omitempty"`
	Betas        [2]float64      `json:"betas,omitempty" yaml:"betas,omitempty"`
	Epsilon      float64         `json:"epsilon,omitempty" yaml:"epsilon,omitempty"`
	Strict       bool            `json:"strict" yaml:"strict"`
	Objective    ObjectiveConfig `json:"objective" yaml:"objective"`
	Plot         PlotConfig      `json:"plot" yaml:"plot"`
	CSVPath      string          `json:"csv_path,omitempty" yaml:"csv_path,omitempty"`
	Log          LogConfig       `json:"log" yaml:"log"`
}

// ObjectiveConfig selects the function to minimise.
type ObjectiveConfig struct {
	Type string  `json:"type" yaml:"type"` // "square" or "quadratic"
	A    float64 `json:"a,omitempty" yaml:"a,omitempty"`
	B    float64 `json:"b,omitempty" yaml:"b,omitempty"`
	C    float64 `json:"c,omitempty" yaml:"c,omitempty"`
}

// PlotConfig contains trajectory plot parameters.
type PlotConfig struct {
	Path    string  `json:"path,omitempty" yaml:"path,omitempty"` // empty disables plotting
	Width   float64 `json:"width" yaml:"width"`                   // inches
	Height  float64 `json:"height" yaml:"height"`                 // inches
	XMin    float64 `json:"x_min" yaml:"x_min"`
	XMax    float64 `json:"x_max" yaml:"x_max"`
	Samples int     `json:"samples" yaml:"samples"`
}

// LogConfig contains logging parameters.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format string `json:"format" yaml:"format"` // text or json
}

// Default returns the reference run: start at 5 with step size 0.01 for
// 1000 iterations on f(x) = x², plotted over [-1, 6].
func Default() *Config {
	return &Config{
		Start:        5,
		LearningRate: 0.01,
		Iterations:   1000,
		Rule:         RuleFixed,
		Objective:    ObjectiveConfig{Type: ObjectiveSquare},
		Plot: PlotConfig{
			Width:   10,
			Height:  5,
			XMin:    -1,
			XMax:    6,
			Samples: 400,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadFromFile loads configuration from a file (YAML or JSON). Fields
// missing from the file keep their Default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, falling back to JSON.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg = Default()
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", errors.Join(err, jerr))
		}
	}

	return cfg, nil
}

// Validate checks the settings the CLI cannot run without.
//
// The optimiser inputs (start, learning rate, iterations) are not checked
// here; Strict mode in the optimiser covers them when enabled.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Rule) {
	case RuleFixed, RuleMomentum, RuleAdam:
	default:
		return fmt.Errorf("%w: unknown rule %q", ErrInvalid, c.Rule)
	}

	switch strings.ToLower(c.Objective.Type) {
	case ObjectiveSquare:
	case ObjectiveQuadratic:
		if c.Objective.A == 0 {
			return fmt.Errorf("%w: quadratic objective needs a non-zero a", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown objective %q", ErrInvalid, c.Objective.Type)
	}

	if c.Plot.Path != "" {
		if c.Plot.XMin >= c.Plot.XMax {
			return fmt.Errorf("%w: plot x_min %v must be below x_max %v", ErrInvalid, c.Plot.XMin, c.Plot.XMax)
		}
		if c.Plot.Samples < 2 {
			return fmt.Errorf("%w: plot needs at least 2 samples, got %d", ErrInvalid, c.Plot.Samples)
		}
		if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
			return fmt.Errorf("%w: plot size %vx%v", ErrInvalid, c.Plot.Width, c.Plot.Height)
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// NewRule builds the update rule for lr using the configured rule type and
// hyperparameters. The step size is used exactly as given for every rule;
// only the other hyperparameters fall back to their defaults.
func (c *Config) NewRule(lr float64) descent.Rule {
	switch strings.ToLower(c.Rule) {
	case RuleMomentum:
		rule := descent.NewMomentum(descent.MomentumConfig{LR: lr, Momentum: c.Momentum})
		rule.SetLR(lr)
		return rule
	case RuleAdam:
		rule := descent.NewAdam(descent.AdamConfig{LR: lr, Betas: c.Betas, Eps: c.Epsilon})
		rule.SetLR(lr)
		return rule
	default:
		return descent.NewFixed(lr)
	}
}

// BuildObjective returns the configured objective.
func (c *Config) BuildObjective() descent.Objective {
	if strings.ToLower(c.Objective.Type) == ObjectiveQuadratic {
		return descent.Quadratic{A: c.Objective.A, B: c.Objective.B, C: c.Objective.C}
	}
	return descent.Square{}
}

// OptimizerConfig converts the run settings to a descent.Config.
func (c *Config) OptimizerConfig() descent.Config {
	return descent.Config{
		Iterations: c.Iterations,
		Rule:       c.NewRule(c.LearningRate),
		Strict:     c.Strict,
	}
}
