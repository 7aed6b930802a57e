// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package descent

import (
	"github.com/born-ml/gradient/internal/descent"
)

// Trajectory is the ordered record of estimates produced by a run.
type Trajectory = descent.Trajectory

// Objective is a differentiable scalar function.
type Objective = descent.Objective

// Square is f(x) = x².
type Square = descent.Square

// Quadratic is f(x) = A*x² + B*x + C.
type Quadratic = descent.Quadratic

// Func adapts a pair of plain functions to Objective.
type Func = descent.Func

// Config controls a Minimize run.
type Config = descent.Config

// Result is the outcome of a Minimize run.
type Result = descent.Result

// Status describes how the step lengths of a trajectory evolved.
type Status = descent.Status

// Trajectory classifications.
const (
	Stationary  = descent.Stationary
	Converging  = descent.Converging
	Oscillating = descent.Oscillating
	Diverging   = descent.Diverging
)

// Errors returned by Minimize in strict mode.
var (
	ErrNegativeIterations = descent.ErrNegativeIterations
	ErrNonFinite          = descent.ErrNonFinite
	ErrNoObjective        = descent.ErrNoObjective
)

// Descend runs plain gradient descent on f(x) = x².
//
// Example:
//
//	final, traj := descent.Descend(5, 0.01, 1000)
//	// final ≈ 8.4e-9, len(traj) == 1001
func Descend(x0, lr float64, iterations int) (float64, Trajectory) {
	return descent.Descend(x0, lr, iterations)
}

// Minimize runs cfg.Iterations update steps on obj starting at x0.
//
// Example:
//
//	res, err := descent.Minimize(descent.Quadratic{A: 1, B: -4}, 0, descent.Config{
//	    Iterations: 200,
//	    Rule:       descent.NewFixed(0.1),
//	})
func Minimize(obj Objective, x0 float64, cfg Config) (*Result, error) {
	return descent.Minimize(obj, x0, cfg)
}

// Classify describes a finished trajectory.
func Classify(t Trajectory) Status {
	return descent.Classify(t)
}

// Update rules

// Rule computes the next estimate from the current one and its derivative.
type Rule = descent.Rule

// Fixed is plain fixed-step gradient descent.
type Fixed = descent.Fixed

// NewFixed creates a fixed-step rule.
func NewFixed(lr float64) *Fixed {
	return descent.NewFixed(lr)
}

// Momentum is gradient descent with heavy-ball momentum.
type Momentum = descent.Momentum

// MomentumConfig contains configuration for the Momentum rule.
type MomentumConfig = descent.MomentumConfig

// NewMomentum creates a momentum rule.
func NewMomentum(config MomentumConfig) *Momentum {
	return descent.NewMomentum(config)
}

// Adam is the Adam rule on a scalar.
type Adam = descent.Adam

// AdamConfig contains configuration for the Adam rule.
type AdamConfig = descent.AdamConfig

// NewAdam creates an Adam rule with bias correction.
func NewAdam(config AdamConfig) *Adam {
	return descent.NewAdam(config)
}
