package descent

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by Minimize in strict mode.
var (
	ErrNegativeIterations = errors.New("negative iteration count")
	ErrNonFinite          = errors.New("non-finite input")
	ErrNoObjective        = errors.New("no objective")
)

// Descend runs iterations steps of fixed-step gradient descent on f(x) = x²
// starting at x0 with step size lr.
//
// It returns the last estimate and the trajectory of every estimate,
// including x0. The trajectory always has max(iterations, 0)+1 elements and
// its last element equals the returned estimate. Inputs are not validated:
// a non-positive iteration count returns x0 unchanged, and step sizes of 1
// or more oscillate or diverge silently.
func Descend(x0, lr float64, iterations int) (float64, Trajectory) {
	x := x0
	traj := make(Trajectory, 1, max(iterations, 0)+1)
	traj[0] = x
	for i := 0; i < max(iterations, 0); i++ {
		gradient := 2 * x
		x -= lr * gradient
		traj = append(traj, x)
	}
	return x, traj
}

// Config controls a Minimize run.
type Config struct {
	Iterations int  // Number of update steps to perform
	Rule       Rule // Update rule (default: Fixed with LR 0.01)

	// Strict rejects negative iteration counts and non-finite inputs instead
	// of running them. Off by default.
	Strict bool
}

// Result is the outcome of a Minimize run.
type Result struct {
	Final      float64    // Last estimate, equal to Trajectory.Last()
	Trajectory Trajectory // Every estimate including the start
	Iterations int        // Steps actually taken
	Status     Status     // Post-run classification, informational only
}

// Minimize runs cfg.Iterations steps of gradient descent on obj starting
// at x0.
//
// The loop has no convergence check and no early termination: it always
// performs exactly the requested number of steps. With a Fixed rule and the
// Square objective the result is identical to Descend.
func Minimize(obj Objective, x0 float64, cfg Config) (*Result, error) {
	if obj == nil {
		return nil, ErrNoObjective
	}
	rule := cfg.Rule
	if rule == nil {
		rule = NewFixed(0.01)
	}

	if cfg.Strict {
		if err := checkInputs(x0, rule.GetLR(), cfg.Iterations); err != nil {
			return nil, fmt.Errorf("minimize: %w", err)
		}
	}

	n := max(cfg.Iterations, 0)
	rule.Reset()

	x := x0
	traj := make(Trajectory, 1, n+1)
	traj[0] = x
	for i := 0; i < n; i++ {
		x = rule.Step(x, obj.Derivative(x))
		traj = append(traj, x)
	}

	return &Result{
		Final:      x,
		Trajectory: traj,
		Iterations: n,
		Status:     Classify(traj),
	}, nil
}

func checkInputs(x0, lr float64, iterations int) error {
	if iterations < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeIterations, iterations)
	}
	if math.IsNaN(x0) || math.IsInf(x0, 0) {
		return fmt.Errorf("%w: start %v", ErrNonFinite, x0)
	}
	if math.IsNaN(lr) || math.IsInf(lr, 0) {
		return fmt.Errorf("%w: step size %v", ErrNonFinite, lr)
	}
	return nil
}
