// Package descent implements fixed-step gradient descent on scalar functions.
//
// The package provides:
//   - Descend: plain gradient descent on f(x) = x², returning the trajectory
//   - Minimize: the same loop over any Objective with a pluggable update Rule
//   - Rules: Fixed (x -= lr*g), Momentum and Adam
//   - Trajectory helpers and a post-run Status classification
//
// Runs are pure functions of their inputs. Every call owns its trajectory,
// and nothing is shared between calls, so independent runs may execute
// concurrently.
//
// Example usage:
//
//	final, traj := descent.Descend(5, 0.01, 1000)
//	fmt.Println("The local minimum occurs at", final, "after", traj.Len()-1, "steps")
//
//	// Same loop on a different objective with momentum.
//	res, err := descent.Minimize(descent.Quadratic{A: 1, B: -4}, 0, descent.Config{
//	    Iterations: 200,
//	    Rule:       descent.NewMomentum(descent.MomentumConfig{LR: 0.05, Momentum: 0.9}),
//	})
package descent
