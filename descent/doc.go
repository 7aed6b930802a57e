// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package descent provides gradient descent on scalar functions.
//
// # Overview
//
// This package contains:
//   - Descend: fixed-step gradient descent on f(x) = x²
//   - Minimize: the same loop over any Objective with a pluggable Rule
//   - Rules: Fixed, Momentum, Adam
//   - Classify: post-run description of a trajectory
//
// # Basic Usage
//
//	import "github.com/born-ml/gradient/descent"
//
//	func main() {
//	    final, traj := descent.Descend(5, 0.01, 1000)
//	    fmt.Println("The local minimum occurs at", final)
//	    fmt.Println("steps:", traj.Len()-1)
//	}
//
// # Behaviour
//
// The loop always performs exactly the requested number of iterations.
// There is no convergence test and no step-size check: on f(x) = x² a step
// size of 1 oscillates between x0 and -x0, and anything larger diverges.
// Classify reports this after the fact without changing the run.
//
// Minimize accepts Config.Strict to reject negative iteration counts and
// non-finite inputs. Descend never validates.
package descent
