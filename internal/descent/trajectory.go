package descent

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Trajectory is the ordered record of estimates produced by a run.
// Element 0 is the starting estimate.
type Trajectory []float64

// Len returns the number of recorded estimates.
func (t Trajectory) Len() int { return len(t) }

// First returns the starting estimate. It panics on an empty trajectory.
func (t Trajectory) First() float64 { return t[0] }

// Last returns the final estimate. It panics on an empty trajectory.
func (t Trajectory) Last() float64 { return t[len(t)-1] }

// Values returns obj evaluated at every estimate.
func (t Trajectory) Values(obj Objective) []float64 {
	out := make([]float64, len(t))
	for i, x := range t {
		out[i] = obj.Value(x)
	}
	return out
}

// Magnitudes returns |x| for every estimate.
func (t Trajectory) Magnitudes() []float64 {
	out := make([]float64, len(t))
	for i, x := range t {
		out[i] = math.Abs(x)
	}
	return out
}

// Status describes how the step lengths of a trajectory evolved.
type Status int

// Trajectory classifications.
const (
	Stationary  Status = iota // No movement, or fewer than two steps to compare
	Converging                // Step lengths shrink
	Oscillating               // Step lengths stay constant
	Diverging                 // Step lengths grow or overflow
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Stationary:
		return "stationary"
	case Converging:
		return "converging"
	case Oscillating:
		return "oscillating"
	case Diverging:
		return "diverging"
	default:
		return "unknown"
	}
}

// statusTol is the relative tolerance for comparing step lengths.
const statusTol = 1e-9

// Classify compares the first and the last step length of t. Trajectories
// with fewer than two steps are Stationary.
//
// It is purely descriptive: Minimize never stops or changes a run because
// of its status.
func Classify(t Trajectory) Status {
	if len(t) < 3 {
		return Stationary
	}
	first := math.Abs(t[1] - t[0])
	last := math.Abs(t[len(t)-1] - t[len(t)-2])

	switch {
	case math.IsNaN(last) || math.IsInf(last, 0):
		return Diverging
	case first == 0:
		return Stationary
	case scalar.EqualWithinAbsOrRel(first, last, statusTol, statusTol):
		return Oscillating
	case last < first:
		return Converging
	default:
		return Diverging
	}
}
