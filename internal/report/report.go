// Package report presents finished optimisation runs: a console summary,
// a CSV dump of the trajectory and a plot of the objective with the
// trajectory overlaid.
//
// Nothing in this package modifies a run.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/born-ml/gradient/internal/descent"
)

// Run is a finished optimisation run together with the settings that
// produced it.
type Run struct {
	ID        string
	Objective descent.Objective
	Rule      string
	LR        float64
	Start     float64
	Result    *descent.Result
}

// Summary writes a short human-readable description of r.
func Summary(w io.Writer, r Run) error {
	_, err := fmt.Fprintf(w,
		"The local minimum occurs at %v\n"+
			"  run:        %s\n"+
			"  objective:  %s\n"+
			"  rule:       %s (lr %v)\n"+
			"  start:      %v\n"+
			"  iterations: %d\n"+
			"  status:     %s\n",
		r.Result.Final, r.ID, objectiveName(r.Objective), r.Rule, r.LR,
		r.Start, r.Result.Iterations, r.Result.Status)
	return err
}

// WriteCSV writes one "iteration,x,f(x)" row per trajectory estimate.
func WriteCSV(w io.Writer, r Run) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"iteration", "x", "f(x)"}); err != nil {
		return err
	}

	values := r.Result.Trajectory.Values(r.Objective)
	for i, x := range r.Result.Trajectory {
		if err := cw.Write([]string{strconv.Itoa(i), f(x), f(values[i])}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func objectiveName(obj descent.Objective) string {
	if s, ok := obj.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", obj)
}
