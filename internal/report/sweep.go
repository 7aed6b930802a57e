package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/born-ml/gradient/internal/sweep"
)

// SweepTable writes one aligned row per sweep point. Failed runs are listed
// with "error" in place of a result.
func SweepTable(w io.Writer, points []sweep.Point) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LR\tFINAL\tSTATUS")
	for _, p := range points {
		if p.Result == nil {
			fmt.Fprintf(tw, "%v\t-\terror\n", p.LR)
			continue
		}
		fmt.Fprintf(tw, "%v\t%.6g\t%s\n", p.LR, p.Result.Final, p.Result.Status)
	}
	return tw.Flush()
}
