// Package cmd implements the gradient command tree.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gradient",
		Short: "Fixed-step gradient descent on scalar functions",
		Long: `Gradient runs textbook gradient descent on f(x) = x^2 (or another
quadratic), prints where it ended up and can plot the trajectory.

The loop always performs the requested number of iterations. Step sizes
of 1 or more oscillate or diverge; the run summary reports it.`,
		SilenceUsage: true,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newSweepCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
