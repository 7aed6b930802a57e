// Package main provides the gradient CLI.
package main

import (
	"os"

	"github.com/born-ml/gradient/cmd/gradient/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
