// Package main is the entry point for bundle-cost CLI.
package main

import (
	"os"

	"bundle-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
