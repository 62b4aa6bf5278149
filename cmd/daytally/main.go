// Package main is the entry point for the daytally CLI/TUI.
package main

import (
	"os"

	"github.com/daytally-io/daytally/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
