// Package main is the entry point for the prn CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/preen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
