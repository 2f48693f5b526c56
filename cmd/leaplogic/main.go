// Package main provides the CLI for the LeapLogic truth table calculator.
package main

import (
	"os"

	"github.com/leapstack-labs/leaplogic/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
