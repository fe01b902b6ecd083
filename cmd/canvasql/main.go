// Package main provides the CLI for the CanvaSQL schema designer.
package main

import (
	"os"

	"github.com/canvasql/canvasql/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
