// Package main is the entry point for the etimo CLI.
package main

import (
	"os"

	"github.com/solfej/etimo/cmd/etimo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
