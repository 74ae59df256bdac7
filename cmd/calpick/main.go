// Package main is the entry point for calpick, a terminal date and time
// picker.
package main

import (
	"errors"
	"fmt"
	"os"
)

const version = "0.1.0"

// Exit codes.
const (
	exitError     = 1
	exitCancelled = 2
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errCancelled) {
			os.Exit(exitCancelled)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
}
