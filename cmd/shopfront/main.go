package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Cobra already prints the error.
		os.Exit(1)
	}
}
