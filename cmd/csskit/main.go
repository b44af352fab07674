// Package main provides the csskit CLI for compiling YAML stylesheet
// manifests to CSS and checking emitted CSS files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
