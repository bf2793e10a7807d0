// Package main provides the simpleconfig CLI for inspecting and editing
// key=<literal> config files without the application that owns them.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
