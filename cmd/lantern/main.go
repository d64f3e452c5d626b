// Package main provides the lantern CLI: an indicator catalog browser,
// bulk project attachment, and evidence linking over a shared store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
