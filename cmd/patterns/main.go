// Package main provides the patterns CLI, a driver that runs the pattern
// demonstrations and prints their results.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sghaida/patterns/demo"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var unknown demo.UnknownDemoError
		var invalid demo.InvalidScriptError
		if errors.As(err, &unknown) || errors.As(err, &invalid) {
			os.Exit(exitUserError)
		}
		os.Exit(exitSysError)
	}
}
