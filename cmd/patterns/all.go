// The "all" subcommand: run every demonstration in registry order.
package main

import (
	"github.com/spf13/cobra"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run all demonstrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return newRunner(cmd).Run(runScript)
	},
}
