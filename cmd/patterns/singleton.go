// The "singleton" subcommand.
package main

import (
	"github.com/spf13/cobra"
)

var singletonCmd = &cobra.Command{
	Use:   "singleton",
	Short: "Run the single-instance counter demonstration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return newRunner(cmd).Run(runScript, "singleton")
	},
}
