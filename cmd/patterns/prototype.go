// The "prototype" subcommand.
package main

import (
	"github.com/spf13/cobra"
)

var prototypeCmd = &cobra.Command{
	Use:   "prototype",
	Short: "Run the shared-behavior delegation demonstration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return newRunner(cmd).Run(runScript, "prototype")
	},
}
