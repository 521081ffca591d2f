// The "proxy" subcommand.
package main

import (
	"github.com/spf13/cobra"
)

var proxyCmd = &cobra.Command{
	Use:   "proxy",
	Short: "Run the mediated-access demonstration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return newRunner(cmd).Run(runScript, "proxy")
	},
}
