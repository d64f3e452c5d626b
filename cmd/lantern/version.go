// Version command for the lantern CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/impact-mesh/lantern/pkg/lantern"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lantern version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lantern", lantern.Version)
	},
}
