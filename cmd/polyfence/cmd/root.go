package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "polyfence",
	Short: "enclose weighted points in a low-cost rectilinear polygon",
	Long: `polyfence reads a set of weighted 2D points and a minimum coverage K,
then searches for the lowest-cost simply-connected axis-aligned polygon
that encloses at least K points, where cost is the polygon's perimeter
plus the sum of the weights of every point it encloses.

	- solve an instance read from a file or standard input,
	- write a build settings file (YAML) with tunable defaults,
	- show parsed information about an instance without solving it.`,
}

// Execute adds all child commands to the root command and runs it. It is
// called by main.main() and must only be called once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}
