package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/polyfence"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "create a build settings file",
	Long: `Create a build settings file in YAML format, prefilled with the
compiled-in defaults.

If FILE is not provided, 'polyfence.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "polyfence.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if ok, err := confirmIfExists(path,
			fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path)); !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}
		check(polyfence.SaveConfig(polyfence.DefaultConfig(), path))
		fmt.Printf("build settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
