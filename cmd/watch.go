package cmd

import (
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-verify XML documents as they change",
		Long: `Watch a directory (default: xml_directory from the config) and round-trip
every XML document that is created or written, until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			if len(args) > 0 {
				dir = args[0]
			}

			watchArgs, err := verifyArgsFromConfig(dir)
			if err != nil {
				return err
			}

			return workflow.Watch(cmd.Context(), watchArgs)
		},
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
