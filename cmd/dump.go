package cmd

import (
	"github.com/spf13/cobra"

	"modxml.dev/pkg/modxml/internal/domain"
	m "modxml.dev/pkg/modxml/internal/model"
)

// dumpCmd represents the dump command.
var dumpCmd = newDumpCmd()

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the decoded data object of an XML document as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Dump(cmd.Context(), domain.DumpArgs{
				Path:             m.Path(args[0]),
				ModelDirectories: modelDirectories(),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
