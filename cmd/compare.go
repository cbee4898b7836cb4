package cmd

import (
	"github.com/spf13/cobra"

	"modxml.dev/pkg/modxml/internal/domain"
	m "modxml.dev/pkg/modxml/internal/model"
)

var compareRawFlag bool

// compareCmd represents the compare command.
var compareCmd = newCompareCmd()

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Structurally compare two XML documents",
		Long: `Compare two XML documents node by node and list every difference by category.

Attribute values are normalized before comparison unless --raw is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Compare(cmd.Context(), domain.CompareArgs{
				A:   m.Path(args[0]),
				B:   m.Path(args[1]),
				Raw: compareRawFlag,
			})

			return err
		},
	}

	cmd.Flags().BoolVar(&compareRawFlag, rawFlagName, false, "compare attribute values byte for byte")

	return cmd
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
