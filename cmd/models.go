package cmd

import (
	"github.com/spf13/cobra"

	"modxml.dev/pkg/modxml/internal/domain"
)

// modelsCmd represents the models command.
var modelsCmd = newModelsCmd()

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the registered data objects",
		Long: `List every registered data object with its root element and the file
patterns bound to it by model definition files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := workflow.Models(cmd.Context(), domain.ModelsArgs{
				ModelDirectories: modelDirectories(),
			})

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
