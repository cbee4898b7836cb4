package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"modxml.dev/pkg/modxml/internal/domain"
	m "modxml.dev/pkg/modxml/internal/model"
)

// unadaptedCmd represents the unadapted command.
var unadaptedCmd = newUnadaptedCmd()

func newUnadaptedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unadapted [dir]",
		Short: "List XML files no data object is bound to",
		Long: `List the XML files of a directory (default: xml_directory from the config)
whose file name maps to no registered data object, with the model name the
naming convention expects and a size-based complexity estimate.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			directory := viper.GetString(xmlDirectoryKey)
			if len(args) > 0 {
				directory = args[0]
			}

			_, err := workflow.Unadapted(cmd.Context(), domain.UnadaptedArgs{
				Directory:        m.Path(directory),
				ModelDirectories: modelDirectories(),
				Recursive:        viper.GetBool(recursiveKey),
				Exclude:          viper.GetStringSlice(excludeConfigKey),
			})

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(unadaptedCmd)
}
