package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initForceFlag bool

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default modxml.yaml configuration file",
		Long: `Create a modxml.yaml in the current working directory holding the effective
settings (defaults, environment and flags) so it can be edited manually.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			write := viper.SafeWriteConfigAs
			if initForceFlag {
				write = viper.WriteConfigAs
			}

			if err := write(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Println("Config written:", targetPath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&initForceFlag, "force", false, "overwrite an existing config file")

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
