package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"modxml.dev/pkg/modxml/internal/domain"
	m "modxml.dev/pkg/modxml/internal/model"
)

var roundTripOutputFlag string
var roundTripPrintFlag bool

// roundTripCmd represents the roundtrip command.
var roundTripCmd = newRoundTripCmd()

func newRoundTripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roundtrip <file>",
		Short: "Load and save a single XML document",
		Long: `Decode one XML document into its data object, encode it again and show
the differences. Use --write to keep the re-serialized document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := workflow.RoundTrip(cmd.Context(), domain.RoundTripArgs{
				Path:             m.Path(args[0]),
				ModelDirectories: modelDirectories(),
				Strict:           viper.GetBool(strictKey),
				Output:           m.Path(roundTripOutputFlag),
				Print:            roundTripPrintFlag,
			})
			if err != nil {
				return err
			}

			if result.Status != m.Passed {
				return fmt.Errorf("%w: %s is %s", errVerificationFailed, args[0], result.Status)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&roundTripOutputFlag, roundTripOutputFlagName, "w", "", "write the re-serialized document to this path")
	cmd.Flags().BoolVar(&roundTripPrintFlag, printFlagName, false, "print the re-serialized document")

	return cmd
}

func init() {
	rootCmd.AddCommand(roundTripCmd)
}
