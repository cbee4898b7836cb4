package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errVerificationFailed makes the process exit non-zero when documents did not survive the round trip.
var errVerificationFailed = errors.New("round-trip verification failed")

var verifyFormatsFlag []string
var verifyParallelFlag bool
var verifyMaxParallelismFlag int
var verifySizeThresholdFlag int64

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [dir]",
		Short: "Round-trip every XML document of a directory",
		Long:  verifyLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			if len(args) > 0 {
				dir = args[0]
			}

			verifyArgs, err := verifyArgsFromConfig(dir)
			if err != nil {
				return err
			}

			summary, err := workflow.Verify(cmd.Context(), verifyArgs)
			if err != nil {
				return err
			}

			if summary.Cancelled {
				return fmt.Errorf("%w: cancelled with %d file(s) skipped", errVerificationFailed, summary.Skipped)
			}

			if broken := summary.Failed + summary.Errored; broken > 0 {
				return fmt.Errorf("%w: %d of %d file(s)", errVerificationFailed, broken, summary.Total())
			}

			return nil
		},
	}

	configureVerifyFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func configureVerifyFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&verifyFormatsFlag, formatFlagName, "f", defaultOutputFormats, "report formats: console, markdown, csv, json, html")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), outputFormatsKey)

	cmd.Flags().BoolVar(&verifyParallelFlag, parallelFlagName, defaultParallel, "verify documents concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelKey)

	cmd.Flags().IntVarP(&verifyMaxParallelismFlag, maxParallelismFlagName, "p", defaultMaxParallelism, "maximum number of concurrent workers")
	bindFlagToConfig(cmd.Flags().Lookup(maxParallelismFlagName), maxParallelismKey)

	cmd.Flags().Int64Var(&verifySizeThresholdFlag, sizeThresholdFlagName, defaultFileSizeThreshold, "size in bytes above which a document is reported as large")
	bindFlagToConfig(cmd.Flags().Lookup(sizeThresholdFlagName), fileSizeThresholdKey)
}
