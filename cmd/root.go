// Package cmd provides the root command and CLI setup for modxml.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"modxml.dev/pkg/modxml/internal/adapter"
	"modxml.dev/pkg/modxml/internal/controller"
	"modxml.dev/pkg/modxml/internal/domain"
	m "modxml.dev/pkg/modxml/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var definitionStore adapter.DefinitionStore
var reportStore adapter.ReportStore
var comparator domain.Comparator
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that write reports.
var reportsOutputDirFlag string

// modelDirsFlag lists directories holding model definition files.
var modelDirsFlag []string

// excludePatterns is a root-level flag that filters files for batch commands.
var excludePatterns []string

var recursiveFlag bool
var strictFlag bool
var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	definitionStore = adapter.NewYAMLDefinitionStore(fsAdapter)
	reportStore = adapter.NewReportStore(fsAdapter)
	comparator = domain.NewComparator()
	workflow = domain.NewWorkflow(
		fsAdapter,
		definitionStore,
		reportStore,
		ui,
		comparator,
	)
}

const rootLongDescription = `modxml verifies that module XML data files survive a load and save cycle
through their typed data objects without losing or changing content.

Every document is parsed, decoded into the data object registered for it,
encoded again and structurally compared with the source. Differences are
reported per category: missing and extra nodes, renamed nodes, missing,
extra and changed attributes, and changed text.`

const verifyLongDescription = `Round-trip every XML document of a directory (default: xml_directory from
the config) and report the documents whose structure changed.

Documents are matched to data objects by model definition files (--models),
then by file name, then by their root element.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modxml",
		Short: "Round-trip verification for module XML data",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
}

// newRootCmd returns a bare root command with the persistent flags wired,
// used by tests to attach single sub-commands.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			defaultReportsDir,
			"output directory for report files",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputDirectoryKey)

	cmd.PersistentFlags().StringSliceVarP(&modelDirsFlag, modelsFlagName, "m", nil, "directories with model definition files (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(modelsFlagName), modelDirectoriesKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", defaultExcludePatterns, "exclude files matching glob (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&recursiveFlag, recursiveFlagName, "r", defaultRecursive, "descend into sub-directories")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(recursiveFlagName), recursiveKey)

	cmd.PersistentFlags().BoolVar(&strictFlag, strictFlagName, defaultStrict, "fail documents with content no model field maps")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(strictFlagName), strictKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt cancels the running command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
