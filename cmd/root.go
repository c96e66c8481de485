// Package cmd provides the root command and CLI setup for ctxport.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ctxport.dev/pkg/ctxport/internal/adapter"
	"ctxport.dev/pkg/ctxport/internal/controller"
	"ctxport.dev/pkg/ctxport/internal/domain"
)

var fsAdapter adapter.ContextFSAdapter
var destinationWriter adapter.DestinationWriter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

var (
	filterFlag          []string
	includeMetadataFlag bool
	extensionFlag       string
	parallelFlag        int
	manifestFlag        string
	destinationFlag     string
	logFileFlag         string
	verboseFlag         bool
)

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalContextFSAdapter()
	destinationWriter = adapter.NewLocalDestinationWriter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(
		fsAdapter,
		destinationWriter,
		reportStore,
		ui,
	)
}

const filterHelp = `Filter expressions have the form tag[:scope[:not]]:
  - draft            export items tagged draft (files and folders)
  - draft:file       whitelist draft for files only
  - chapter:dir      descend only into folders tagged chapter
  - secret:all:not   never export anything tagged secret
An empty filter exports every text file of every context folder.
Blacklisted tags always win over whitelisted ones.`

const rootLongDescription = `ctxport concatenates the text files of a tree of context folders into a
single export file. A context folder is a directory holding a .context.ini
with a priority and tags; text files may start with a metadata block
declaring their own tags.

` + filterHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ctxport",
		Short: "Export tagged context folders into one text file",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringSliceVarP(&filterFlag, filterFlagName, "f", []string{}, "filter expressions, comma separated or repeated")
	bindFlagToConfig(flags.Lookup(filterFlagName), filterConfigKey)

	flags.BoolVarP(&includeMetadataFlag, includeMetadataFlagName, "m", defaultIncludeMetadata, "keep metadata blocks in exported files")
	bindFlagToConfig(flags.Lookup(includeMetadataFlagName), includeMetadataConfigKey)

	flags.StringVar(&extensionFlag, extensionFlagName, defaultExtension, "extension of the text files to export")
	bindFlagToConfig(flags.Lookup(extensionFlagName), extensionConfigKey)

	flags.IntVarP(&parallelFlag, parallelFlagName, "p", defaultParallel, "number of workers reading folder configs and metadata")
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelConfigKey)

	flags.StringVar(&manifestFlag, manifestFlagName, "", "write a YAML manifest of the export to this path")
	bindFlagToConfig(flags.Lookup(manifestFlagName), manifestConfigKey)

	flags.StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVarP(&destinationFlag, destinationFlagName, "d", "", "export file (default export_MM_dd_HHmm.txt)")
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
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
