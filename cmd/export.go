package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ctxport.dev/pkg/ctxport/internal/domain"
	m "ctxport.dev/pkg/ctxport/internal/model"
)

const (
	defaultSource            = "."
	defaultDestinationPrefix = "export_"
	defaultDestinationLayout = "01_02_1504"
)

const exportLongDescription = `Export the context folder tree rooted at source (default: current
directory) into a single text file.

Files are appended in name order; sub-folders follow in ascending priority.
The destination is replaced only when the whole export succeeds.

` + filterHelp

// exportCmd represents the export command.
var exportCmd = newExportCmd()

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [source]",
		Short: "Export context folders into one text file",
		Long:  exportLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Export(cmd.Context(), domain.ExportArgs{
				Job:      buildJob(args, time.Now()),
				Manifest: m.Path(viper.GetString(manifestConfigKey)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

// buildJob assembles an export job from the positional source and the
// configured flags.
func buildJob(args []string, now time.Time) m.ExportJob {
	source := defaultSource
	if len(args) > 0 {
		source = args[0]
	}

	return m.ExportJob{
		Source:          m.Path(source),
		Destination:     resolveDestination(destinationFlag, now),
		Filter:          filterExpressions(viper.GetStringSlice(filterConfigKey)),
		IncludeMetadata: viper.GetBool(includeMetadataConfigKey),
		Extension:       viper.GetString(extensionConfigKey),
		Parallel:        viper.GetInt(parallelConfigKey),
	}
}

func resolveDestination(destination string, now time.Time) m.Path {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return m.Path(defaultDestinationName(now))
	}

	return m.Path(ensureTextExtension(destination))
}

func defaultDestinationName(now time.Time) string {
	return defaultDestinationPrefix + now.Format(defaultDestinationLayout) + m.DefaultTextExtension
}

func ensureTextExtension(name string) string {
	if strings.HasSuffix(name, m.DefaultTextExtension) {
		return name
	}

	return name + m.DefaultTextExtension
}
