package cmd

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"ctxport.dev/pkg/ctxport/internal/domain"
)

var errDestinationRequired = errors.New("diff needs an existing export, pass it with --destination")

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff [source] --destination FILE",
		Short: "Compare a fresh export with an existing export file",
		Long: `Render the export in memory and print a unified diff against the
destination file. An empty diff means the destination is up to date.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if destinationFlag == "" {
				return errDestinationRequired
			}

			return workflow.Diff(cmd.Context(), domain.DiffArgs{Job: buildJob(args, time.Now())})
		},
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
