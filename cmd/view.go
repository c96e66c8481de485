package cmd

import (
	"github.com/spf13/cobra"

	"ctxport.dev/pkg/ctxport/internal/domain"
	m "ctxport.dev/pkg/ctxport/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <manifest>",
		Short: "View a manifest written by export --manifest",
		Long:  "Display the entries and skipped items recorded in an export manifest.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{Manifest: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
