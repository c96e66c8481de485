package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"ctxport.dev/pkg/ctxport/internal/domain"
)

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [source]",
		Short: "Show what an export would include without writing it",
		Long: `Walk the context folder tree exactly as export does and list the files
and folders in output order, together with everything the filter skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Plan(cmd.Context(), domain.PlanArgs{Job: buildJob(args, time.Now())})
		},
	}
}

func init() {
	rootCmd.AddCommand(planCmd)
}
