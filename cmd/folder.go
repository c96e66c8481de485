package cmd

import (
	"github.com/spf13/cobra"

	"ctxport.dev/pkg/ctxport/internal/domain"
	m "ctxport.dev/pkg/ctxport/internal/model"
)

const (
	priorityFlagName = "priority"
	tagsFlagName     = "tags"
	noteFlagName     = "note"
)

var (
	folderPriorityFlag int
	folderTagsFlag     []string
)

// folderCmd groups the context folder commands.
var folderCmd = newFolderCmd()

func newFolderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Create or inspect context folders",
	}

	cmd.AddCommand(newFolderInitCmd(), newFolderShowCmd())

	return cmd
}

func newFolderInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <dir>",
		Short: "Turn a directory into a context folder",
		Long: `Write a .context.ini with the given priority and tags into dir.
An existing .context.ini is never overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.InitFolder(cmd.Context(), domain.FolderArgs{
				Dir:      m.Path(args[0]),
				Priority: folderPriorityFlag,
				Tags:     m.SplitTags(joinTags(folderTagsFlag)),
			})
		},
	}

	cmd.Flags().IntVar(&folderPriorityFlag, priorityFlagName, 0, "export order among sibling folders (lower first)")
	cmd.Flags().StringSliceVar(&folderTagsFlag, tagsFlagName, []string{}, "folder tags, comma separated")

	return cmd
}

func newFolderShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <dir>",
		Short: "Print the context folder configuration of dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.ShowFolder(cmd.Context(), domain.FolderArgs{Dir: m.Path(args[0])})
		},
	}
}

func init() {
	rootCmd.AddCommand(folderCmd)
}
