package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"ctxport.dev/pkg/ctxport/internal/domain"
	m "ctxport.dev/pkg/ctxport/internal/model"
)

var (
	metaTagsFlag []string
	metaNoteFlag string
)

// metaCmd groups the file metadata commands.
var metaCmd = newMetaCmd()

func newMetaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meta",
		Short: "Manage metadata blocks of text files",
	}

	cmd.AddCommand(newMetaAddCmd())

	return cmd
}

func newMetaAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Prepend a metadata block to a text file",
		Long: `Insert the standard #METADATA_START ... #METADATA_END block with the
given tags and note at the top of file. Files that already start with a
metadata block are left alone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.AddMetadata(cmd.Context(), domain.MetadataArgs{
				File: m.Path(args[0]),
				Tags: m.SplitTags(joinTags(metaTagsFlag)),
				Note: metaNoteFlag,
			})
		},
	}

	cmd.Flags().StringSliceVar(&metaTagsFlag, tagsFlagName, []string{}, "file tags, comma separated")
	cmd.Flags().StringVar(&metaNoteFlag, noteFlagName, "", "free text note")

	return cmd
}

func init() {
	rootCmd.AddCommand(metaCmd)
}

func joinTags(values []string) string {
	return strings.Join(values, m.TagDelimiter)
}
