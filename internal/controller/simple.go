package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "ctxport.dev/pkg/ctxport/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd     *cobra.Command
	success *color.Color
	fail    *color.Color
	warn    *color.Color
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{
		cmd:     cmd,
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
	}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayPlan prints the traversal order and the rejected candidates.
func (s *SimpleUI) DisplayPlan(ctx context.Context, report m.ExportReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Source: %s\n", report.Source)

	if report.Filter != "" {
		s.printf("Filter: %s\n", report.Filter)
	}

	s.printf("\n%s", renderEntriesTable(report))

	if len(report.Rejections) > 0 {
		s.printf("\n%s", renderRejectionsTable(report.Rejections))
	}

	return nil
}

// DisplayExportResult prints a one-line outcome of an export.
func (s *SimpleUI) DisplayExportResult(ctx context.Context, report m.ExportReport, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.colorf(s.fail, "export failed: %v\n", err)
		s.printf("destination %s was left unchanged\n", report.Destination)

		return nil
	}

	s.colorf(s.success, "exported %d file(s) from %d context folder(s) to %s (%d bytes)\n",
		report.FileCount(), report.DirCount(), report.Destination, report.TotalBytes())

	if len(report.Rejections) > 0 {
		s.colorf(s.warn, "skipped %d item(s)\n", len(report.Rejections))
	}

	return nil
}

// DisplayDiff prints a unified diff between the destination and a fresh render.
func (s *SimpleUI) DisplayDiff(ctx context.Context, destination m.Path, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		s.colorf(s.success, "%s is up to date\n", destination)
		return nil
	}

	s.printf("%s", diff)

	return nil
}

// DisplayFolderConfig prints the configuration of a directory.
func (s *SimpleUI) DisplayFolderConfig(ctx context.Context, dir m.Path, cfg m.ContextFolderConfig, ok bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !ok {
		s.colorf(s.warn, "%s is not a context folder\n", dir)
		return nil
	}

	s.printf("%s\n", dir)
	s.printf("  priority: %d\n", cfg.Priority)
	s.printf("  tags:     %s\n", strings.Join(cfg.Tags, ", "))

	return nil
}

// DisplayMessage prints a plain status line.
func (s *SimpleUI) DisplayMessage(ctx context.Context, format string, args ...interface{}) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf(format+"\n", args...)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) colorf(c *color.Color, format string, args ...interface{}) {
	_, _ = c.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderEntriesTable(report m.ExportReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Kind", "Path", "Priority", "Tags"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for i, entry := range report.Entries {
		priority := ""
		if entry.Kind == m.KindDir {
			priority = strconv.Itoa(entry.Priority)
		}

		table.Append([]string{
			strconv.Itoa(i + 1),
			string(entry.Kind),
			indentPath(entry),
			priority,
			strings.Join(entry.Tags, ", "),
		})
	}

	table.SetFooter([]string{
		"",
		"",
		fmt.Sprintf("Files %d", report.FileCount()),
		fmt.Sprintf("Folders %d", report.DirCount()),
		fmt.Sprintf("%d bytes", report.TotalBytes()),
	})

	table.Render()

	return tableBuffer.String()
}

func renderRejectionsTable(rejections []m.Rejection) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Skipped", "Kind", "Reason", "Tags"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, rejection := range rejections {
		table.Append([]string{
			string(rejection.Path),
			string(rejection.Kind),
			string(rejection.Reason),
			strings.Join(rejection.Tags, ", "),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func indentPath(entry m.ExportEntry) string {
	return strings.Repeat("  ", entry.Depth) + string(entry.Path)
}
