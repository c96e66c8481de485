package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "ctxport.dev/pkg/ctxport/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dirStyle   = lipgloss.NewStyle().Bold(true)
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	skipStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// reservedLines is the header plus footer height of the plan pager.
const reservedLines = 4

// TUI implements UI with a Bubble Tea pager for long plans. Everything other
// than plans is printed the same way SimpleUI prints it.
type TUI struct {
	*SimpleUI
	output io.Writer
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		output:   cmd.OutOrStdout(),
	}
}

// DisplayPlan prints the plan, or pages it when it does not fit the terminal.
func (t *TUI) DisplayPlan(ctx context.Context, report m.ExportReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newPlanModel(report)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.plainView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// planModel is the Bubble Tea model for paging an export plan.
type planModel struct {
	title    string
	lines    []string
	viewport viewport.Model
	height   int
	quitting bool
}

func newPlanModel(report m.ExportReport) planModel {
	lines := renderPlanLines(report)

	vp := viewport.New(0, 0)
	vp.SetContent(strings.Join(lines, "\n"))

	return planModel{
		title:    fmt.Sprintf("ctxport plan: %s", report.Source),
		lines:    lines,
		viewport: vp,
	}
}

func (pm planModel) resize(width, height int) planModel {
	pm.height = height
	pm.viewport.Width = width

	pm.viewport.Height = height - reservedLines
	if pm.viewport.Height < 1 {
		pm.viewport.Height = 1
	}

	return pm
}

// needsPagination returns true if the plan is taller than the terminal.
func (pm planModel) needsPagination() bool {
	return pm.height > 0 && len(pm.lines)+reservedLines > pm.height
}

func (pm planModel) Init() tea.Cmd {
	return nil
}

func (pm planModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return pm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm planModel) View() string {
	if pm.quitting {
		return ""
	}

	footer := helpStyle.Render(fmt.Sprintf("%3.0f%%  j/k scroll  q quit", pm.viewport.ScrollPercent()*100))

	return titleStyle.Render(pm.title) + "\n\n" + pm.viewport.View() + "\n" + footer
}

func (pm planModel) plainView() string {
	return titleStyle.Render(pm.title) + "\n\n" + strings.Join(pm.lines, "\n") + "\n"
}

func renderPlanLines(report m.ExportReport) []string {
	lines := make([]string, 0, len(report.Entries)+len(report.Rejections)+2)

	for _, entry := range report.Entries {
		indent := strings.Repeat("  ", entry.Depth)
		tags := ""

		if len(entry.Tags) > 0 {
			tags = " " + tagStyle.Render("["+strings.Join(entry.Tags, ", ")+"]")
		}

		if entry.Kind == m.KindDir {
			lines = append(lines, fmt.Sprintf("%s%s (priority %d)%s",
				indent, dirStyle.Render(string(entry.Path)+"/"), entry.Priority, tags))

			continue
		}

		lines = append(lines, fmt.Sprintf("%s%s%s", indent, entry.Path, tags))
	}

	if len(report.Entries) == 0 {
		lines = append(lines, "  nothing to export")
	}

	if len(report.Rejections) > 0 {
		lines = append(lines, "", skipStyle.Render(fmt.Sprintf("skipped %d item(s):", len(report.Rejections))))

		for _, rejection := range report.Rejections {
			lines = append(lines, skipStyle.Render(fmt.Sprintf("  %s (%s)", rejection.Path, rejection.Reason)))
		}
	}

	lines = append(lines, fmt.Sprintf("\n%d file(s), %d folder(s), %d bytes",
		report.FileCount(), report.DirCount(), report.TotalBytes()))

	return lines
}
