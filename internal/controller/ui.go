// Package controller provides the output adapters that present export plans and results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "ctxport.dev/pkg/ctxport/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeExport StartMode = iota
	ModePlan
	ModeDiff
	ModeView
	ModeFolder
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// Mode returns the configured mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// WithMode sets the mode the UI starts in.
func WithMode(mode StartMode) StartOption {
	return func(c *StartConfig) {
		c.mode = mode
	}
}

// NewStartConfig applies options over the default (export) mode.
func NewStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeExport}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines how export plans, results and folder details are presented.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context)
	DisplayPlan(ctx context.Context, report m.ExportReport) error
	DisplayExportResult(ctx context.Context, report m.ExportReport, err error) error
	DisplayDiff(ctx context.Context, destination m.Path, diff string) error
	DisplayFolderConfig(ctx context.Context, dir m.Path, cfg m.ContextFolderConfig, ok bool) error
	DisplayMessage(ctx context.Context, format string, args ...interface{})
}

// NewUI returns the interactive UI on a terminal and the plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
