// Package domain holds the export engine: filter compilation, admission,
// traversal and the workflow driving them from the command line.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"

	"ctxport.dev/pkg/ctxport/internal/adapter"
	"ctxport.dev/pkg/ctxport/internal/controller"
	m "ctxport.dev/pkg/ctxport/internal/model"
)

const diffContextLines = 3

// ExportArgs contains the arguments for an export.
type ExportArgs struct {
	Job      m.ExportJob
	Manifest m.Path
}

// PlanArgs contains the arguments for a dry run.
type PlanArgs struct {
	Job m.ExportJob
}

// DiffArgs contains the arguments for comparing a fresh render with the destination.
type DiffArgs struct {
	Job m.ExportJob
}

// ViewArgs contains the arguments for displaying a saved manifest.
type ViewArgs struct {
	Manifest m.Path
}

// FolderArgs contains the arguments for creating or inspecting a context folder.
type FolderArgs struct {
	Dir      m.Path
	Priority int
	Tags     []string
}

// MetadataArgs contains the arguments for adding a metadata block to a file.
type MetadataArgs struct {
	File m.Path
	Tags []string
	Note string
}

// Workflow defines the operations exposed by the command line.
type Workflow interface {
	Export(ctx context.Context, args ExportArgs) error
	Plan(ctx context.Context, args PlanArgs) error
	Diff(ctx context.Context, args DiffArgs) error
	View(ctx context.Context, args ViewArgs) error
	InitFolder(ctx context.Context, args FolderArgs) error
	ShowFolder(ctx context.Context, args FolderArgs) error
	AddMetadata(ctx context.Context, args MetadataArgs) error
}

// ExporterFactory builds the Exporter used for one job.
type ExporterFactory func(job m.ExportJob) Exporter

type workflow struct {
	adapter.ContextFSAdapter
	adapter.ReportStore
	controller.UI
	newExporter ExporterFactory
}

// NewWorkflow creates a Workflow wired to the given adapters and UI.
func NewWorkflow(
	fsAdapter adapter.ContextFSAdapter,
	destination adapter.DestinationWriter,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return NewWorkflowWithExporter(fsAdapter, reportStore, ui, func(job m.ExportJob) Exporter {
		return NewExporter(fsAdapter, destination, job)
	})
}

// NewWorkflowWithExporter creates a Workflow that builds exporters with factory.
func NewWorkflowWithExporter(
	fsAdapter adapter.ContextFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	factory ExporterFactory,
) Workflow {
	return &workflow{
		ContextFSAdapter: fsAdapter,
		ReportStore:      reportStore,
		UI:               ui,
		newExporter:      factory,
	}
}

func (w *workflow) Export(ctx context.Context, args ExportArgs) error {
	if err := w.Start(ctx, controller.WithMode(controller.ModeExport)); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	report, exportErr := w.newExporter(args.Job).Export(ctx)

	if err := w.DisplayExportResult(ctx, report, exportErr); err != nil {
		return fmt.Errorf("display result: %w", err)
	}

	if exportErr != nil {
		return fmt.Errorf("export: %w", exportErr)
	}

	if args.Manifest != "" {
		if err := w.SaveReport(args.Manifest, report); err != nil {
			return fmt.Errorf("save manifest: %w", err)
		}

		slog.Info("saved manifest", "run_id", report.RunID, "path", args.Manifest)
	}

	return nil
}

func (w *workflow) Plan(ctx context.Context, args PlanArgs) error {
	if err := w.Start(ctx, controller.WithMode(controller.ModePlan)); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	report, err := w.newExporter(args.Job).Plan(ctx)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	if err := w.DisplayPlan(ctx, report); err != nil {
		return fmt.Errorf("display plan: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) Diff(ctx context.Context, args DiffArgs) error {
	if err := w.Start(ctx, controller.WithMode(controller.ModeDiff)); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	rendered, _, err := w.newExporter(args.Job).Render(ctx)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	current, err := w.ReadFile(args.Job.Destination)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read destination: %w", err)
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(rendered)),
		FromFile: string(args.Job.Destination),
		ToFile:   string(args.Job.Source),
		Context:  diffContextLines,
	})
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}

	slog.Debug("computed diff", "destination", args.Job.Destination, "changed", diff != "")

	if err := w.DisplayDiff(ctx, args.Job.Destination, diff); err != nil {
		return fmt.Errorf("display diff: %w", err)
	}

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := w.Start(ctx, controller.WithMode(controller.ModeView)); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	report, err := w.LoadReport(args.Manifest)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	if err := w.DisplayPlan(ctx, report); err != nil {
		return fmt.Errorf("display manifest: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) InitFolder(ctx context.Context, args FolderArgs) error {
	if err := w.Start(ctx, controller.WithMode(controller.ModeFolder)); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	tags := args.Tags
	if tags == nil {
		tags = []string{}
	}

	cfg := m.ContextFolderConfig{Priority: args.Priority, Tags: tags}
	if err := w.WriteFolderConfig(args.Dir, cfg); err != nil {
		return fmt.Errorf("create context folder: %w", err)
	}

	slog.Info("created context folder", "dir", args.Dir, "priority", cfg.Priority, "tags", cfg.Tags)

	return w.DisplayFolderConfig(ctx, args.Dir, cfg, true)
}

func (w *workflow) ShowFolder(ctx context.Context, args FolderArgs) error {
	if err := w.Start(ctx, controller.WithMode(controller.ModeFolder)); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	cfg, ok, err := w.ReadFolderConfig(args.Dir)
	if err != nil {
		return fmt.Errorf("read folder config: %w", err)
	}

	return w.DisplayFolderConfig(ctx, args.Dir, cfg, ok)
}

func (w *workflow) AddMetadata(ctx context.Context, args MetadataArgs) error {
	if err := w.Start(ctx, controller.WithMode(controller.ModeFolder)); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	added, err := w.AddMetadataBlock(args.File, args.Tags, args.Note)
	if err != nil {
		return fmt.Errorf("add metadata: %w", err)
	}

	if !added {
		w.DisplayMessage(ctx, "%s already has a metadata block", args.File)
		return nil
	}

	slog.Info("added metadata block", "file", args.File, "tags", args.Tags)
	w.DisplayMessage(ctx, "added metadata block to %s", args.File)

	return nil
}
