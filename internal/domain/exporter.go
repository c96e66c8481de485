package domain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"ctxport.dev/pkg/ctxport/internal/adapter"
	m "ctxport.dev/pkg/ctxport/internal/model"
)

// Exporter concatenates the admitted text files of a context folder tree.
type Exporter interface {
	// SetFilter replaces the compiled filter.
	SetFilter(expressions []string)
	// Filter returns the compiled filter.
	Filter() m.FilterSpec
	// Export writes the output to the destination and reports what was visited.
	Export(ctx context.Context) (m.ExportReport, error)
	// Plan visits the tree exactly as Export would without writing anything.
	Plan(ctx context.Context) (m.ExportReport, error)
	// Render produces the output in memory.
	Render(ctx context.Context) ([]byte, m.ExportReport, error)
}

type exporter struct {
	fsAdapter   adapter.ContextFSAdapter
	destination adapter.DestinationWriter
	job         m.ExportJob
	filter      m.FilterSpec
}

// NewExporter builds an Exporter for job. The filter is compiled once here.
func NewExporter(
	fsAdapter adapter.ContextFSAdapter,
	destination adapter.DestinationWriter,
	job m.ExportJob,
) Exporter {
	if job.Extension == "" {
		job.Extension = m.DefaultTextExtension
	}

	if !strings.HasPrefix(job.Extension, ".") {
		job.Extension = "." + job.Extension
	}

	if job.Parallel < 1 {
		job.Parallel = 1
	}

	return &exporter{
		fsAdapter:   fsAdapter,
		destination: destination,
		job:         job,
		filter:      ParseFilter(job.Filter),
	}
}

func (e *exporter) SetFilter(expressions []string) {
	e.job.Filter = expressions
	e.filter = ParseFilter(expressions)
}

func (e *exporter) Filter() m.FilterSpec {
	return e.filter
}

func (e *exporter) Export(ctx context.Context) (m.ExportReport, error) {
	report := e.newReport(false)

	root, err := e.checkSource()
	if err != nil {
		return report, err
	}

	dest, err := e.fsAdapter.AbsPath(e.job.Destination)
	if err != nil {
		return report, fmt.Errorf("resolve destination: %w", err)
	}

	sink, err := e.destination.Open(dest)
	if err != nil {
		return report, fmt.Errorf("open destination: %w", err)
	}

	slog.Info("export started", "run_id", report.RunID, "source", root, "destination", dest, "filter", report.Filter)

	if err := e.traverse(ctx, root, dest, sink, &report); err != nil {
		if abortErr := sink.Abort(); abortErr != nil {
			slog.Warn("failed to discard partial export", "run_id", report.RunID, "error", abortErr)
		}

		slog.Error("export failed", "run_id", report.RunID, "error", err)

		return e.finish(report), err
	}

	if err := sink.Commit(); err != nil {
		return e.finish(report), fmt.Errorf("commit destination: %w", err)
	}

	report = e.finish(report)

	slog.Info("export finished",
		"run_id", report.RunID,
		"files", report.FileCount(),
		"folders", report.DirCount(),
		"bytes", report.TotalBytes(),
		"duration", report.Duration)

	return report, nil
}

func (e *exporter) Plan(ctx context.Context) (m.ExportReport, error) {
	report := e.newReport(true)

	root, err := e.checkSource()
	if err != nil {
		return report, err
	}

	dest, err := e.resolveSkip()
	if err != nil {
		return report, err
	}

	err = e.traverse(ctx, root, dest, io.Discard, &report)

	return e.finish(report), err
}

func (e *exporter) Render(ctx context.Context) ([]byte, m.ExportReport, error) {
	report := e.newReport(true)

	root, err := e.checkSource()
	if err != nil {
		return nil, report, err
	}

	dest, err := e.resolveSkip()
	if err != nil {
		return nil, report, err
	}

	var buffer bytes.Buffer
	if err := e.traverse(ctx, root, dest, &buffer, &report); err != nil {
		return nil, e.finish(report), err
	}

	return buffer.Bytes(), e.finish(report), nil
}

func (e *exporter) traverse(ctx context.Context, root, skip m.Path, out io.Writer, report *m.ExportReport) error {
	t := &traversal{
		fsAdapter:       e.fsAdapter,
		filter:          e.filter,
		includeMetadata: e.job.IncludeMetadata,
		extension:       e.job.Extension,
		parallel:        e.job.Parallel,
		root:            root,
		skip:            skip,
		out:             out,
		report:          report,
	}

	return t.walk(ctx, root, 0)
}

// checkSource returns the absolute source path after making sure it is a directory.
func (e *exporter) checkSource() (m.Path, error) {
	info, err := e.fsAdapter.FileInfo(e.job.Source)
	if err != nil {
		return "", fmt.Errorf("source %s: %w", e.job.Source, err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("source %s: %w", e.job.Source, m.ErrNotDirectory)
	}

	root, err := e.fsAdapter.AbsPath(e.job.Source)
	if err != nil {
		return "", fmt.Errorf("resolve source: %w", err)
	}

	return root, nil
}

func (e *exporter) resolveSkip() (m.Path, error) {
	if e.job.Destination == "" {
		return "", nil
	}

	dest, err := e.fsAdapter.AbsPath(e.job.Destination)
	if err != nil {
		return "", fmt.Errorf("resolve destination: %w", err)
	}

	return dest, nil
}

func (e *exporter) newReport(dryRun bool) m.ExportReport {
	return m.ExportReport{
		RunID:           uuid.NewString(),
		Source:          e.job.Source,
		Destination:     e.job.Destination,
		Filter:          e.filter.String(),
		IncludeMetadata: e.job.IncludeMetadata,
		DryRun:          dryRun,
		StartedAt:       time.Now(),
		Entries:         []m.ExportEntry{},
	}
}

func (e *exporter) finish(report m.ExportReport) m.ExportReport {
	report.Duration = time.Since(report.StartedAt)
	return report
}
