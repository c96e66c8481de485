package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ctxport.dev/pkg/ctxport/internal/adapter"
	adaptermocks "ctxport.dev/pkg/ctxport/internal/adapter/mocks"
	controllermocks "ctxport.dev/pkg/ctxport/internal/controller/mocks"
	"ctxport.dev/pkg/ctxport/internal/domain"
	domainmocks "ctxport.dev/pkg/ctxport/internal/domain/mocks"
	m "ctxport.dev/pkg/ctxport/internal/model"
)

type workflowFixture struct {
	ui       *controllermocks.MockUI
	store    *adaptermocks.MockReportStore
	exporter *domainmocks.MockExporter
	jobs     []m.ExportJob
	workflow domain.Workflow
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	f := &workflowFixture{
		ui:       controllermocks.NewMockUI(t),
		store:    adaptermocks.NewMockReportStore(t),
		exporter: domainmocks.NewMockExporter(t),
	}

	f.workflow = domain.NewWorkflowWithExporter(
		adapter.NewLocalContextFSAdapter(),
		f.store,
		f.ui,
		func(job m.ExportJob) domain.Exporter {
			f.jobs = append(f.jobs, job)
			return f.exporter
		},
	)

	return f
}

func (f *workflowFixture) expectSession() {
	f.ui.On("Start", mock.Anything, mock.Anything).Return(nil).Once()
	f.ui.On("Close", mock.Anything).Return().Once()
}

func TestWorkflow_Export(t *testing.T) {
	f := newWorkflowFixture(t)
	job := m.ExportJob{Source: "src", Destination: "out.txt", Filter: []string{"a"}}
	report := m.ExportReport{RunID: "run-1", Entries: []m.ExportEntry{{Path: "a.txt", Kind: m.KindFile}}}

	f.expectSession()
	f.exporter.On("Export", mock.Anything).Return(report, nil).Once()
	f.ui.On("DisplayExportResult", mock.Anything, report, nil).Return(nil).Once()
	f.store.On("SaveReport", m.Path("manifest.yaml"), report).Return(nil).Once()

	err := f.workflow.Export(context.Background(), domain.ExportArgs{Job: job, Manifest: "manifest.yaml"})
	require.NoError(t, err)

	assert.Equal(t, []m.ExportJob{job}, f.jobs)
}

func TestWorkflow_Export_Failure(t *testing.T) {
	f := newWorkflowFixture(t)
	exportErr := errors.New("boom")

	f.expectSession()
	f.exporter.On("Export", mock.Anything).Return(m.ExportReport{}, exportErr).Once()
	f.ui.On("DisplayExportResult", mock.Anything, m.ExportReport{}, exportErr).Return(nil).Once()

	err := f.workflow.Export(context.Background(), domain.ExportArgs{Manifest: "manifest.yaml"})
	require.ErrorIs(t, err, exportErr)

	f.store.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
}

func TestWorkflow_Export_StartFails(t *testing.T) {
	f := newWorkflowFixture(t)
	startErr := errors.New("no terminal")

	f.ui.On("Start", mock.Anything, mock.Anything).Return(startErr).Once()

	err := f.workflow.Export(context.Background(), domain.ExportArgs{})
	require.ErrorIs(t, err, startErr)
	assert.Empty(t, f.jobs)
}

func TestWorkflow_Plan(t *testing.T) {
	f := newWorkflowFixture(t)
	report := m.ExportReport{DryRun: true}

	f.expectSession()
	f.exporter.On("Plan", mock.Anything).Return(report, nil).Once()
	f.ui.On("DisplayPlan", mock.Anything, report).Return(nil).Once()
	f.ui.On("Wait", mock.Anything).Return().Once()

	require.NoError(t, f.workflow.Plan(context.Background(), domain.PlanArgs{Job: m.ExportJob{Source: "src"}}))
}

func TestWorkflow_Plan_Error(t *testing.T) {
	f := newWorkflowFixture(t)

	f.expectSession()
	f.exporter.On("Plan", mock.Anything).Return(m.ExportReport{}, m.ErrNotDirectory).Once()

	err := f.workflow.Plan(context.Background(), domain.PlanArgs{})
	require.ErrorIs(t, err, m.ErrNotDirectory)
}

func TestWorkflow_Diff(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(dest, []byte("a\nold\n"), 0o644))

	f := newWorkflowFixture(t)

	f.expectSession()
	f.exporter.On("Render", mock.Anything).Return([]byte("a\nnew\n"), m.ExportReport{}, nil).Once()
	f.ui.On("DisplayDiff", mock.Anything, m.Path(dest), mock.MatchedBy(func(diff string) bool {
		return assert.Contains(t, diff, "-old\n") && assert.Contains(t, diff, "+new\n")
	})).Return(nil).Once()

	err := f.workflow.Diff(context.Background(), domain.DiffArgs{Job: m.ExportJob{Source: "src", Destination: m.Path(dest)}})
	require.NoError(t, err)
}

func TestWorkflow_Diff_UpToDate(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(dest, []byte("same\n"), 0o644))

	f := newWorkflowFixture(t)

	f.expectSession()
	f.exporter.On("Render", mock.Anything).Return([]byte("same\n"), m.ExportReport{}, nil).Once()
	f.ui.On("DisplayDiff", mock.Anything, m.Path(dest), "").Return(nil).Once()

	require.NoError(t, f.workflow.Diff(context.Background(), domain.DiffArgs{Job: m.ExportJob{Destination: m.Path(dest)}}))
}

func TestWorkflow_Diff_MissingDestination(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.txt")

	f := newWorkflowFixture(t)

	f.expectSession()
	f.exporter.On("Render", mock.Anything).Return([]byte("fresh\n"), m.ExportReport{}, nil).Once()
	f.ui.On("DisplayDiff", mock.Anything, m.Path(dest), mock.MatchedBy(func(diff string) bool {
		return assert.Contains(t, diff, "+fresh\n")
	})).Return(nil).Once()

	require.NoError(t, f.workflow.Diff(context.Background(), domain.DiffArgs{Job: m.ExportJob{Destination: m.Path(dest)}}))
}

func TestWorkflow_View(t *testing.T) {
	f := newWorkflowFixture(t)
	report := m.ExportReport{RunID: "run-2"}

	f.expectSession()
	f.store.On("LoadReport", m.Path("manifest.yaml")).Return(report, nil).Once()
	f.ui.On("DisplayPlan", mock.Anything, report).Return(nil).Once()
	f.ui.On("Wait", mock.Anything).Return().Once()

	require.NoError(t, f.workflow.View(context.Background(), domain.ViewArgs{Manifest: "manifest.yaml"}))
}

func TestWorkflow_InitAndShowFolder(t *testing.T) {
	dir := t.TempDir()
	f := newWorkflowFixture(t)
	cfg := m.ContextFolderConfig{Priority: 5, Tags: []string{"a", "b"}}

	f.ui.On("Start", mock.Anything, mock.Anything).Return(nil).Twice()
	f.ui.On("Close", mock.Anything).Return().Twice()
	f.ui.On("DisplayFolderConfig", mock.Anything, m.Path(dir), cfg, true).Return(nil).Twice()

	require.NoError(t, f.workflow.InitFolder(context.Background(), domain.FolderArgs{Dir: m.Path(dir), Priority: 5, Tags: []string{"a", "b"}}))
	require.NoError(t, f.workflow.ShowFolder(context.Background(), domain.FolderArgs{Dir: m.Path(dir)}))
}

func TestWorkflow_InitFolder_Exists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, m.FolderConfigName), []byte("[Context Folder Configuration]\npriority = 1\n"), 0o644))

	f := newWorkflowFixture(t)
	f.expectSession()

	err := f.workflow.InitFolder(context.Background(), domain.FolderArgs{Dir: m.Path(dir)})
	require.ErrorIs(t, err, m.ErrFolderConfigExists)
}

func TestWorkflow_ShowFolder_NotContextFolder(t *testing.T) {
	dir := t.TempDir()
	f := newWorkflowFixture(t)

	f.expectSession()
	f.ui.On("DisplayFolderConfig", mock.Anything, m.Path(dir), m.ContextFolderConfig{}, false).Return(nil).Once()

	require.NoError(t, f.workflow.ShowFolder(context.Background(), domain.FolderArgs{Dir: m.Path(dir)}))
}

func TestWorkflow_AddMetadata(t *testing.T) {
	file := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(file, []byte("body\n"), 0o644))

	f := newWorkflowFixture(t)

	f.ui.On("Start", mock.Anything, mock.Anything).Return(nil).Twice()
	f.ui.On("Close", mock.Anything).Return().Twice()
	f.ui.On("DisplayMessage", mock.Anything, "added metadata block to %s", m.Path(file)).Return().Once()
	f.ui.On("DisplayMessage", mock.Anything, "%s already has a metadata block", m.Path(file)).Return().Once()

	args := domain.MetadataArgs{File: m.Path(file), Tags: []string{"draft"}, Note: "first pass"}
	require.NoError(t, f.workflow.AddMetadata(context.Background(), args))
	require.NoError(t, f.workflow.AddMetadata(context.Background(), args))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, adapter.FormatMetadataBlock([]string{"draft"}, "first pass")+"body\n", string(data))
}
