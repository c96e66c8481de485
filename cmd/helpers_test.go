package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"ctxport.dev/pkg/ctxport/internal/domain"
	domainmocks "ctxport.dev/pkg/ctxport/internal/domain/mocks"
)

// newTestRoot builds a root command with sub attached and a mocked workflow.
// The log goes to a temporary file so tests never touch the working directory.
func newTestRoot(t *testing.T, sub *cobra.Command) (*cobra.Command, *domainmocks.MockWorkflow, *bytes.Buffer) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(sub)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return cmd, mockWorkflow, out
}

func withLogFile(t *testing.T, args ...string) []string {
	t.Helper()

	return append(args, "--log-file", filepath.Join(t.TempDir(), "test.log"))
}

var _ domain.Workflow = (*domainmocks.MockWorkflow)(nil)
