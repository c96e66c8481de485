package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ctxport.dev/pkg/ctxport/internal/domain"
	m "ctxport.dev/pkg/ctxport/internal/model"
)

func TestViewCmd_PassesManifest(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newViewCmd())

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Manifest == m.Path("run.yaml")
	})).Return(nil).Once()

	cmd.SetArgs(withLogFile(t, "view", "run.yaml"))
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_RequiresManifest(t *testing.T) {
	cmd, _, _ := newTestRoot(t, newViewCmd())

	cmd.SetArgs(withLogFile(t, "view"))
	require.Error(t, cmd.Execute())
}
