package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/gafeval/internal/domain"
	m "github.com/mouse-blink/gafeval/internal/model"
)

func TestViewCmd_UsesDefaultReportsDir(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t)

	mockWorkflow.On("View", domain.ViewArgs{Reports: m.Path(".gafeval-reports")}).Return(nil)

	cmd.SetArgs([]string{"view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_ReportsFlagIsPassedThrough(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t)

	mockWorkflow.On("View", domain.ViewArgs{Reports: m.Path("./reports-dir")}).Return(nil)

	cmd.SetArgs([]string{"--reports", "./reports-dir", "view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_PositionalArgsAreRejected(t *testing.T) {
	cmd, _ := newTestRootCmd(t)

	cmd.SetArgs([]string{"view", "extra"})
	require.Error(t, cmd.Execute())
}
