package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInit_WiresDependencies(t *testing.T) {
	assert.NotNil(t, gafReader)
	assert.NotNil(t, mappingLoader)
	assert.NotNil(t, reportStore)
	assert.NotNil(t, metricsSink)
	assert.NotNil(t, logger)
	assert.NotNil(t, workflow)
	assert.NotNil(t, ui)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"compare", "paths", "view"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCmd_VerboseEnablesDebugLogging(t *testing.T) {
	cmd, mockWorkflow := newTestRootCmd(t)

	original := logLevel.Level()
	t.Cleanup(func() { logLevel.Set(original) })

	mockWorkflow.On("View", mock.Anything).Return(nil)

	cmd.SetArgs([]string{"--verbose", "view"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, slog.LevelDebug, logLevel.Level())
}

func TestRootCmd_MissingConfigFileFails(t *testing.T) {
	cmd, _ := newTestRootCmd(t)

	cmd.SetArgs([]string{"--config", "does-not-exist.yaml", "view"})
	require.Error(t, cmd.Execute())
}
