package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandRegistration(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"dashboard", "status", "init", "version", "completion"} {
		assert.True(t, names[want], "expected subcommand %q to be registered", want)
	}
}

func TestDashboardCommandFlags(t *testing.T) {
	for _, name := range []string{"mode", "api", "interval"} {
		assert.NotNil(t, dashboardCmd.Flags().Lookup(name), "dashboard should have --%s", name)
	}
}

func TestStatusCommandFlags(t *testing.T) {
	for _, name := range []string{"mode", "api"} {
		assert.NotNil(t, statusCmd.Flags().Lookup(name), "status should have --%s", name)
	}
}

func TestPersistentFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("no-color"))
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	err := completionCmd.Args(completionCmd, []string{"tcsh"})
	require.Error(t, err)

	assert.NoError(t, completionCmd.Args(completionCmd, []string{"zsh"}))
}
