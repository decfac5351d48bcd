package cli

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustlens/tlens/internal/config"
	"github.com/trustlens/tlens/internal/errors"
)

func TestInitNonInteractive(t *testing.T) {
	t.Chdir(t.TempDir())

	err := Init(InitOptions{NonInteractive: true})
	require.NoError(t, err)

	// The written file must load back as a valid config
	cfg, err := config.Load(config.ConfigFileName)
	require.NoError(t, err)
	assert.Equal(t, config.ModeMock, cfg.Mode)
	assert.Equal(t, 6*time.Second, cfg.RotateInterval)

	// And carries the documentation header
	data, err := os.ReadFile(config.ConfigFileName)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# tlens configuration")
}

func TestInitRefusesOverwriteNonInteractive(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, Init(InitOptions{NonInteractive: true}))

	err := Init(InitOptions{NonInteractive: true})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitForceOverwrites(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, Init(InitOptions{NonInteractive: true}))
	require.NoError(t, Init(InitOptions{NonInteractive: true, Overwrite: true}))
}
