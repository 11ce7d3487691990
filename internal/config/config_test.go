package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "screenpilot", cfg.Logger.ServiceName)
	assert.Equal(t, 18.0, cfg.Pointer.Speed)
	assert.Equal(t, 16*time.Millisecond, cfg.Pointer.FrameInterval)
	assert.Positive(t, cfg.Typing.KeyDelayMin)
	assert.Greater(t, cfg.Typing.KeyDelayMax, cfg.Typing.KeyDelayMin)
	assert.Positive(t, cfg.Engine.SettleDelay)
}

func TestDefaultsDoNotClobberExplicitValues(t *testing.T) {
	cfg := Config{}
	cfg.Pointer.Speed = 5
	cfg.Typing.KeyDelayMin = 10 * time.Millisecond
	cfg.SetDefaults()

	assert.Equal(t, 5.0, cfg.Pointer.Speed)
	assert.Equal(t, 10*time.Millisecond, cfg.Typing.KeyDelayMin)
	assert.Equal(t, 90*time.Millisecond, cfg.Typing.KeyDelayMax)
}

func TestLoadMissingDefaultFileIsFine(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "screenpilot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logger:
  level: debug
pointer:
  speed: 42
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 42.0, cfg.Pointer.Speed)
}

func TestLoadExplicitMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
