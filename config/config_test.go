package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skyfolio/parameter"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, parameter.GameSkySim, cfg.Game)
	assert.Equal(t, parameter.DefaultTickInterval, cfg.Tick)
	assert.Equal(t, parameter.FlightSurfaceWidth, cfg.Surface.Width)
	assert.Equal(t, parameter.FlightSurfaceHeight, cfg.Surface.Height)
	assert.True(t, cfg.Store.Enabled)
	assert.Equal(t, "./data/skyfolio.db", cfg.Store.Path)
	assert.True(t, cfg.Audio.Enabled)
	assert.False(t, cfg.Log.Debug)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.File)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	path := writeConfig(t, `
game = "flappy"
tick = "20ms"
seed = 42

[store]
path = "/tmp/scores.db"

[audio]
enabled = false

[log]
debug = true
level = "debug"
`)

	cfg, err := Load([]string{"--config", path})
	require.NoError(t, err)

	assert.Equal(t, parameter.GameFlappy, cfg.Game)
	assert.Equal(t, 20*time.Millisecond, cfg.Tick)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, parameter.FlappyWidth, cfg.Surface.Width)
	assert.Equal(t, parameter.FlappyHeight, cfg.Surface.Height)
	assert.Equal(t, "/tmp/scores.db", cfg.Store.Path)
	assert.False(t, cfg.Audio.Enabled)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `game = "flappy"`)

	cfg, err := Load([]string{"--config", path, "-g", "skysim", "--width", "640", "--no-store", "--mute"})
	require.NoError(t, err)

	assert.Equal(t, parameter.GameSkySim, cfg.Game)
	assert.Equal(t, 640, cfg.Surface.Width)
	assert.Equal(t, parameter.FlightSurfaceHeight, cfg.Surface.Height)
	assert.False(t, cfg.Store.Enabled)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SKYFOLIO_STORE_PATH", "/var/tmp/env.db")
	t.Setenv("SKYFOLIO_GAME", "flappy")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "/var/tmp/env.db", cfg.Store.Path)
	assert.Equal(t, parameter.GameFlappy, cfg.Game)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load([]string{"--config", "/nonexistent/skyfolio.toml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_UnknownGame(t *testing.T) {
	_, err := Load([]string{"--game", "pong"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown game")
}

func TestLoad_BadFlag(t *testing.T) {
	_, err := Load([]string{"--warp-speed"})
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{Game: parameter.GameSkySim, Tick: 0}
	assert.Error(t, cfg.Validate())

	cfg = Config{Game: parameter.GameSkySim, Tick: time.Millisecond, Store: StoreConfig{Enabled: true}}
	assert.Error(t, cfg.Validate(), "enabled store needs a path")

	cfg = Config{Game: parameter.GameFlappy, Tick: time.Millisecond}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, parameter.FlappyWidth, cfg.Surface.Width)
}
