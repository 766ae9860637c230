package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Address)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Len(t, cfg.Game.Players, 4)
	assert.Equal(t, 1000, cfg.Game.EquitySamples)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
server {
  address = "0.0.0.0"
  port    = 9000
}

game {
  players        = ["Alice", "Bob", "Carol"]
  starting_chips = 500
  small_blind    = 2
  equity_samples = 250
  seed           = 42
}

vision {
  stale_after_seconds = 10
}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "0.0.0.0:9000", cfg.ListenAddress())
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, cfg.Game.Players)
	assert.Equal(t, 500, cfg.Game.StartingChips)
	assert.Equal(t, 2, cfg.Game.SmallBlind)
	assert.Equal(t, 250, cfg.Game.EquitySamples)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, 10, cfg.Vision.StaleAfterSeconds)

	// Unset fields fall back to defaults.
	assert.Equal(t, "info", cfg.Server.LogLevel)
}

func TestLoadConfigPartialBlocksGetDefaults(t *testing.T) {
	path := writeConfig(t, `
server {
  port = 9999
}

game {
  players = ["A", "B"]
}

vision {}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Address)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 1000, cfg.Game.StartingChips)
	assert.Equal(t, 5, cfg.Game.SmallBlind)
	assert.Equal(t, 5, cfg.Vision.StaleAfterSeconds)
}

func TestLoadConfigBadSyntax(t *testing.T) {
	path := writeConfig(t, `server { port = `)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "bad port",
			mutate: func(c *Config) { c.Server.Port = 70000 },
			errMsg: "invalid port",
		},
		{
			name:   "too few players",
			mutate: func(c *Config) { c.Game.Players = []string{"solo"} },
			errMsg: "player count",
		},
		{
			name:   "duplicate players",
			mutate: func(c *Config) { c.Game.Players = []string{"A", "A"} },
			errMsg: "duplicate player name",
		},
		{
			name:   "empty player name",
			mutate: func(c *Config) { c.Game.Players = []string{"A", ""} },
			errMsg: "must not be empty",
		},
		{
			name:   "zero small blind",
			mutate: func(c *Config) { c.Game.SmallBlind = 0 },
			errMsg: "small blind",
		},
		{
			name:   "shallow stacks",
			mutate: func(c *Config) { c.Game.StartingChips = 10 },
			errMsg: "starting chips",
		},
		{
			name:   "negative stale threshold",
			mutate: func(c *Config) { c.Vision.StaleAfterSeconds = -1 },
			errMsg: "stale_after_seconds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
