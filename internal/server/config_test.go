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
	path := filepath.Join(t.TempDir(), "goldenflower.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Addr())
	assert.Equal(t, 10, cfg.Room.Ante)
	assert.Equal(t, 1000, cfg.Room.BaseStake)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigParsesFile(t *testing.T) {
	path := writeConfig(t, `
server {
  address = "0.0.0.0"
  port    = 9000
}

room {
  max_players = 4
  ante        = 25
  base_stake  = 2000
}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
	assert.Equal(t, 4, cfg.Room.MaxPlayers)
	assert.Equal(t, 25, cfg.Room.Ante)
	assert.Equal(t, 2000, cfg.Room.BaseStake)
	// Omitted values fall back to defaults.
	assert.Equal(t, 2, cfg.Room.MinPlayers)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigRejectsMalformedHCL(t *testing.T) {
	path := writeConfig(t, `server { address = `)

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "port out of range", mutate: func(c *Config) { c.Server.Port = 70000 }},
		{name: "min players below two", mutate: func(c *Config) { c.Room.MinPlayers = 1 }},
		{name: "max below min", mutate: func(c *Config) { c.Room.MaxPlayers = 2; c.Room.MinPlayers = 3 }},
		{name: "more players than the deck can deal", mutate: func(c *Config) { c.Room.MaxPlayers = 18 }},
		{name: "non-positive ante", mutate: func(c *Config) { c.Room.Ante = 0 }},
		{name: "stake below ante", mutate: func(c *Config) { c.Room.Ante = 100; c.Room.BaseStake = 50 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestRoomConfigConversion(t *testing.T) {
	cfg := DefaultConfig()
	rc := cfg.RoomConfig()

	assert.Equal(t, cfg.Room.MaxPlayers, rc.MaxPlayers)
	assert.Equal(t, cfg.Room.MinPlayers, rc.MinPlayers)
	assert.Equal(t, cfg.Room.Ante, rc.Ante)
	assert.Equal(t, cfg.Room.BaseStake, rc.BaseStake)
}
