package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/hayeslin-project/goldenflower/internal/room"
)

// Config is the complete server configuration.
type Config struct {
	Server Settings      `hcl:"server,block"`
	Room   *RoomSettings `hcl:"room,block"`
}

// Settings contains server-level configuration.
type Settings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// RoomSettings defines the table rules applied to every room.
type RoomSettings struct {
	MaxPlayers int `hcl:"max_players,optional"`
	MinPlayers int `hcl:"min_players,optional"`
	Ante       int `hcl:"ante,optional"`
	BaseStake  int `hcl:"base_stake,optional"`
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() *Config {
	def := room.DefaultConfig()
	return &Config{
		Server: Settings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
		Room: &RoomSettings{
			MaxPlayers: def.MaxPlayers,
			MinPlayers: def.MinPlayers,
			Ante:       def.Ante,
			BaseStake:  def.BaseStake,
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields the
// defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	def := DefaultConfig()
	if cfg.Server.Address == "" {
		cfg.Server.Address = def.Server.Address
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = def.Server.Port
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = def.Server.LogLevel
	}
	if cfg.Room == nil {
		cfg.Room = def.Room
	} else {
		if cfg.Room.MaxPlayers == 0 {
			cfg.Room.MaxPlayers = def.Room.MaxPlayers
		}
		if cfg.Room.MinPlayers == 0 {
			cfg.Room.MinPlayers = def.Room.MinPlayers
		}
		if cfg.Room.Ante == 0 {
			cfg.Room.Ante = def.Room.Ante
		}
		if cfg.Room.BaseStake == 0 {
			cfg.Room.BaseStake = def.Room.BaseStake
		}
	}

	return &cfg, nil
}

// Validate validates the server configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Room.MinPlayers < 2 {
		return fmt.Errorf("min players must be at least 2, got %d", c.Room.MinPlayers)
	}
	if c.Room.MaxPlayers < c.Room.MinPlayers {
		return fmt.Errorf("max players %d below min players %d", c.Room.MaxPlayers, c.Room.MinPlayers)
	}
	if c.Room.MaxPlayers*3 > 52 {
		return fmt.Errorf("max players %d cannot be dealt from one deck", c.Room.MaxPlayers)
	}
	if c.Room.Ante <= 0 {
		return fmt.Errorf("ante must be positive, got %d", c.Room.Ante)
	}
	if c.Room.BaseStake < c.Room.Ante {
		return fmt.Errorf("base stake %d cannot cover the ante %d", c.Room.BaseStake, c.Room.Ante)
	}
	return nil
}

// Addr returns the full listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// RoomConfig converts the room block into engine configuration.
func (c *Config) RoomConfig() room.Config {
	return room.Config{
		MaxPlayers: c.Room.MaxPlayers,
		MinPlayers: c.Room.MinPlayers,
		Ante:       c.Room.Ante,
		BaseStake:  c.Room.BaseStake,
	}
}
