package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete server configuration
type Config struct {
	Server ServerSettings `hcl:"server,block"`
	Game   GameSettings   `hcl:"game,block"`
	Vision VisionSettings `hcl:"vision,block"`
}

// ServerSettings contains server-level configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// GameSettings configures the table the server runs
type GameSettings struct {
	Players       []string `hcl:"players,optional"`
	StartingChips int      `hcl:"starting_chips,optional"`
	SmallBlind    int      `hcl:"small_blind,optional"`
	EquitySamples int      `hcl:"equity_samples,optional"`
	Seed          int64    `hcl:"seed,optional"`
}

// VisionSettings configures the card detection tracker
type VisionSettings struct {
	StaleAfterSeconds int `hcl:"stale_after_seconds,optional"`
}

// DefaultConfig returns default server configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
			LogFile:  "pokerglasses-server.log",
		},
		Game: GameSettings{
			Players:       []string{"Hero", "Villain1", "Villain2", "Villain3"},
			StartingChips: 1000,
			SmallBlind:    5,
			EquitySamples: 1000,
		},
		Vision: VisionSettings{
			StaleAfterSeconds: 5,
		},
	}
}

// LoadConfig loads server configuration from an HCL file. A missing
// file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *Config) {
	defaults := DefaultConfig()

	if config.Server.Address == "" {
		config.Server.Address = defaults.Server.Address
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaults.Server.Port
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = defaults.Server.LogLevel
	}
	if config.Server.LogFile == "" {
		config.Server.LogFile = defaults.Server.LogFile
	}

	if len(config.Game.Players) == 0 {
		config.Game.Players = defaults.Game.Players
	}
	if config.Game.StartingChips == 0 {
		config.Game.StartingChips = defaults.Game.StartingChips
	}
	if config.Game.SmallBlind == 0 {
		config.Game.SmallBlind = defaults.Game.SmallBlind
	}
	if config.Game.EquitySamples == 0 {
		config.Game.EquitySamples = defaults.Game.EquitySamples
	}

	if config.Vision.StaleAfterSeconds == 0 {
		config.Vision.StaleAfterSeconds = defaults.Vision.StaleAfterSeconds
	}
}

// Validate validates the server configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	if len(c.Game.Players) < 2 || len(c.Game.Players) > 10 {
		return fmt.Errorf("player count must be between 2 and 10, got %d", len(c.Game.Players))
	}
	seen := make(map[string]bool, len(c.Game.Players))
	for _, name := range c.Game.Players {
		if name == "" {
			return fmt.Errorf("player names must not be empty")
		}
		if seen[name] {
			return fmt.Errorf("duplicate player name: %s", name)
		}
		seen[name] = true
	}

	if c.Game.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive")
	}
	if c.Game.StartingChips < c.Game.SmallBlind*4 {
		return fmt.Errorf("starting chips %d too small for blinds", c.Game.StartingChips)
	}
	if c.Game.EquitySamples < 1 {
		return fmt.Errorf("equity samples must be positive")
	}

	if c.Vision.StaleAfterSeconds < 0 {
		return fmt.Errorf("stale_after_seconds must not be negative")
	}

	return nil
}

// ListenAddress returns the full listen address
func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
