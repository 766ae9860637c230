package main

import (
	"github.com/gcheng713/pokerglasses/cmd/pokerglasses/shared"
	"github.com/gcheng713/pokerglasses/internal/server"
)

// ServeCmd runs the WebSocket server
type ServeCmd struct {
	Config string `kong:"default='pokerglasses.hcl',help='Path to HCL configuration file'"`
	Addr   string `kong:"help='Listen address, overrides the config file'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
	JSON   bool   `kong:"help='Log structured JSON instead of pretty console output'"`
}

func (c *ServeCmd) Run() error {
	logger := shared.SetupLogger(c.Debug, c.JSON)

	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	addr := cfg.ListenAddress()
	if c.Addr != "" {
		addr = c.Addr
	}

	service := server.NewGameService(cfg, logger)
	s := server.NewServer(addr, service, logger)

	logger.Info().
		Str("address", addr).
		Strs("players", cfg.Game.Players).
		Int("small_blind", cfg.Game.SmallBlind).
		Int("starting_chips", cfg.Game.StartingChips).
		Int("equity_samples", cfg.Game.EquitySamples).
		Msg("Starting pokerglasses server")

	ctx := shared.SetupSignalHandler(logger)
	go func() {
		<-ctx.Done()
		_ = s.Stop()
	}()

	return s.Start()
}
