package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	rand "math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/hayeslin-project/goldenflower/cmd/goldenflower/shared"
	"github.com/hayeslin-project/goldenflower/internal/randutil"
	"github.com/hayeslin-project/goldenflower/internal/room"
	"github.com/hayeslin-project/goldenflower/internal/server"
)

// ServerCmd contains core server configuration
type ServerCmd struct {
	Config string `kong:"default='goldenflower.hcl',help='Path to HCL config file'"`
	Addr   string `kong:"help='Listen address, overrides the config file'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
	Seed   *int64 `kong:"help='Deterministic RNG seed for the server (optional)'"`

	Ante       int `kong:"default='0',help='Ante per player, overrides the config file'"`
	BaseStake  int `kong:"default='0',help='Starting chip count, overrides the config file'"`
	MinPlayers int `kong:"default='0',help='Minimum players per round, overrides the config file'"`
	MaxPlayers int `kong:"default='0',help='Maximum players per room, overrides the config file'"`
}

func (c *ServerCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Ante > 0 {
		cfg.Room.Ante = c.Ante
	}
	if c.BaseStake > 0 {
		cfg.Room.BaseStake = c.BaseStake
	}
	if c.MinPlayers > 0 {
		cfg.Room.MinPlayers = c.MinPlayers
	}
	if c.MaxPlayers > 0 {
		cfg.Room.MaxPlayers = c.MaxPlayers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	addr := cfg.Addr()
	if c.Addr != "" {
		addr = c.Addr
	}

	var rng *rand.Rand
	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		logger.Info("using deterministic seed", "seed", seed)
		rng = randutil.New(seed)
	} else {
		seed = time.Now().UnixNano()
		logger.Debug("using random seed", "seed", seed)
		rng = randutil.New(seed)
	}

	registry := room.NewRegistry(cfg.RoomConfig(), rng, logger)
	s := server.NewServer(registry, logger)

	logger.Info("starting Golden Flower server",
		"address", addr,
		"ante", cfg.Room.Ante,
		"base_stake", cfg.Room.BaseStake,
		"min_players", cfg.Room.MinPlayers,
		"max_players", cfg.Room.MaxPlayers,
	)

	ctx := shared.SetupSignalHandler(logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
