package main

import (
	"os"
	"strings"

	"github.com/hayeslin-project/goldenflower/cmd/goldenflower/shared"
	"github.com/hayeslin-project/goldenflower/internal/client"
	"github.com/hayeslin-project/goldenflower/internal/tui"
)

type ClientCmd struct {
	Server string `kong:"default='ws://localhost:8080/ws',help='WebSocket server URL'"`
	Name   string `kong:"default='',help='Display name (defaults to $USER)'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *ClientCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = os.Getenv("USER")
	}

	cli := client.New(strings.TrimSpace(c.Server), logger)
	if err := cli.Connect(); err != nil {
		return err
	}
	defer func() { _ = cli.Close() }()

	return tui.Run(cli, name, logger)
}
