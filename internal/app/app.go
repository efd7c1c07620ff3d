// Package app holds the resolution services and the long-running HTTP
// application built around them.
package app

import (
	"log/slog"
	"strings"

	"github.com/sevigo/spell-warden/internal/config"
	"github.com/sevigo/spell-warden/internal/server"
)

// App holds the main application components.
type App struct {
	cfg      *config.Config
	server   *server.Server
	logger   *slog.Logger
	Resolver *ResolveService
}

// NewApp assembles the application from its already constructed parts.
func NewApp(cfg *config.Config, resolver *ResolveService, srv *server.Server, logger *slog.Logger) *App {
	return &App{
		cfg:      cfg,
		server:   srv,
		logger:   logger,
		Resolver: resolver,
	}
}

// Start runs the HTTP server and blocks until it stops.
func (a *App) Start() error {
	a.logger.Info("starting spell-warden", "server_port", a.cfg.ServerPort)

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// ResolveEndpoint is the URL clients post resolve requests to. A listen
// address without a host is reported on localhost.
func (a *App) ResolveEndpoint() string {
	addr := a.server.Addr()
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr + server.APIPrefix + "/resolve"
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.logger.Info("shutting down spell-warden")

	if err := a.server.Stop(); err != nil {
		a.logger.Error("error during HTTP server shutdown", "error", err)
		return err
	}

	a.logger.Info("spell-warden stopped successfully")
	return nil
}
