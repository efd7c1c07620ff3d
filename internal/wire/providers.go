package wire

import (
	"io"
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/spell-warden/internal/app"
	"github.com/sevigo/spell-warden/internal/config"
	"github.com/sevigo/spell-warden/internal/core"
	"github.com/sevigo/spell-warden/internal/logger"
	"github.com/sevigo/spell-warden/internal/server"
)

// ResolverSet builds the resolve service from a loaded config.
var ResolverSet = wire.NewSet(
	provideLoggerConfig,
	provideLogWriter,
	provideSlogLogger,
	logger.NewErrorSink,
	wire.Bind(new(core.ErrorLogger), new(*logger.ErrorSink)),
	app.NewResolveService,
	wire.Bind(new(core.SettingsResolver), new(*app.ResolveService)),
)

// AppSet builds the HTTP application.
var AppSet = wire.NewSet(
	config.LoadConfig,
	ResolverSet,
	server.NewServer,
	app.NewApp,
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logger
}

// provideLogWriter lets logger.NewLogger pick the writer from the config.
func provideLogWriter() io.Writer {
	return nil
}

func provideSlogLogger(loggerConfig logger.Config, writer io.Writer) *slog.Logger {
	l := logger.NewLogger(loggerConfig, writer)
	slog.SetDefault(l)
	return l
}
