package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sevigo/spell-warden/internal/wire"
)

func main() {
	if err := run(); err != nil {
		slog.Error("resolve service failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := wire.InitializeApp()
	if err != nil {
		return fmt.Errorf("failed to initialize resolve service: %w", err)
	}

	served := make(chan error, 1)
	go func() {
		served <- app.Start()
	}()

	endpoint := app.ResolveEndpoint()
	slog.Info("resolve API ready", "resolve", endpoint, "resolve_all", endpoint+"/all")

	select {
	case <-ctx.Done():
		slog.Info("received shutdown signal")
	case err := <-served:
		if err != nil {
			return fmt.Errorf("resolve service stopped: %w", err)
		}
		return nil
	}

	if err := app.Stop(); err != nil {
		return fmt.Errorf("failed to stop resolve service: %w", err)
	}
	return nil
}
