//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"github.com/sevigo/spell-warden/internal/app"
	"github.com/sevigo/spell-warden/internal/config"
)

// InitializeApp builds the HTTP application.
func InitializeApp() (*app.App, error) {
	wire.Build(AppSet)
	return &app.App{}, nil
}

// InitializeResolver builds the resolve service for an already loaded config.
func InitializeResolver(cfg *config.Config) *app.ResolveService {
	wire.Build(ResolverSet)
	return &app.ResolveService{}
}
