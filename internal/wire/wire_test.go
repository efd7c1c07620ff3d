package wire

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/spell-warden/internal/config"
	"github.com/sevigo/spell-warden/internal/core"
	"github.com/sevigo/spell-warden/internal/logger"
)

func TestInitializeResolver(t *testing.T) {
	cfg := &config.Config{
		Logger:       logger.Config{Level: "error", Format: "text", Output: "stderr"},
		OverrideRoot: "/fallback",
	}

	svc := InitializeResolver(cfg)
	require.NotNil(t, svc)

	res, err := svc.Resolve(context.Background(), &core.ResolveRequest{
		Settings: core.Settings{"import": []any{"${workspaceFolder}/cspell.json"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"/fallback/cspell.json"}, res.Settings["import"])
}
