package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/sevigo/spell-warden/internal/logger"
)

// Config holds the application's configuration values.
type Config struct {
	ServerPort string
	Logger     logger.Config
	// OverrideRoot stands in for the current folder when the target lies in
	// no open workspace folder.
	OverrideRoot string
	// HomeDir is where "~" and user dictionaries resolve to. Empty means the
	// current user's home directory.
	HomeDir string
	Theme   string
}

// LoadConfig reads configuration from environment variables (prefix SW) and
// an optional .env file, applying defaults for everything else.
func LoadConfig() (*Config, error) {
	return load(viper.GetViper())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.SetEnvPrefix("SW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stderr")
	v.SetDefault("THEME", "cyan")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to read config file", "error", err)
		}
	}

	level := strings.ToLower(v.GetString("LOG_LEVEL"))
	switch level {
	case "debug", "info", "warn", "error":
	default:
		slog.Warn("unrecognized log level, defaulting to info", "provided", level)
		level = "info"
	}

	return &Config{
		ServerPort: v.GetString("SERVER_PORT"),
		Logger: logger.Config{
			Level:  level,
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
			File:   v.GetString("LOG_FILE"),
		},
		OverrideRoot: v.GetString("OVERRIDE_ROOT"),
		HomeDir:      v.GetString("HOME_DIR"),
		Theme:        v.GetString("THEME"),
	}, nil
}
