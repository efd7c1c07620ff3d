package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/spell-warden/internal/core"
)

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParsing  = errors.New("config parsing failed")
)

// settingsFileNames is the probe order used by DiscoverSettingsFile.
var settingsFileNames = []string{
	"cspell.json",
	".cspell.json",
	"cspell.jsonc",
	"cspell.yaml",
	"cspell.yml",
	".cspell.yaml",
}

// LoadSettingsFile reads a spell checker settings file. JSON files may carry
// comments and trailing commas.
func LoadSettingsFile(path string) (core.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	settings := core.Settings{}
	if err := decode(path, data, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// DiscoverSettingsFile returns the first settings file found in dir.
func DiscoverSettingsFile(dir string) (string, error) {
	for _, name := range settingsFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrConfigNotFound, dir)
}

func decode(path string, data []byte, out any) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, out)
	default:
		err = json.Unmarshal(jsonc.ToJSON(data), out)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfigParsing, filepath.Base(path), err)
	}
	return nil
}
