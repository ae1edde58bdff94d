// Package config loads json-mapper CLI settings.
//
// Settings are layered, later layers overriding earlier ones:
//  1. Built-in defaults
//  2. The config file ($XDG_CONFIG_HOME/json-mapper/config.toml, or a TOML or
//     YAML file given with --config)
//  3. JSON_MAPPER_* environment variables (JSON_MAPPER_FORMAT=yaml)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "JSON_MAPPER_"

// Config holds CLI settings.
type Config struct {
	// Rules is the default ruleset file, used when --rules is not given.
	Rules string `koanf:"rules"`
	// Format is the output format: json, yaml or toml.
	Format string `koanf:"format"`
	// Indent is the JSON indentation width; 0 prints compact JSON.
	Indent int `koanf:"indent"`
	// Verbosity is the default log verbosity.
	Verbosity int `koanf:"verbosity"`
	// Seed makes randomized operators reproducible when non-zero.
	Seed uint64 `koanf:"seed"`
}

func defaults() map[string]any {
	return map[string]any{
		"rules":     "",
		"format":    "json",
		"indent":    2,
		"verbosity": 0,
		"seed":      0,
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "json-mapper", "config.toml")
}

// parserFor picks the config parser by extension. TOML is the default.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// Load reads settings. An explicit path must exist; the default path is
// optional.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	envKey := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}
