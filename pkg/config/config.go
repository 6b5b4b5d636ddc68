package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Logging   LoggingConfig   `toml:"logging"`
	Normalize NormalizeConfig `toml:"normalize"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NormalizeConfig controls the optional purell pass run before
// canonicalization. Flags are names from process.FlagNames.
type NormalizeConfig struct {
	Enabled bool     `toml:"enabled"`
	Flags   []string `toml:"flags"`
}

func Default() *Config {
	var cfg Config
	cfg.Logging.Format = "text"
	cfg.Logging.Level = "warn"
	return &cfg
}

// Load reads a TOML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", path, err)
	}

	return cfg, nil
}
