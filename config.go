package jisho

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// ConfigName is the path of the configuration file relative to the XDG
// config directories.
const ConfigName = "jisho/config.toml"

type Config struct {
	Archive  string `toml:"archive"`
	LogLevel string `toml:"log_level"`
	Workers  int    `toml:"workers"`

	Search  SearchConfig  `toml:"search"`
	Segment SegmentConfig `toml:"segment"`
}

type SearchConfig struct {
	Limit            int     `toml:"limit"`
	Suggest          int     `toml:"suggest"`
	SuggestThreshold float32 `toml:"suggest_threshold"`
}

type SegmentConfig struct {
	IncludeExpressions bool `toml:"include_expressions"`
	LatticeMissLimit   int  `toml:"lattice_miss_limit"`
	FrequencyThreshold int  `toml:"frequency_threshold"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Search: SearchConfig{
			Limit:            20,
			Suggest:          5,
			SuggestThreshold: DefaultSuggestThreshold,
		},
		Segment: SegmentConfig{
			LatticeMissLimit:   DefaultLatticeMissLimit,
			FrequencyThreshold: 1000,
		},
	}
}

// LoadConfig reads the TOML file at path over the defaults. With an empty
// path the file is searched in the XDG config directories, and a missing
// file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		found, err := xdg.SearchConfigFile(ConfigName)
		if err != nil {
			Logger.Debug().Err(err).Msg("no config file, using defaults")
			return cfg, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config file %s does not exist: %w", path, fs.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	Logger.Debug().Str("path", path).Msg("config loaded")
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	switch {
	case c.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	case c.Search.Limit < 0:
		return fmt.Errorf("search.limit must not be negative, got %d", c.Search.Limit)
	case c.Search.Suggest < 0:
		return fmt.Errorf("search.suggest must not be negative, got %d", c.Search.Suggest)
	case c.Search.SuggestThreshold <= 0 || c.Search.SuggestThreshold > 1:
		return fmt.Errorf("search.suggest_threshold must be in (0, 1], got %v", c.Search.SuggestThreshold)
	case c.Segment.LatticeMissLimit < 1:
		return fmt.Errorf("segment.lattice_miss_limit must be positive, got %d", c.Segment.LatticeMissLimit)
	case c.Segment.FrequencyThreshold < 0:
		return fmt.Errorf("segment.frequency_threshold must not be negative, got %d", c.Segment.FrequencyThreshold)
	}
	return nil
}

// Level is the parsed LogLevel. Call Validate first.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Options translates the configuration into dictionary options.
func (c *Config) Options() []Option {
	return []Option{
		WithWorkers(c.Workers),
		WithExpressions(c.Segment.IncludeExpressions),
		WithLatticeMissLimit(c.Segment.LatticeMissLimit),
		WithSuggestThreshold(c.Search.SuggestThreshold),
	}
}

// Encode writes the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
