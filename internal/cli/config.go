package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"rosgraph/pkg/errors"
	"rosgraph/pkg/layout"
)

// Config is the on-disk configuration, read from
// ~/.config/rosgraph/config.toml (or the path given via --config).
// Command-line flags override file values.
type Config struct {
	Server ServerConfig `toml:"server"`
	Layout LayoutConfig `toml:"layout"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr           string   `toml:"addr"`
	PollIntervalMS int      `toml:"poll_interval_ms"`
	AllowedOrigins []string `toml:"allowed_origins"`
	HideInternal   bool     `toml:"hide_internal"`
}

// LayoutConfig tunes the layout engine.
type LayoutConfig struct {
	MaxNodesPerRow int     `toml:"max_nodes_per_row"`
	HorizontalGap  float64 `toml:"horizontal_gap"`
	VerticalGap    float64 `toml:"vertical_gap"`
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:           ":8080",
			PollIntervalMS: 500,
			AllowedOrigins: []string{"*"},
		},
	}
}

// loadConfig reads the TOML config at path. An empty path means the
// default location; a missing file at the default location is not an
// error, but an explicitly named file must exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// pollInterval converts the configured millisecond value to a duration.
func (c ServerConfig) pollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// layoutOptions converts file config to engine options. Zero values fall
// through to the engine defaults.
func (c LayoutConfig) layoutOptions() layout.Options {
	return layout.Options{
		MaxNodesPerRow: c.MaxNodesPerRow,
		HorizontalGap:  c.HorizontalGap,
		VerticalGap:    c.VerticalGap,
	}
}
