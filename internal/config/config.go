package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Axis kinds accepted in the [styles] table.
const (
	// KindBoolean declares an on/off style axis such as bold.
	KindBoolean = "boolean"

	// KindValue declares a style axis carrying a value such as a color.
	KindValue = "value"
)

// Config holds the document engine configuration.
type Config struct {
	Logging LoggingConfig         `toml:"logging"`
	Editor  EditorConfig          `toml:"editor"`
	Styles  map[string]AxisConfig `toml:"styles"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `toml:"level"`
}

// EditorConfig holds buffer tuning knobs.
type EditorConfig struct {
	// MergeAddPieces folds consecutive insertions at the same spot into one
	// piece instead of accumulating a piece per keystroke.
	MergeAddPieces bool `toml:"merge_add_pieces"`
}

// AxisConfig declares one tracked style axis.
type AxisConfig struct {
	// Kind is KindBoolean or KindValue.
	Kind string `toml:"kind"`
}

// Default returns the built-in configuration: warn-level logging, add-piece
// merging on, and the standard style axes.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "warn"},
		Editor:  EditorConfig{MergeAddPieces: true},
		Styles: map[string]AxisConfig{
			"bold":      {Kind: KindBoolean},
			"italic":    {Kind: KindBoolean},
			"underline": {Kind: KindBoolean},
			"color":     {Kind: KindValue},
		},
	}
}

// Load reads a TOML configuration file. A missing file is not an error: the
// defaults are returned. Values absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML configuration data on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot honor.
func (c *Config) Validate() error {
	for name, axis := range c.Styles {
		switch axis.Kind {
		case KindBoolean, KindValue:
		default:
			return fmt.Errorf("style axis %q: kind %q: %w", name, axis.Kind, ErrUnknownAxisKind)
		}
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging level %q: %w", c.Logging.Level, ErrUnknownLogLevel)
	}

	return nil
}
