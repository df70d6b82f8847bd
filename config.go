package shapedraw

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings shared by the drawer front ends. Every field may be set in a TOML file, missing keys keep their defaults.
type Config struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Mode       string  `toml:"mode"`
	Legacy     bool    `toml:"legacy_side_count"`
	Resolution float64 `toml:"resolution"`
	Color      [3]int  `toml:"color"`
}

// DefaultConfig returns a 600x600 filled drawer with a red preset color.
func DefaultConfig() Config {
	return Config{
		Width:      600,
		Height:     600,
		Mode:       Filled.String(),
		Resolution: 1.0,
		Color:      [3]int{255, 0, 0},
	}
}

// ReadConfig decodes a TOML config on top of the defaults.
func ReadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadConfig reads the config file at filename. An empty filename returns the defaults.
func LoadConfig(filename string) (Config, error) {
	if filename == "" {
		return DefaultConfig(), nil
	}

	f, err := os.Open(filename)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return ReadConfig(f)
}

// Validate checks the canvas size, mode, resolution and color of the config.
func (cfg Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("config: canvas size must be positive")
	} else if cfg.Resolution <= 0.0 {
		return fmt.Errorf("config: resolution must be positive")
	} else if _, err := ParseMode(cfg.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	for _, v := range cfg.Color {
		if v < 0 || 255 < v {
			return fmt.Errorf("config: color values must be between 0 and 255")
		}
	}
	return nil
}

// State returns an empty drawer state configured by cfg. The config must be valid.
func (cfg Config) State() *State {
	mode, _ := ParseMode(cfg.Mode)
	s := NewState(mode)
	s.Selector.Legacy = cfg.Legacy
	return s
}

// Form returns an initial form with the configured color preset.
func (cfg Config) Form() Form {
	form := NewForm()
	form.Red = fmt.Sprint(cfg.Color[0])
	form.Green = fmt.Sprint(cfg.Color[1])
	form.Blue = fmt.Sprint(cfg.Color[2])
	return form
}
