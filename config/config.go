// Package config holds tileview's file-based settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Config struct {
	Window Window `yaml:"window"`
	// Tileset is a path on disk. Empty selects the embedded tileset.
	Tileset  string `yaml:"tileset"`
	Level    string `yaml:"level"`
	LogLevel string `yaml:"log_level"`
	Debug    bool   `yaml:"debug"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  640,
			Height: 480,
			Title:  "tileview",
		},
		Level:    "default.yaml",
		LogLevel: "info",
	}
}

// Load reads path over the defaults. An empty path yields the defaults,
// as does a missing file unless required is set. The result is not
// validated; callers apply their overrides first and then call Validate.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if _, err := c.ZerologLevel(); err != nil {
		return err
	}
	return nil
}

// ZerologLevel parses LogLevel. An empty level means info.
func (c Config) ZerologLevel() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
