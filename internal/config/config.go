package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds canvas-editor settings.
type Config struct {
	Window WindowConfig `toml:"window"`
	Canvas CanvasConfig `toml:"canvas"`
}

type WindowConfig struct {
	Title  string  `toml:"title"`
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

type CanvasConfig struct {
	IDs           string `toml:"ids"`            // "counter" or "uuid"
	DanglingEdges string `toml:"dangling_edges"` // "keep" or "cascade"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Title: "Canvas Editor", Width: 1024, Height: 768},
		Canvas: CanvasConfig{IDs: "counter", DanglingEdges: "keep"},
	}
}

// Load builds the configuration from defaults, the TOML file at path (if
// path is not empty), a .env file in the working directory (if present)
// and CANVAS_* environment variables, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("CANVAS_TITLE"); v != "" {
		c.Window.Title = v
	}
	if v := os.Getenv("CANVAS_IDS"); v != "" {
		c.Canvas.IDs = v
	}
	if v := os.Getenv("CANVAS_DANGLING_EDGES"); v != "" {
		c.Canvas.DanglingEdges = v
	}
	for name, dst := range map[string]*float32{
		"CANVAS_WIDTH":  &c.Window.Width,
		"CANVAS_HEIGHT": &c.Window.Height,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = float32(f)
	}
	return nil
}
