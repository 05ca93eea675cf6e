package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the game configuration, loaded from YAML with sensible
// defaults for anything left out.
type Config struct {
	Window        WindowConfig      `yaml:"window"`
	PixelsPerUnit float64           `yaml:"pixels_per_unit"`
	ClipFPS       float64           `yaml:"clip_fps"`
	Atlas         string            `yaml:"atlas"`
	Map           string            `yaml:"map"`
	SpawnAliases  map[string]string `yaml:"spawn_aliases,omitempty"`
}

// WindowConfig sizes and titles the game window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window:        WindowConfig{Width: 1280, Height: 720, Title: "tilestage"},
		PixelsPerUnit: 16,
		ClipFPS:       8,
		Atlas:         "atlas.yaml",
		Map:           "maps/intro.json",
	}
}

// Load reads a YAML config file and fills unset fields from the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if c.PixelsPerUnit <= 0 {
		c.PixelsPerUnit = def.PixelsPerUnit
	}
	if c.ClipFPS <= 0 {
		c.ClipFPS = def.ClipFPS
	}
	if c.Atlas == "" {
		c.Atlas = def.Atlas
	}
	if c.Map == "" {
		c.Map = def.Map
	}
}

// FrameDuration converts the configured clip FPS into a per-frame duration
// in seconds.
func (c *Config) FrameDuration() float64 {
	fps := c.ClipFPS
	if fps <= 0 {
		fps = Default().ClipFPS
	}
	return 1 / fps
}
