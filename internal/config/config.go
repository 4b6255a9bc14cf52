// Package config loads demo and reflection settings from a YAML file, with
// MIRROR_* environment variables taking precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Window struct {
	Width     int    `yaml:"width" env:"WIDTH"`
	Height    int    `yaml:"height" env:"HEIGHT"`
	Title     string `yaml:"title" env:"TITLE"`
	TargetFPS int    `yaml:"targetFPS" env:"TARGET_FPS"`
	VSync     bool   `yaml:"vsync" env:"VSYNC"`
}

type Render struct {
	// Scale multiplies the resolution of intermediate render targets.
	Scale      float32 `yaml:"scale" env:"SCALE"`
	ShaderDir  string  `yaml:"shaderDir" env:"SHADER_DIR"`
	Background string  `yaml:"background" env:"BACKGROUND"`
}

type XR struct {
	Enabled bool `yaml:"enabled" env:"ENABLED"`
	// InterpupillaryDistance overrides the simulated headset's IPD, in
	// meters. Zero keeps the device default.
	InterpupillaryDistance float32 `yaml:"ipd" env:"IPD"`
}

type Reflection struct {
	Scale           float32 `yaml:"scale" env:"SCALE"`
	ClipPlaneOffset float32 `yaml:"clipPlaneOffset" env:"CLIP_PLANE_OFFSET"`
}

type Config struct {
	Scene      string     `yaml:"scene" env:"SCENE"`
	Window     Window     `yaml:"window" envPrefix:"WINDOW_"`
	Render     Render     `yaml:"render" envPrefix:"RENDER_"`
	XR         XR         `yaml:"xr" envPrefix:"XR_"`
	Reflection Reflection `yaml:"reflection" envPrefix:"REFLECTION_"`
}

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "MIRROR_"

func Default() Config {
	return Config{
		Scene: "assets/scenes/mirror.json",
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "Planar Mirror",
			TargetFPS: 120,
		},
		Render: Render{
			Scale:      1,
			ShaderDir:  "assets/shaders",
			Background: "#1e1e28",
		},
		Reflection: Reflection{
			Scale:           1,
			ClipPlaneOffset: 0.07,
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate clamps scales into range and rejects unusable windows.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	c.Reflection.Scale = clamp01(c.Reflection.Scale)
	if c.Render.Scale <= 0 {
		c.Render.Scale = 1
	}
	if c.XR.InterpupillaryDistance < 0 {
		c.XR.InterpupillaryDistance = 0
	}
	return nil
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}

// Save writes c as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
