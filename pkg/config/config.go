// Package config loads viewer settings from the environment and resolves them
// against command-line flags.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the viewer settings.
type Config struct {
	FPS        int    `env:"SPOTLIGHT_FPS" envDefault:"60"`
	Background string `env:"SPOTLIGHT_BG" envDefault:"30,30,40"`
	PartsFile  string `env:"SPOTLIGHT_PARTS"`
	LogFile    string `env:"SPOTLIGHT_LOG"`
}

// Flags are command-line overrides. Zero values leave the setting alone.
type Flags struct {
	FPS        int
	Background string
	PartsFile  string
	LogFile    string
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment and applies flag overrides.
func Load(flags Flags) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Resolve(flags)
	if cfg.FPS <= 0 {
		return Config{}, fmt.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	if _, err := ParseColor(cfg.Background); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve applies non-zero flags over the environment values.
func (c *Config) Resolve(flags Flags) {
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Background != "" {
		c.Background = flags.Background
	}
	if flags.PartsFile != "" {
		c.PartsFile = flags.PartsFile
	}
	if flags.LogFile != "" {
		c.LogFile = flags.LogFile
	}
}

// BackgroundRGB returns the parsed background color.
func (c Config) BackgroundRGB() [3]uint8 {
	rgb, err := ParseColor(c.Background)
	if err != nil {
		return [3]uint8{30, 30, 40}
	}
	return rgb
}

// ParseColor parses an "R,G,B" triple.
func ParseColor(s string) ([3]uint8, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]uint8{}, fmt.Errorf("parse color %q: want R,G,B", s)
	}
	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return [3]uint8{}, fmt.Errorf("parse color %q: bad component %q", s, p)
		}
		rgb[i] = uint8(v)
	}
	return rgb, nil
}
