// Package config loads the optional YAML configuration file shared by the
// serve and replay commands. Flags always win over file values; the file
// exists so deployments don't need a wall of flags.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "250ms" or "1h" parse.
// yaml.v3 has no native duration support.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the full application configuration.
type Config struct {
	Listen string       `yaml:"listen"`
	Replay ReplayConfig `yaml:"replay"`
	Redis  RedisConfig  `yaml:"redis"`
	Traces TracesConfig `yaml:"traces"`
}

// ReplayConfig controls replay pacing.
type ReplayConfig struct {
	Delay Duration `yaml:"delay"`
}

// RedisConfig configures the Redis trace store.
type RedisConfig struct {
	Addr     string   `yaml:"addr"`
	Password string   `yaml:"password"`
	DB       int      `yaml:"db"`
	Prefix   string   `yaml:"prefix"`
	TTL      Duration `yaml:"ttl"`
}

// TracesConfig configures the file trace store.
type TracesConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Listen: ":8080",
		Traces: TracesConfig{Dir: ".sortviz/traces"},
		Redis: RedisConfig{
			Prefix: "sortviz:trace:",
		},
	}
}

// Load reads and parses a YAML config file, layered over Default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
