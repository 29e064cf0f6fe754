// Package config provides configuration loading for pushwatch: an
// optional YAML file under .github plus environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFilename is the default name for the pushwatch configuration file.
const ConfigFilename = ".github/pushwatch.yml"

// Environment variables recognized as overrides. They take precedence
// over the file; command-line flags take precedence over both.
const (
	EnvWorkflow = "PUSHWATCH_WORKFLOW"
	EnvRemote   = "PUSHWATCH_REMOTE"
	EnvBranch   = "PUSHWATCH_BRANCH"
)

// Defaults applied when neither file, environment, nor flags set a value.
const (
	DefaultWorkflow       = "ci.yml"
	DefaultRemote         = "origin"
	DefaultLocateAttempts = 150
	DefaultLocateInterval = 2 * time.Second
	DefaultTailInterval   = 5 * time.Second
)

// Config holds the resolved pushwatch settings.
type Config struct {
	Version  int    `yaml:"version"`
	Workflow string `yaml:"workflow"`
	Remote   string `yaml:"remote"`
	Branch   string `yaml:"branch"`
	CopyURL  bool   `yaml:"copy_url"`

	LocateAttempts int    `yaml:"locate_attempts"`
	LocateInterval string `yaml:"locate_interval"`
	TailInterval   string `yaml:"tail_interval"`
}

// Load loads the configuration from the default location under repoRoot.
// A missing file yields a default config, not an error.
func Load(repoRoot string) (*Config, error) {
	return LoadFrom(filepath.Join(repoRoot, ConfigFilename))
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Version != 0 && cfg.Version != 1 {
		return nil, fmt.Errorf("unsupported config version: %d (expected 1)", cfg.Version)
	}

	fillDefaults(&cfg)

	return &cfg, nil
}

// ApplyEnv overlays recognized environment variables onto the config.
func (c *Config) ApplyEnv() {
	c.applyEnv(os.Getenv)
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(EnvWorkflow); v != "" {
		c.Workflow = v
	}

	if v := getenv(EnvRemote); v != "" {
		c.Remote = v
	}

	if v := getenv(EnvBranch); v != "" {
		c.Branch = v
	}
}

// LocateIntervalDuration returns the parsed locate poll interval.
func (c *Config) LocateIntervalDuration() time.Duration {
	return parseInterval(c.LocateInterval, DefaultLocateInterval)
}

// TailIntervalDuration returns the parsed log poll interval.
func (c *Config) TailIntervalDuration() time.Duration {
	return parseInterval(c.TailInterval, DefaultTailInterval)
}

func parseInterval(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}

	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}

	return d
}

func defaultConfig() *Config {
	cfg := &Config{}
	fillDefaults(cfg)

	return cfg
}

func fillDefaults(cfg *Config) {
	if cfg.Workflow == "" {
		cfg.Workflow = DefaultWorkflow
	}

	if cfg.Remote == "" {
		cfg.Remote = DefaultRemote
	}

	if cfg.LocateAttempts <= 0 {
		cfg.LocateAttempts = DefaultLocateAttempts
	}
}
