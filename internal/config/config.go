package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	RefreshInterval time.Duration `yaml:"-"`
	RawInterval     string        `yaml:"refresh_interval"`
	AssetsDir       string        `yaml:"assets_dir"`
	BarWidth        int           `yaml:"bar_width"`
	LogFile         string        `yaml:"log_file"`
	Log             LogConfig     `yaml:"log"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads the config file at path. A missing file is not an error
// unless the path was explicitly requested: defaults cover everything.
func Load(path string, explicit bool) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err) && !explicit:
		// fall through to defaults
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "gitagotchi.yaml"
	}
	return filepath.Join(dir, "gitagotchi", "config.yaml")
}

func (c *Config) setDefaults() error {
	if c.RawInterval == "" {
		c.RawInterval = "1s"
	}
	d, err := time.ParseDuration(c.RawInterval)
	if err != nil {
		return fmt.Errorf("parse refresh_interval %q: %w", c.RawInterval, err)
	}
	c.RefreshInterval = d

	if c.AssetsDir == "" {
		c.AssetsDir = "assets"
	}
	if c.BarWidth == 0 {
		c.BarWidth = 20
	}
	if c.LogFile == "" {
		cache, err := os.UserCacheDir()
		if err != nil {
			cache = os.TempDir()
		}
		c.LogFile = filepath.Join(cache, "gitagotchi", "gitagotchi.log")
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	return nil
}

func (c *Config) validate() error {
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval must be positive, got %s", c.RawInterval)
	}
	if c.BarWidth < 1 {
		return fmt.Errorf("bar_width must be at least 1, got %d", c.BarWidth)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (debug|info|warn|error)", c.Log.Level)
	}
	return nil
}
