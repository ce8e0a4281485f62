package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for a test run
type Config struct {
	// Selection
	Filter   string `yaml:"filter"`
	FailFast bool   `yaml:"fail_fast"`

	// Output settings
	NameWidth int    `yaml:"name_width"`
	Color     bool   `yaml:"color"`
	LogLevel  string `yaml:"log_level"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// Flags holds command-line flags
type Flags struct {
	Filter     string
	FailFast   bool
	NoColor    bool
	NameWidth  int
	Verbose    bool
	ConfigFile string
	EnvFile    string
}

// New creates a new Config with defaults. Colour is on only when fatih/color
// detects a terminal and NO_COLOR is unset.
func New() *Config {
	return &Config{
		NameWidth: DefaultNameWidth,
		Color:     !color.NoColor,
		LogLevel:  DefaultLogLevel,
		Flags:     Flags{EnvFile: DefaultEnvFile},
	}
}

// Load creates a config from defaults, the YAML file, the environment and
// flags, in increasing order of precedence.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags

	if flags.ConfigFile != "" {
		if err := cfg.LoadFile(flags.ConfigFile); err != nil {
			return nil, err
		}
	}
	if err := cfg.LoadEnv(flags.EnvFile); err != nil {
		return nil, err
	}
	cfg.ApplyFlags(flags)
	return cfg, nil
}

// LoadFile reads YAML settings from path over the current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// LoadEnv loads envFile into the process environment, if it exists, and
// applies the HARNESS_* variables.
func (c *Config) LoadEnv(envFile string) error {
	if envFile != "" {
		// .env file might not exist, that's okay - use environment variables
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	if v, ok := os.LookupEnv(EnvFilter); ok {
		c.Filter = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvNameWidth); ok && v != "" {
		width, err := strconv.Atoi(v)
		if err != nil || width <= 0 {
			return fmt.Errorf("invalid %s %q: must be a positive integer", EnvNameWidth, v)
		}
		c.NameWidth = width
	}
	if v, ok := os.LookupEnv(EnvNoColor); ok && v != "" {
		noColor, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvNoColor, v, err)
		}
		c.Color = !noColor
	}
	if v, ok := os.LookupEnv(EnvFailFast); ok && v != "" {
		failFast, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvFailFast, v, err)
		}
		c.FailFast = failFast
	}
	return nil
}

// ApplyFlags overrides settings with the flags that were given.
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Filter != "" {
		c.Filter = flags.Filter
	}
	if flags.FailFast {
		c.FailFast = true
	}
	if flags.NoColor {
		c.Color = false
	}
	if flags.NameWidth > 0 {
		c.NameWidth = flags.NameWidth
	}
	if flags.Verbose {
		c.LogLevel = "debug"
	}
}

// GetFilter returns the prefix filter, preferring a positional argument.
func (c *Config) GetFilter(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return c.Filter
}
