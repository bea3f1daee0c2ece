// Package config handles the XDG configuration directory and settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tasklist/internal/store"
)

const (
	// AppName is the application directory name.
	AppName = "tasklist"

	// SettingsFile is the optional settings filename inside the config directory.
	SettingsFile = "config.yaml"

	// DefaultPrompt is shown before each interactive line.
	DefaultPrompt = "> "
)

// Config holds configuration paths and settings.
// Settings are read once at startup; tasks themselves are never written to disk.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `yaml:"-"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug"`

	// Quiet suppresses informational output.
	Quiet bool `yaml:"quiet"`

	// Prompt is written before each line in interactive mode.
	Prompt string `yaml:"prompt"`

	// AutoList re-renders the list after every change in interactive mode.
	AutoList bool `yaml:"auto_list"`

	// DefaultIcon is the icon name used by add when --icon is not given.
	DefaultIcon string `yaml:"default_icon"`

	// Seed seeds the sample task generator. Zero picks a time-based seed.
	Seed int64 `yaml:"seed"`
}

// New creates a new Config with defaults and the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/tasklist or $HOME/.config/tasklist.
func New(configDir string) *Config {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:         dir,
		Prompt:      DefaultPrompt,
		DefaultIcon: store.DefaultIcon.String(),
	}
}

// Load creates a Config and applies the settings file if one exists.
// A missing settings file is not an error.
func Load(configDir string) (*Config, error) {
	cfg := New(configDir)

	data, err := os.ReadFile(cfg.SettingsPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", SettingsFile, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks setting values.
func (c *Config) Validate() error {
	if _, err := store.ParseIconKind(c.DefaultIcon); err != nil {
		return fmt.Errorf("invalid default_icon: %w", err)
	}
	return nil
}

// Icon returns the parsed default icon, falling back to store.DefaultIcon.
func (c *Config) Icon() store.IconKind {
	icon, err := store.ParseIconKind(c.DefaultIcon)
	if err != nil {
		return store.DefaultIcon
	}
	return icon
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to the settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// HasSettings checks if the settings file exists.
func (c *Config) HasSettings() bool {
	_, err := os.Stat(c.SettingsPath())
	return err == nil
}
