// Package config holds the daemon's persisted settings. The core keeps
// no files of its own; the daemon, like any other host shell, owns the
// user's preferences and pushes them into the engine at startup.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Shortcut is a persisted abbreviation record.
type Shortcut struct {
	Trigger   string `toml:"trigger"`
	Expansion string `toml:"expansion"`
	Priority  int    `toml:"priority"`
}

// Config holds daemon settings.
type Config struct {
	Enabled     bool   `toml:"enabled"`
	InputMethod int    `toml:"input_method"` // 0=Telex, 1=VNI
	ModernTone  bool   `toml:"modern_tone"`
	EscRestore  bool   `toml:"esc_restore"`
	LogFile     string `toml:"log_file"`

	Shortcuts []Shortcut `toml:"shortcut"`
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Enabled:     true,
		InputMethod: 0, // Telex
		ModernTone:  true,
		EscRestore:  true,
	}
}

// Path returns the XDG-compliant config file path.
func Path() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "vikey", "config.toml")
}

// Load reads the config file, creating it with defaults when missing.
func Load() (*Config, error) {
	path := Path()

	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config file.
func Save(cfg *Config) error {
	path := Path()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}
