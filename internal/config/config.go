package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
	Input  InputConfig  `toml:"input"`
}

type OutputConfig struct {
	Color bool `toml:"color"`
}

type LogConfig struct {
	Level string `toml:"level"` // zerolog level name.
}

type InputConfig struct {
	Packages string `toml:"packages"` // Default packages file for `report`.
}

func Default() *Config {
	return &Config{
		Output: OutputConfig{Color: true},
		Log:    LogConfig{Level: "info"},
	}
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "ftracker")
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from path, or from the default location if path is
// empty. Only the default file may be missing.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, err
		}
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if level := os.Getenv("FTRACKER_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if packages := os.Getenv("FTRACKER_PACKAGES"); packages != "" {
		cfg.Input.Packages = packages
	}
	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		cfg.Output.Color = false
	}
}
