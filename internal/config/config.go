package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	DB  DBConfig  `toml:"db"`
	Log LogConfig `toml:"log"`
}

type DBConfig struct {
	// Path overrides the default ~/.lifequest.db location.
	Path string `toml:"path"`
}

type LogConfig struct {
	Level slog.Level `toml:"level"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{Level: slog.LevelInfo},
	}
}

// DefaultPath returns ~/.lifequest.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".lifequest.toml"), nil
}

// Load reads the TOML config at path. A missing file is not an error; the
// defaults apply.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	cfg := Default()
	if err := toml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
