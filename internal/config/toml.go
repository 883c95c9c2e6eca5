// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"github.com/verte-zerg/humanbench/internal/model"
)

const (
	// MinFPS and MaxFPS bound the tick rate.
	MinFPS = 1
	MaxFPS = 240
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Play PlayConfig    `toml:"play"`
	Log  LogFileConfig `toml:"log"`
}

// PlayConfig maps play-related settings.
type PlayConfig struct {
	Seed      *int64 `toml:"seed"`
	FPS       *int   `toml:"fps"`
	AltScreen *bool  `toml:"alt-screen"`
}

// LogFileConfig maps logging settings.
type LogFileConfig struct {
	File       *string `toml:"file"`
	Level      *string `toml:"level"`
	MaxSizeMB  *int    `toml:"max-size"`
	MaxBackups *int    `toml:"max-backups"`
	MaxAgeDays *int    `toml:"max-age"`
}

// Defaults returns the settings used when neither the file nor a flag sets a value.
func Defaults() model.Config {
	return model.Config{
		FPS:       60,
		AltScreen: true,
		Log: model.LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Apply overlays the values present in the file onto cfg.
func (f FileConfig) Apply(cfg *model.Config) {
	setIf(&cfg.Seed, f.Play.Seed)
	setIf(&cfg.FPS, f.Play.FPS)
	setIf(&cfg.AltScreen, f.Play.AltScreen)
	setIf(&cfg.Log.File, f.Log.File)
	setIf(&cfg.Log.Level, f.Log.Level)
	setIf(&cfg.Log.MaxSizeMB, f.Log.MaxSizeMB)
	setIf(&cfg.Log.MaxBackups, f.Log.MaxBackups)
	setIf(&cfg.Log.MaxAgeDays, f.Log.MaxAgeDays)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Validate checks resolved settings.
func Validate(cfg model.Config) error {
	if cfg.FPS < MinFPS || cfg.FPS > MaxFPS {
		return fmt.Errorf("fps must be between %d and %d", MinFPS, MaxFPS)
	}
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	if cfg.Log.MaxSizeMB < 0 || cfg.Log.MaxBackups < 0 || cfg.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation limits must be >= 0")
	}
	return nil
}
