package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/humanbench/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg.Play.FPS != nil || cfg.Log.File != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigApply(t *testing.T) {
	path := writeConfig(t, `
[play]
seed = 42
fps = 30

[log]
file = "/tmp/hb.log"
level = "debug"
max-age = 1
`)
	fc, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := Defaults()
	fc.Apply(&cfg)
	if cfg.Seed != 42 || cfg.FPS != 30 || !cfg.AltScreen {
		t.Fatalf("unexpected play settings %+v", cfg)
	}
	if cfg.Log.File != "/tmp/hb.log" || cfg.Log.Level != "debug" || cfg.Log.MaxAgeDays != 1 {
		t.Fatalf("unexpected log settings %+v", cfg.Log)
	}
	if cfg.Log.MaxSizeMB != 10 || cfg.Log.MaxBackups != 3 {
		t.Fatalf("unset keys should keep defaults, got %+v", cfg.Log)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[play]\nspeed = 2\n")
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "play.speed") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadConfigBadSyntax(t *testing.T) {
	path := writeConfig(t, "[play\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(c *model.Config)
		wantErr bool
	}{
		{name: "defaults"},
		{name: "fps too low", mutate: func(c *model.Config) { c.FPS = 0 }, wantErr: true},
		{name: "fps too high", mutate: func(c *model.Config) { c.FPS = MaxFPS + 1 }, wantErr: true},
		{name: "fps max", mutate: func(c *model.Config) { c.FPS = MaxFPS }},
		{name: "bad level", mutate: func(c *model.Config) { c.Log.Level = "loud" }, wantErr: true},
		{name: "warn level", mutate: func(c *model.Config) { c.Log.Level = "warn" }},
		{name: "negative backups", mutate: func(c *model.Config) { c.Log.MaxBackups = -1 }, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			if tc.mutate != nil {
				tc.mutate(&cfg)
			}
			err := Validate(cfg)
			if (err != nil) != tc.wantErr {
				t.Fatalf("wantErr=%v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestDefaultConfigPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	want := filepath.Join(dir, "humanbench", "config.toml")
	if got := DefaultConfigPath(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
