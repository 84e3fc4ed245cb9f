package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	def := Default()
	if cfg.Grid != def.Grid {
		t.Errorf("Grid = %+v, expected %+v", cfg.Grid, def.Grid)
	}
	if cfg.Shot != def.Shot {
		t.Errorf("Shot = %+v, expected %+v", cfg.Shot, def.Shot)
	}
	if cfg.Army != def.Army {
		t.Errorf("Army = %+v, expected %+v", cfg.Army, def.Army)
	}
	if cfg.Loop.Throttle != time.Millisecond {
		t.Errorf("Loop.Throttle = %v, expected 1ms", cfg.Loop.Throttle)
	}
	if len(cfg.Sounds.Files) != 6 {
		t.Errorf("Expected 6 sound files, got %d", len(cfg.Sounds.Files))
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := writeConfig(t, `
grid:
  width: 10
  height: 5
player:
  cooldown: 300ms
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.Width != 10 || cfg.Grid.Height != 5 {
		t.Errorf("Grid = %dx%d, expected 10x5", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Player.Cooldown != 300*time.Millisecond {
		t.Errorf("Cooldown = %v, expected 300ms", cfg.Player.Cooldown)
	}
	// Unspecified values keep their defaults
	if cfg.Player.MaxShots != 2 {
		t.Errorf("MaxShots = %d, expected default 2", cfg.Player.MaxShots)
	}
	if cfg.Shot.Step != 50*time.Millisecond {
		t.Errorf("Shot.Step = %v, expected default 50ms", cfg.Shot.Step)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with missing custom path should fail")
	}

	path := writeConfig(t, "grid: [not, a, map")
	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}

	path = writeConfig(t, "grid:\n  width: 1\n  height: 1\n")
	if _, err := Load(path); err == nil {
		t.Error("Load() with a 1x1 grid should fail validation")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvSoundsDir, "/tmp/sounds")
	t.Setenv(EnvBackend, "tcell")
	t.Setenv(EnvLogFile, "")

	cfg, err := Load(writeConfig(t, "{}"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Sounds.Dir != "/tmp/sounds" {
		t.Errorf("Sounds.Dir = %q, expected override", cfg.Sounds.Dir)
	}
	if cfg.Display.Backend != "tcell" {
		t.Errorf("Display.Backend = %q, expected tcell", cfg.Display.Backend)
	}
	if cfg.Log.File != "" {
		t.Errorf("Log.File = %q, expected logging disabled by empty override", cfg.Log.File)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"tiny grid", func(c *Config) { c.Grid.Width = 2 }, true},
		{"no shots", func(c *Config) { c.Player.MaxShots = 0 }, true},
		{"negative cooldown", func(c *Config) { c.Player.Cooldown = -time.Second }, true},
		{"zero shot step", func(c *Config) { c.Shot.Step = 0 }, true},
		{"unknown backend", func(c *Config) { c.Display.Backend = "sdl" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("Hard preset: enabled=%v level=%f", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}
	if cfg.Player.MaxShots != 1 {
		t.Errorf("Hard preset should limit shots to 1, got %d", cfg.Player.MaxShots)
	}

	cfg = Default()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("Fixed preset should disable progression")
	}

	cfg = Default()
	ApplyPreset(&cfg, ParsePreset("bogus"))
	if cfg.Player.MaxShots != 2 || !cfg.Difficulty.Enabled {
		t.Error("Unknown preset should leave config untouched")
	}
}

func TestSoundPath(t *testing.T) {
	cfg := Default()
	cfg.Sounds.Dir = "/opt/invaders/sounds"

	if got := cfg.SoundPath(SoundPew); got != filepath.Join("/opt/invaders/sounds", "pew.wav") {
		t.Errorf("SoundPath(pew) = %q", got)
	}
	if got := cfg.SoundPath("missing"); got != "" {
		t.Errorf("SoundPath(missing) = %q, expected empty", got)
	}

	cfg.Sounds.Files["abs"] = "/abs/boom.mp3"
	if got := cfg.SoundPath("abs"); got != "/abs/boom.mp3" {
		t.Errorf("Absolute sound path should be kept, got %q", got)
	}
}
