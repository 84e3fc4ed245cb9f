package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override loaded configuration.
const (
	EnvSoundsDir = "INVADERS_SOUNDS_DIR"
	EnvLogFile   = "INVADERS_LOG_FILE"
	EnvLogLevel  = "INVADERS_LOG_LEVEL"
	EnvBackend   = "INVADERS_BACKEND"
)

// Load loads game configuration.
// Search order: customPath -> ~/.invaders/config.yaml -> ./configs/invaders.yaml -> embedded default.
// Values from a file are layered over the defaults, so partial files are valid.
// Environment overrides (optionally read from ./.env) are applied last.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := loadDotEnv(".env"); err != nil {
		return cfg, err
	}
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg := Default()
		data, err := os.ReadFile(ExpandPath(customPath))
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, ok := parseIfExists(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := parseIfExists(filepath.Join("configs", "invaders.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseIfExists reads and parses a config file, reporting false on any failure.
func parseIfExists(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	return cfg, true
}

// loadDotEnv loads environment variables from a .env file if one exists.
// Variables already present in the environment are not overwritten.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

// applyEnv overrides config fields from INVADERS_* environment variables.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvSoundsDir); ok {
		cfg.Sounds.Dir = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.Log.File = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvBackend); ok && v != "" {
		cfg.Display.Backend = v
	}
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if c.Grid.Width < 3 || c.Grid.Height < 3 {
		return fmt.Errorf("config: grid must be at least 3x3, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Player.MaxShots < 1 {
		return fmt.Errorf("config: player.max_shots must be positive, got %d", c.Player.MaxShots)
	}
	if c.Player.Cooldown < 0 || c.Loop.Throttle < 0 {
		return errors.New("config: durations must not be negative")
	}
	if c.Shot.Step <= 0 || c.Army.MoveInterval <= 0 {
		return errors.New("config: shot.step and army.move_interval must be positive")
	}
	switch c.Display.Backend {
	case "ansi", "tcell":
	default:
		return fmt.Errorf("config: unknown display backend %q", c.Display.Backend)
	}
	return nil
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxShots = 3
	case DifficultyHard:
		cfg.Player.MaxShots = 1
	}
}

// SoundPath returns the path of a configured sound file, or empty if unknown.
func (c Config) SoundPath(name string) string {
	file, ok := c.Sounds.Files[name]
	if !ok || file == "" {
		return ""
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(ExpandPath(c.Sounds.Dir), file)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", filename)
}
