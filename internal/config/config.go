// Package config provides YAML-based configuration loading and difficulty
// management for the game.
package config

import "time"

// Config contains all configuration for a game session.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Loop       LoopConfig       `yaml:"loop"`
	Player     PlayerConfig     `yaml:"player"`
	Shot       ShotConfig       `yaml:"shot"`
	Army       ArmyConfig       `yaml:"army"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Sounds     SoundsConfig     `yaml:"sounds"`
	Keys       KeysConfig       `yaml:"keys"`
	Display    DisplayConfig    `yaml:"display"`
	Log        LogConfig        `yaml:"log"`
}

// GridConfig defines the fixed playfield dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoopConfig defines game loop timing.
type LoopConfig struct {
	Throttle time.Duration `yaml:"throttle"` // Sleep at the end of every tick
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Cooldown time.Duration `yaml:"cooldown"`  // Minimum time between shots
	MaxShots int           `yaml:"max_shots"` // Shots alive at once
}

// ShotConfig defines shot parameters.
type ShotConfig struct {
	Step      time.Duration `yaml:"step"`      // Time to advance one row
	Explosion time.Duration `yaml:"explosion"` // How long an explosion stays visible
}

// ArmyConfig defines the invader army parameters.
type ArmyConfig struct {
	MoveInterval   time.Duration `yaml:"move_interval"`   // Initial time between steps
	MinInterval    time.Duration `yaml:"min_interval"`    // Fastest step interval
	DescentSpeedup time.Duration `yaml:"descent_speedup"` // Interval reduction on each descent
	Rows           int           `yaml:"rows"`            // Invaders occupy rows above this one
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "kills", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Kills or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Army clock speed added at max difficulty
}

// SoundsConfig maps cue names to sample files.
type SoundsConfig struct {
	Dir   string            `yaml:"dir"`
	Files map[string]string `yaml:"files"`
}

// KeysConfig lists the key names bound to each game key.
// Names follow Bubble Tea's key naming ("left", "esc", "ctrl+c", "q").
type KeysConfig struct {
	Left   []string `yaml:"left"`
	Right  []string `yaml:"right"`
	Action []string `yaml:"action"`
	Quit   []string `yaml:"quit"`
}

// DisplayConfig selects the terminal backend.
type DisplayConfig struct {
	Backend string `yaml:"backend"` // "ansi" or "tcell"
	Color   bool   `yaml:"color"`
}

// LogConfig defines where diagnostics go while the screen is in use.
type LogConfig struct {
	File  string `yaml:"file"` // Empty disables logging
	Level string `yaml:"level"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset.
// Returns an empty preset for unknown values, meaning "use config default".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	}
	return ""
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Sound cue names used by the game.
const (
	SoundExplode = "explode"
	SoundLose    = "lose"
	SoundMove    = "move"
	SoundPew     = "pew"
	SoundStartup = "startup"
	SoundWin     = "win"
)
