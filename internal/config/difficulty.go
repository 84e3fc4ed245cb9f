package config

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DifficultyManager calculates the army speed based on kills or play time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.Clamp(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on kills/play time.
func (d *DifficultyManager) Level(kills int, played time.Duration) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "kills":
		progress = float64(kills) / maxAt
	case "time":
		progress = played.Seconds() / maxAt
	default:
		return d.initialLevel
	}

	progress = core.Clamp(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the army clock multiplier for the current level.
// Speed goes from 1 at level 0 to 1 + speed_multiplier at level 1.
func (d *DifficultyManager) Speed(kills int, played time.Duration) float64 {
	level := d.Level(kills, played)
	return 1.0 + level*d.cfg.Scaling.SpeedMultiplier
}
