// Package invaders implements the space invaders game entities: the player
// with its shots, the invader army and the HUD, plus the rules tying them
// together.
package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Settings holds the gameplay parameters of a session.
type Settings struct {
	Grid core.Size

	Cooldown time.Duration
	MaxShots int

	ShotStep  time.Duration
	Explosion time.Duration

	ArmyInterval    time.Duration
	ArmyMinInterval time.Duration
	DescentSpeedup  time.Duration
	ArmyRows        int
}

// SettingsFromConfig extracts gameplay settings from the loaded config.
func SettingsFromConfig(cfg config.Config) Settings {
	return Settings{
		Grid:            core.Size{W: cfg.Grid.Width, H: cfg.Grid.Height},
		Cooldown:        cfg.Player.Cooldown,
		MaxShots:        cfg.Player.MaxShots,
		ShotStep:        cfg.Shot.Step,
		Explosion:       cfg.Shot.Explosion,
		ArmyInterval:    cfg.Army.MoveInterval,
		ArmyMinInterval: cfg.Army.MinInterval,
		DescentSpeedup:  cfg.Army.DescentSpeedup,
		ArmyRows:        cfg.Army.Rows,
	}
}

// DefaultSettings returns the settings of the default config.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.Default())
}
