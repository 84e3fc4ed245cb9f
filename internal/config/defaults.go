package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/invaders.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It mirrors defaults/invaders.yaml and is used if the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  40,
			Height: 20,
		},
		Loop: LoopConfig{
			Throttle: time.Millisecond,
		},
		Player: PlayerConfig{
			Cooldown: 0,
			MaxShots: 2,
		},
		Shot: ShotConfig{
			Step:      50 * time.Millisecond,
			Explosion: 250 * time.Millisecond,
		},
		Army: ArmyConfig{
			MoveInterval:   2 * time.Second,
			MinInterval:    250 * time.Millisecond,
			DescentSpeedup: 250 * time.Millisecond,
			Rows:           9,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "kills",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
		Sounds: SoundsConfig{
			Dir: "./assets/sounds",
			Files: map[string]string{
				SoundExplode: "explode.wav",
				SoundLose:    "lose.wav",
				SoundMove:    "move.wav",
				SoundPew:     "pew.wav",
				SoundStartup: "startup.wav",
				SoundWin:     "win.wav",
			},
		},
		Keys: KeysConfig{
			Left:   []string{"left", "a"},
			Right:  []string{"right", "d"},
			Action: []string{"up", "w"},
			Quit:   []string{"esc", "q", "ctrl+c"},
		},
		Display: DisplayConfig{
			Backend: "ansi",
			Color:   true,
		},
		Log: LogConfig{
			File:  "~/.invaders/invaders.log",
			Level: "info",
		},
	}
}
