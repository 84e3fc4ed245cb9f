package invaders

import "time"

// Snapshot captures the game state for tests and the end-of-game log line.
type Snapshot struct {
	PlayerX      int
	PlayerY      int
	Shots        int
	Invaders     int
	Kills        int
	ArmyInterval time.Duration
	Played       time.Duration
	Outcome      Outcome
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	pos := g.player.Position()
	return Snapshot{
		PlayerX:      pos.X,
		PlayerY:      pos.Y,
		Shots:        len(g.player.Shots()),
		Invaders:     g.army.Remaining(),
		Kills:        g.kills,
		ArmyInterval: g.army.Interval(),
		Played:       g.hud.Played(),
		Outcome:      g.outcome,
	}
}
