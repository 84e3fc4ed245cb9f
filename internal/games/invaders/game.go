package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Sounds plays named cues without blocking.
type Sounds interface {
	Play(name string)
}

// Outcome is the state of a game session.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeQuit
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Game ties the entities together: it dispatches keys, resolves hits and
// decides when the session is over.
type Game struct {
	player     *Player
	army       *Army
	hud        *HUD
	sounds     Sounds
	difficulty *config.DifficultyManager

	kills   int
	outcome Outcome
}

// New creates a game. difficulty may be nil for a constant army speed.
func New(s Settings, sounds Sounds, difficulty *config.DifficultyManager) *Game {
	g := &Game{
		player:     NewPlayer(s),
		army:       NewArmy(s),
		hud:        &HUD{},
		sounds:     sounds,
		difficulty: difficulty,
	}
	g.hud.SetScore(0, g.army.Remaining())
	return g
}

// Start plays the startup cue.
func (g *Game) Start() {
	g.sounds.Play(config.SoundStartup)
}

// Player returns the player entity.
func (g *Game) Player() *Player {
	return g.player
}

// Army returns the invader army.
func (g *Game) Army() *Army {
	return g.army
}

// HandleKey applies one key press and reports whether the game should end.
// Keys without a binding play the shot cue and change nothing else.
func (g *Game) HandleKey(k core.Key) bool {
	switch k {
	case core.KeyLeft:
		g.player.MoveLeft()
	case core.KeyRight:
		g.player.MoveRight()
	case core.KeyAction:
		if g.player.Shoot() {
			g.sounds.Play(config.SoundPew)
		}
	case core.KeyQuit:
		g.sounds.Play(config.SoundLose)
		g.outcome = OutcomeQuit
		return true
	default:
		g.sounds.Play(config.SoundPew)
	}
	return false
}

// Entities returns every drawable in draw order: HUD, army, then the player
// with its shots on top.
func (g *Game) Entities() []core.Drawable {
	return []core.Drawable{g.hud, g.army, g.player}
}

// Resolve applies the rules after all entities were updated: cues for army
// steps, hits, difficulty and the end of the game.
func (g *Game) Resolve() {
	if g.outcome != OutcomePlaying {
		return
	}

	if g.army.Moved() {
		g.sounds.Play(config.SoundMove)
	}
	if hits := g.player.DetectHits(g.army); hits > 0 {
		g.kills += hits
		g.sounds.Play(config.SoundExplode)
	}
	g.hud.SetScore(g.kills, g.army.Remaining())

	if g.difficulty != nil && g.difficulty.IsEnabled() {
		g.army.SetSpeed(g.difficulty.Speed(g.kills, g.hud.Played()))
	}

	switch {
	case g.army.AllKilled():
		g.outcome = OutcomeWon
		g.sounds.Play(config.SoundWin)
	case g.army.ReachedBottom():
		g.outcome = OutcomeLost
		g.sounds.Play(config.SoundLose)
	}
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.outcome != OutcomePlaying
}

// Outcome returns the current outcome.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Kills returns the number of invaders destroyed.
func (g *Game) Kills() int {
	return g.kills
}
