package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/debug"
	"github.com/vovakirdan/tui-invaders/internal/engine"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/terminal"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var (
	flagBackend    string
	flagDifficulty string
	flagNoTitle    bool
	flagMute       bool
	flagStatsView  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of invaders.

Controls (configurable under "keys"):
  Left/A     - Move left
  Right/D    - Move right
  Up/W       - Fire
  Esc/Q      - Quit

Difficulty options:
  easy   - Start slow, three shots in flight
  normal - Start at 30% speed-up, two shots in flight
  hard   - Start at 70% speed-up, one shot in flight
  fixed  - No speed-up as the game goes on

Examples:
  invaders play
  invaders play --difficulty easy --no-title
  invaders play --backend tcell
  invaders play --mute --statsview localhost:12600`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command plays too.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagBackend, "backend", "", "Display backend: ansi or tcell (empty keeps the config value)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagNoTitle, "no-title", false, "Skip the title screen")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().StringVar(&flagStatsView, "statsview", "", "Serve runtime stats on this address, e.g. "+debug.DefaultAddr)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagBackend != "" {
		cfg.Display.Backend = flagBackend
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}

	logger, logFile, err := openLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()

	if !terminal.IsTerminal(os.Stdin) || !terminal.IsTerminal(os.Stdout) {
		return fmt.Errorf("invaders needs an interactive terminal")
	}
	grid := core.Size{W: cfg.Grid.Width, H: cfg.Grid.Height}
	if err := terminal.CheckSize(os.Stdout, grid); err != nil {
		return err
	}

	keys := tui.NewKeyMap(cfg.Keys)
	if !flagNoTitle {
		res, err := tui.RunTitle(keys, preset, previewFrame(cfg))
		if err != nil {
			return fmt.Errorf("title screen: %w", err)
		}
		if res.Quit {
			return nil
		}
		preset = res.Preset
	}
	config.ApplyPreset(&cfg, preset)

	if flagStatsView != "" {
		debug.LaunchStatsView(flagStatsView, logger.WithPrefix("stats"))
	}

	sounds := openAudio(cfg, logger.WithPrefix("audio"))
	defer func() {
		if err := sounds.Close(); err != nil {
			logger.Warn("closing audio", "err", err)
		}
	}()

	game := invaders.New(invaders.SettingsFromConfig(cfg), sounds, config.NewDifficultyManager(cfg.Difficulty))

	dev, err := openDevice(cfg, keys)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting game",
		"backend", cfg.Display.Backend,
		"grid", fmt.Sprintf("%dx%d", grid.W, grid.H),
		"difficulty", preset,
	)
	res, err := engine.Run(ctx, engine.Session{
		Device:   dev,
		Game:     game,
		Audio:    sounds,
		Grid:     grid,
		Throttle: cfg.Loop.Throttle,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	snap := game.Snapshot()
	logger.Info("game over", "outcome", snap.Outcome, "kills", snap.Kills, "played", snap.Played, "stop", res.Stop)
	printOutcome(snap)
	return nil
}

// openAudio returns the sound service, falling back to silence when the
// audio output cannot be opened or sound is muted.
func openAudio(cfg config.Config, logger *log.Logger) *audio.Service {
	var dev audio.Device = audio.NullDevice{}
	if !flagMute {
		oto, err := audio.NewOtoDevice()
		if err != nil {
			logger.Warn("audio output unavailable, playing muted", "err", err)
		} else {
			dev = oto
		}
	}

	sounds := audio.NewService(dev, logger)
	if !flagMute {
		if err := sounds.LoadConfigured(cfg); err != nil {
			logger.Warn("some sounds could not be loaded", "err", err)
		}
	}
	return sounds
}

func openDevice(cfg config.Config, keys tui.KeyMap) (engine.Device, error) {
	switch cfg.Display.Backend {
	case "tcell":
		return terminal.OpenTcell(keys, cfg.Display.Color)
	default:
		return terminal.OpenANSI(os.Stdin, os.Stdout, keys, cfg.Display.Color)
	}
}

// previewFrame draws the opening position of a game for the title screen.
func previewFrame(cfg config.Config) *core.Frame {
	game := invaders.New(invaders.SettingsFromConfig(cfg), audio.NewService(audio.NullDevice{}, log.New(io.Discard)), nil)
	f := core.NewFrame(cfg.Grid.Width, cfg.Grid.Height)
	for _, e := range game.Entities() {
		e.Draw(f)
	}
	return f
}

func printOutcome(snap invaders.Snapshot) {
	switch snap.Outcome {
	case invaders.OutcomeWon:
		fmt.Printf("You win! All %d invaders destroyed in %s.\n", snap.Kills, snap.Played.Round(time.Second))
	case invaders.OutcomeLost:
		fmt.Printf("The invaders landed. %d destroyed.\n", snap.Kills)
	default:
		fmt.Printf("Game abandoned. %d invaders destroyed.\n", snap.Kills)
	}
}
