package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/audio"
)

var flagPlaySound string

var soundsCmd = &cobra.Command{
	Use:   "sounds",
	Short: "List and test the configured sound cues",
	Long: `Decodes every sound cue listed under "sounds" in the config and shows
its file and length. With --play, plays one cue and waits for it to finish.

Examples:
  invaders sounds
  invaders sounds --play startup
  INVADERS_SOUNDS_DIR=./assets invaders sounds`,
	Args: cobra.NoArgs,
	RunE: runSounds,
}

func init() {
	soundsCmd.Flags().StringVar(&flagPlaySound, "play", "", "Cue to play, e.g. pew")
}

func runSounds(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, logFile, err := openLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()

	var dev audio.Device = audio.NullDevice{}
	if flagPlaySound != "" {
		oto, err := audio.NewOtoDevice()
		if err != nil {
			return err
		}
		dev = oto
	}

	sounds := audio.NewService(dev, logger.WithPrefix("audio"))
	loadErr := sounds.LoadConfigured(cfg)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CUE\tLENGTH\tFILE")
	for _, name := range sortedNames(cfg.Sounds.Files) {
		length := "error"
		if clip, ok := sounds.Clip(name); ok {
			length = clip.Duration().String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, length, cfg.SoundPath(name))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if loadErr != nil {
		fmt.Fprintln(os.Stderr, loadErr)
	}

	if flagPlaySound != "" {
		if _, ok := sounds.Clip(flagPlaySound); !ok {
			return fmt.Errorf("%w: %q", audio.ErrUnknownSound, flagPlaySound)
		}
		sounds.Play(flagPlaySound)
	}
	return sounds.Close()
}
