// invaders is a space invaders clone that runs in the terminal.
//
// Usage:
//
//	invaders                 - Play (same as "invaders play")
//	invaders play            - Play the game
//	invaders sounds          - List and test sound cues
//	invaders config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--log-file <path>   - Log file (default from config: ~/.invaders/invaders.log)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - Defend the terminal from the invader army",
	Long: `Invaders is a space invaders clone rendered in your terminal.

Available commands:
  play     - Play the game (default)
  sounds   - List, decode and play the configured sound cues
  config   - Print the effective configuration

Examples:
  invaders
  invaders play --difficulty hard
  invaders play --backend tcell --no-title
  invaders sounds --play pew
  invaders config --config ./my-invaders.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (empty keeps the config value)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(soundsCmd)
	rootCmd.AddCommand(configCmd)
}
