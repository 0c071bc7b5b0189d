// hurdle is an endless runner for the terminal: jump over obstacles that
// cross the stage faster and faster.
//
// Usage:
//
//	hurdle play              - Play in this terminal
//	hurdle serve             - Serve the game over SSH
//	hurdle scores            - Show the high-score table
//	hurdle defaults          - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Save scores to a SQLite database (off when empty)
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/hurdle/internal/games/runner"
)

const gameID = "runner"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	// Game flags shared by play and serve
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hurdle",
	Short: "Hurdle - an endless runner for your terminal",
	Long: `Hurdle is a terminal endless runner. Obstacles scroll in from the
right; jump over them to score. Every few seconds they get faster.

Available commands:
  play      - Play in this terminal
  serve     - Start an SSH server for remote play
  scores    - View high scores
  defaults  - Print the default configuration

Examples:
  hurdle play
  hurdle play --difficulty hard --db ~/.hurdle/scores.db
  hurdle serve --ssh :2222 --db ./scores.db
  hurdle defaults > ~/.hurdle/configs/runner.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (scores are not saved when empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	for _, cmd := range []*cobra.Command{playCmd, serveCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(defaultsCmd)
}
