package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hurdle/internal/platform/tui"
	"github.com/vovakirdan/hurdle/internal/registry"
	"github.com/vovakirdan/hurdle/internal/storage"
)

var (
	flagTop   int
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the high-score table stored in --db.

In a terminal this opens a scrollable scoreboard; with --plain or when
output is redirected it prints the top runs.

Examples:
  hurdle scores --db ~/.hurdle/scores.db
  hurdle scores --db ./scores.db --plain --top 5
  hurdle scores --db ./scores.db --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagTop, "top", 10, "Number of runs to print with --plain")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print instead of opening the scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return errors.New("no scores database: pass --db <path>")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	title := gameTitle()
	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, title, width, height)
	}

	return printScores(store, title)
}

func printScores(store *storage.Store, title string) error {
	runs, err := store.TopScores(gameID, flagTop)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hurdle play --db <path>' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-8s  %s\n", "Rank", "Player", "Score", "Mode", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-8s  %s\n", "----", "------", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-6d  %-8s  %s\n",
			i+1, r.Player, r.Score, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	return nil
}

// gameTitle looks up the display name in the registry.
func gameTitle() string {
	for _, g := range registry.List() {
		if g.ID == gameID {
			return g.Title
		}
	}
	return gameID
}
