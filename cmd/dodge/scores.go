package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs recorded in the scores database.

Examples:
  dodge scores
  dodge scores --limit 25
  dodge scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs and the high score")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearScores(dodge.GameID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	runs, err := store.TopRuns(dodge.GameID, flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}
	best, err := store.HighScore(dodge.GameID)
	if err != nil {
		return fmt.Errorf("error retrieving high score: %w", err)
	}

	fmt.Fprintln(out, "High Scores - Dodge the Poop")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'dodge play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  Best: %d\n\n", best)
	fmt.Fprintf(out, "  %-4s  %-6s  %-16s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-16s  %s\n", "----", "-----", "------", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-6d  %-16s  %s\n", i+1, r.Score, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
