package main

import (
	"fmt"
	"io"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// topRunsPerDifficulty is how many runs the summary lists per difficulty.
const topRunsPerDifficulty = 3

// printSessionSummary prints the games played this session, per difficulty,
// followed by the best runs of each. Prints nothing when no game was finished.
func printSessionSummary(w io.Writer, store *storage.Store) error {
	stats, err := store.SessionStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		return nil
	}

	fmt.Fprintln(w, "Session summary")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-12s  %5s  %4s  %7s  %s\n", "Difficulty", "Games", "Best", "Average", "Playtime")
	fmt.Fprintf(w, "  %-12s  %5s  %4s  %7s  %s\n", "----------", "-----", "----", "-------", "--------")

	var total time.Duration
	for _, st := range stats {
		fmt.Fprintf(w, "  %-12s  %5d  %4d  %7.1f  %s\n",
			st.Difficulty, st.GamesCount, st.HighScore, st.AvgScore, snake.FormatPlaytime(st.TotalPlaytime))
		total += st.TotalPlaytime
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total playtime: %s\n", snake.FormatPlaytime(total))

	for _, st := range stats {
		runs, err := store.TopRuns(st.Difficulty, topRunsPerDifficulty)
		if err != nil {
			return err
		}

		fmt.Fprintln(w)
		fmt.Fprintf(w, "Top runs - %s\n", st.Difficulty)
		fmt.Fprintf(w, "  %-4s  %5s  %s\n", "Rank", "Score", "Playtime")
		fmt.Fprintf(w, "  %-4s  %5s  %s\n", "----", "-----", "--------")
		for i, r := range runs {
			fmt.Fprintf(w, "  %-4d  %5d  %s\n", i+1, r.Score, snake.FormatPlaytime(r.Playtime))
		}
	}
	return nil
}
