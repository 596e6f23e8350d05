package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties [name]",
	Short: "Show the difficulty levels",
	Long: `Shows every difficulty level with its snake speed and food lifetime,
or only the named level.

Examples:
  snake difficulties
  snake difficulties hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDifficulties,
}

func runDifficulties(cmd *cobra.Command, args []string) error {
	levels := config.All()
	if len(args) == 1 {
		d, err := config.ParseDifficulty(args[0])
		if err != nil {
			return err
		}
		levels = []config.Difficulty{d}
	}

	out := cmd.OutOrStdout()

	// Calculate column widths
	maxNameLen := len("Level")
	for _, d := range levels {
		if n := len(d.String()); n > maxNameLen {
			maxNameLen = n
		}
	}

	fmt.Fprintf(out, "  %-10s  %-*s  %s\n", "ID", maxNameLen, "Level", "Description")
	fmt.Fprintf(out, "  %-10s  %-*s  %s\n", "--", maxNameLen, "-----", "-----------")

	for _, d := range levels {
		lines := strings.Split(d.Description(), "\n")
		fmt.Fprintf(out, "  %-10s  %-*s  %s\n", d.ID(), maxNameLen, d.String(), lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(out, "  %-10s  %-*s  %s\n", "", maxNameLen, "", line)
		}
	}

	if len(args) == 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "New games start at %s.\n", config.DefaultDifficulty)
	}
	return nil
}
