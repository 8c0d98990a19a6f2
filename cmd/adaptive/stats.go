package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kennonjarvis-debug/JARVIS-AI/internal/config"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learned pattern statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats()
	},
}

func runStats() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	learner, err := loadLearner(cfg)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	bold.Println("Learned state")
	fmt.Printf("  Observations: %d\n", learner.ObservationCount())
	fmt.Printf("  Actions:      %d\n", learner.ActionCount())
	fmt.Printf("  Sequences:    %d\n", learner.SequenceCount())

	top := learner.TopActions(5)
	if len(top) > 0 {
		fmt.Println()
		bold.Println("Top actions")
		for _, tally := range top {
			fmt.Printf("  %s %s (%d)\n", color.GreenString("•"), tally.Action, tally.Count)
		}
	}

	return nil
}
