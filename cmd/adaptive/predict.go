package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kennonjarvis-debug/JARVIS-AI/internal/config"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/intent"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/pattern"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/predict"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/store"
	"github.com/kennonjarvis-debug/JARVIS-AI/pkg/models"
)

var predictActions string

var predictCmd = &cobra.Command{
	Use:   "predict [text]",
	Short: "Predict intent and next action from learned state",
	Long: `Predicts the intent of a free-text request and, given recent actions,
the likely next action. Reads learned state from the local observation
database; no server needs to be running.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPredict(strings.Join(args, " "))
	},
}

func init() {
	predictCmd.Flags().StringVar(&predictActions, "actions", "", "Comma-separated recent actions, oldest first")
}

func runPredict(text string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	learner, err := loadLearner(cfg)
	if err != nil {
		return err
	}

	matcher := intent.NewMatcher()
	if cfg.Intent.RulesPath != "" {
		if err := intent.LoadRulesInto(matcher, cfg.Intent.RulesPath); err != nil {
			return fmt.Errorf("load intent rules: %w", err)
		}
	}

	var recent []string
	if predictActions != "" {
		for _, a := range strings.Split(predictActions, ",") {
			if a = strings.TrimSpace(a); a != "" {
				recent = append(recent, a)
			}
		}
	}

	label, confidence := matcher.Predict(text, recent)
	if label == intent.IntentUnknown {
		fmt.Printf("Intent: %s\n", color.YellowString(label))
	} else {
		fmt.Printf("Intent: %s (%.2f)\n", color.GreenString(label), confidence)
	}
	fmt.Println(intent.Explain(label, confidence))

	if len(recent) > 0 {
		arbiter := predict.NewArbiter(learner)
		next := arbiter.Predict(recent, text)
		if next.Strategy == models.StrategyNone {
			fmt.Printf("\nNext action: %s\n", color.YellowString("none"))
			fmt.Println(next.Explanation)
		} else {
			fmt.Printf("\nNext action: %s (%.2f, %s)\n",
				color.GreenString(next.Action), next.Confidence, next.Strategy)
			fmt.Println(next.Explanation)
		}
	}

	return nil
}

// loadLearner rebuilds a learner from the local observation database.
func loadLearner(cfg *config.Config) (*pattern.Learner, error) {
	dbPath := cfg.Storage.DBPath
	if dbPath == "" {
		dbPath = store.DefaultDBPath()
	}

	db, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open observation store: %w", err)
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate observation store: %w", err)
	}

	learner := pattern.NewLearner()
	if err := db.Replay(learner); err != nil {
		return nil, fmt.Errorf("replay observations: %w", err)
	}
	return learner, nil
}
