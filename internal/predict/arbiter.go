// Package predict combines the learner's prediction strategies into a single
// answer and caches recent results.
package predict

import (
	"fmt"

	"github.com/kennonjarvis-debug/JARVIS-AI/pkg/models"
)

const (
	// sequenceWeight is the fixed confidence for sequence-derived predictions.
	sequenceWeight = 0.7
	// contextWeight is the fixed confidence for context-derived predictions.
	contextWeight = 0.6
)

// noDataExplanation is returned when no strategy produced a candidate.
const noDataExplanation = "Not enough data to make a prediction"

// Predictor is the strategy surface the arbiter consults. *pattern.Learner
// satisfies it.
type Predictor interface {
	PredictFromSequences(recentActions []string) string
	PredictFromContext(context string) string
}

// Arbiter runs the prediction strategies and picks the strongest candidate.
// Weights are static, so a sequence match always beats a context match.
type Arbiter struct {
	predictor Predictor
}

// NewArbiter returns an arbiter backed by the given predictor.
func NewArbiter(p Predictor) *Arbiter {
	return &Arbiter{predictor: p}
}

// Predict consults each strategy in weight order and returns the first that
// yields an action. With no usable candidate it returns the none prediction:
// empty action, zero confidence, a fixed explanation. It never errors; an
// unanswerable query is a value, not a failure.
func (a *Arbiter) Predict(recentActions []string, context string) models.Prediction {
	if action := a.predictor.PredictFromSequences(recentActions); action != "" {
		return models.Prediction{
			Action:      action,
			Confidence:  sequenceWeight,
			Strategy:    models.StrategySequence,
			Explanation: fmt.Sprintf("Based on your typical workflow, you usually do '%s' next.", action),
		}
	}

	if action := a.predictor.PredictFromContext(context); action != "" {
		return models.Prediction{
			Action:      action,
			Confidence:  contextWeight,
			Strategy:    models.StrategyContext,
			Explanation: fmt.Sprintf("In similar situations, you've done '%s' before.", action),
		}
	}

	return models.Prediction{
		Strategy:    models.StrategyNone,
		Explanation: noDataExplanation,
	}
}
