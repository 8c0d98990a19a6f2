package engine

import (
	"fmt"
	"time"

	"github.com/kennonjarvis-debug/JARVIS-AI/internal/intent"
	"github.com/kennonjarvis-debug/JARVIS-AI/pkg/models"
)

// analyzeMemories mines recalled memories for the dominant action and the
// action pairs that repeat, then converts the dominant share into a
// confidence and a recommendation. With no memories it returns the unknown
// prediction at zero confidence.
func analyzeMemories(memories []models.Memory) models.MemoryPrediction {
	now := time.Now().UTC()

	if len(memories) == 0 {
		return models.MemoryPrediction{
			Intent:         intent.IntentUnknown,
			Confidence:     0.0,
			Recommendation: models.RecommendAskUser,
			Explanation:    "No similar past activity found for this context.",
			Patterns:       models.PatternSummary{},
			PredictedAt:    now,
		}
	}

	counts := make(map[string]int)
	var order []string
	var actions []string
	var samples []string

	for _, m := range memories {
		action := m.Metadata.Action
		if action == "" {
			continue
		}
		if _, seen := counts[action]; !seen {
			order = append(order, action)
		}
		counts[action]++
		actions = append(actions, action)
		if m.Metadata.Context != "" && len(samples) < maxSampleContexts {
			samples = append(samples, m.Metadata.Context)
		}
	}

	if len(actions) == 0 {
		return models.MemoryPrediction{
			Intent:         intent.IntentUnknown,
			Confidence:     0.0,
			Recommendation: models.RecommendAskUser,
			Explanation:    "No similar past activity found for this context.",
			Patterns:       models.PatternSummary{TotalSamples: len(memories)},
			PredictedAt:    now,
		}
	}

	top := order[0]
	for _, action := range order {
		if counts[action] > counts[top] {
			top = action
		}
	}

	confidence := float64(counts[top]) / float64(len(actions))

	return models.MemoryPrediction{
		Intent:         top,
		Confidence:     confidence,
		Recommendation: recommendationFor(confidence),
		Explanation:    explain(top, confidence, len(actions)),
		Patterns: models.PatternSummary{
			ActionDistribution: counts,
			Sequences:          repeatedPairs(actions),
			TotalSamples:       len(actions),
		},
		SampleContexts: samples,
		PredictedAt:    now,
	}
}

// repeatedPairs returns the adjacent action pairs that occur more than once,
// in first-occurrence order.
func repeatedPairs(actions []string) [][]string {
	type pair struct{ from, to string }
	counts := make(map[pair]int)
	var order []pair

	for i := 0; i < len(actions)-1; i++ {
		p := pair{actions[i], actions[i+1]}
		if _, seen := counts[p]; !seen {
			order = append(order, p)
		}
		counts[p]++
	}

	var repeated [][]string
	for _, p := range order {
		if counts[p] > 1 {
			repeated = append(repeated, []string{p.from, p.to})
		}
	}
	return repeated
}

func recommendationFor(confidence float64) models.Recommendation {
	switch {
	case confidence >= autoExecuteThreshold:
		return models.RecommendAutoExecute
	case confidence >= suggestThreshold:
		return models.RecommendSuggest
	default:
		return models.RecommendAskUser
	}
}

// Explanation bands are 0.8/0.5, independent of the recommendation thresholds.
const (
	strongExplanationBand = 0.8
	likelyExplanationBand = 0.5
)

func explain(action string, confidence float64, total int) string {
	pct := int(confidence * 100)
	switch {
	case confidence >= strongExplanationBand:
		return fmt.Sprintf("You almost always do '%s' in this situation (%d%% of %d times).", action, pct, total)
	case confidence >= likelyExplanationBand:
		return fmt.Sprintf("You often do '%s' here (%d%% of %d times).", action, pct, total)
	default:
		return fmt.Sprintf("You sometimes do '%s', but I need more data to be certain (%d samples).", action, total)
	}
}
