// Package models defines the shared data types for the adaptive prediction
// service: observations, predictions, and recalled memories.
package models

import "time"

// Strategy identifies how a prediction was produced.
type Strategy string

const (
	// StrategySequence means the prediction came from learned action sequences.
	StrategySequence Strategy = "sequence"
	// StrategyContext means the prediction came from context similarity.
	StrategyContext Strategy = "context"
	// StrategyText means the prediction came from text intent matching.
	StrategyText Strategy = "text"
	// StrategyNone means no strategy produced a usable prediction.
	StrategyNone Strategy = "none"
)

// Valid returns true if the strategy is a known value.
func (s Strategy) Valid() bool {
	switch s {
	case StrategySequence, StrategyContext, StrategyText, StrategyNone:
		return true
	default:
		return false
	}
}

// Prediction is the result of a predict query. Unknown and low-confidence
// results are first-class values, never errors.
type Prediction struct {
	// Action is the predicted next action or intent label. Empty when
	// Strategy is StrategyNone.
	Action string `json:"action"`
	// Confidence is the learner's certainty, always in [0, 1].
	Confidence float64 `json:"confidence"`
	// Strategy identifies which method produced this prediction.
	Strategy Strategy `json:"strategy"`
	// Explanation is a human-readable justification naming the action.
	Explanation string `json:"explanation"`
}

// Observation records a single observed user action with its context.
// Observations are immutable once recorded.
type Observation struct {
	// Action is the discrete workflow step that was taken.
	Action string `json:"action"`
	// Context is the free-text situation the action was taken in.
	Context string `json:"context"`
	// Success indicates whether the action succeeded.
	Success bool `json:"success"`
	// Hour is the hour of day the action was taken (0-23).
	Hour int `json:"hour"`
}

// Memory is one recalled past interaction from the memory collaborator.
type Memory struct {
	Content  string         `json:"content"`
	Metadata MemoryMetadata `json:"metadata"`
}

// MemoryMetadata carries the structured fields attached to a memory.
type MemoryMetadata struct {
	Type      string `json:"type,omitempty"`
	Action    string `json:"action,omitempty"`
	UserID    string `json:"userId,omitempty"`
	Success   bool   `json:"success,omitempty"`
	Context   string `json:"context,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Recommendation classifies how a memory-backed prediction should be acted on.
type Recommendation string

const (
	// RecommendAutoExecute means confidence is high enough to act without asking.
	RecommendAutoExecute Recommendation = "auto_execute"
	// RecommendSuggest means the prediction should be offered to the user.
	RecommendSuggest Recommendation = "suggest"
	// RecommendAskUser means there is not enough signal to suggest anything.
	RecommendAskUser Recommendation = "ask_user"
)

// MemoryPrediction is the richer prediction shape produced by the
// memory-backed engine path, including pattern evidence.
type MemoryPrediction struct {
	// Intent is the predicted intent, or "unknown" when no pattern was found.
	Intent string `json:"intent"`
	// Confidence is the share of recalled memories supporting the intent.
	Confidence float64 `json:"confidence"`
	// Recommendation classifies the confidence band.
	Recommendation Recommendation `json:"recommendation"`
	// Explanation is a human-readable justification.
	Explanation string `json:"explanation"`
	// Patterns summarizes the evidence behind the prediction.
	Patterns PatternSummary `json:"patterns"`
	// SampleContexts holds up to five example contexts from the memories.
	SampleContexts []string `json:"sample_contexts,omitempty"`
	// PredictedAt is when the prediction was computed.
	PredictedAt time.Time `json:"predicted_at"`
}

// PatternSummary is the evidence extracted from recalled memories.
type PatternSummary struct {
	// ActionDistribution maps the most common actions to their counts.
	ActionDistribution map[string]int `json:"action_distribution,omitempty"`
	// Sequences lists adjacent action pairs observed more than once.
	Sequences [][]string `json:"sequences,omitempty"`
	// TotalSamples is the number of memories the analysis covered.
	TotalSamples int `json:"total_samples"`
}
