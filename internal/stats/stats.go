// Package stats assembles a point-in-time report of what the prediction
// service has learned and how well it has been predicting.
package stats

import (
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/engine"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/pattern"
)

// Report is a snapshot of the service's learning state.
type Report struct {
	// SequencesLearned counts stored action sequences.
	SequencesLearned int `json:"sequences_learned"`
	// ActionsKnown counts distinct observed action labels.
	ActionsKnown int `json:"actions_known"`
	// ObservationsRecorded counts individual action observations.
	ObservationsRecorded int `json:"observations_recorded"`
	// PredictionsMade counts non-empty predictions produced so far.
	PredictionsMade int `json:"predictions_made"`
	// Accuracy is the share of predictions confirmed correct, 0.0 when
	// nothing has been confirmed yet.
	Accuracy float64 `json:"accuracy"`
	// CachedPredictions counts entries currently in the prediction cache.
	CachedPredictions int `json:"cached_predictions"`
	// BufferSize counts actions currently held in the user's recent-action
	// buffer, 0 when no user was named.
	BufferSize int `json:"buffer_size"`
	// TopActions lists the most frequently observed actions.
	TopActions []pattern.ActionTally `json:"top_actions,omitempty"`
	// RecentActions lists the user's last actions, oldest first.
	RecentActions []string `json:"recent_actions,omitempty"`
}

// Aggregator builds reports from a running engine.
type Aggregator struct {
	engine *engine.Engine
}

// NewAggregator returns an aggregator over the engine.
func NewAggregator(e *engine.Engine) *Aggregator {
	return &Aggregator{engine: e}
}

// Report assembles the current state. userID selects whose recent actions to
// include; empty means omit them.
func (a *Aggregator) Report(userID string) Report {
	learner := a.engine.Learner()

	report := Report{
		SequencesLearned:     learner.SequenceCount(),
		ActionsKnown:         learner.ActionCount(),
		ObservationsRecorded: learner.ObservationCount(),
		PredictionsMade:      a.engine.PredictionsMade(),
		Accuracy:             a.engine.Accuracy(),
		CachedPredictions:    a.engine.Cache().Len(),
		TopActions:           learner.TopActions(5),
	}
	if userID != "" {
		report.RecentActions = a.engine.RecentActions(userID)
		report.BufferSize = len(report.RecentActions)
	}
	return report
}
