package predict

import (
	"testing"

	"github.com/kennonjarvis-debug/JARVIS-AI/pkg/models"
)

type stubPredictor struct {
	sequence string
	context  string
}

func (s stubPredictor) PredictFromSequences(recentActions []string) string { return s.sequence }
func (s stubPredictor) PredictFromContext(context string) string           { return s.context }

func TestArbiterPredict(t *testing.T) {
	tests := []struct {
		name            string
		predictor       stubPredictor
		wantAction      string
		wantConfidence  float64
		wantStrategy    models.Strategy
		wantExplanation string
	}{
		{
			name:            "sequence strategy wins",
			predictor:       stubPredictor{sequence: "deploy", context: "test"},
			wantAction:      "deploy",
			wantConfidence:  0.7,
			wantStrategy:    models.StrategySequence,
			wantExplanation: "Based on your typical workflow, you usually do 'deploy' next.",
		},
		{
			name:            "context strategy as fallback",
			predictor:       stubPredictor{context: "test"},
			wantAction:      "test",
			wantConfidence:  0.6,
			wantStrategy:    models.StrategyContext,
			wantExplanation: "In similar situations, you've done 'test' before.",
		},
		{
			name:            "no data",
			predictor:       stubPredictor{},
			wantAction:      "",
			wantConfidence:  0.0,
			wantStrategy:    models.StrategyNone,
			wantExplanation: "Not enough data to make a prediction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArbiter(tt.predictor)
			got := a.Predict([]string{"x"}, "some context")

			if got.Action != tt.wantAction {
				t.Errorf("Action = %q, want %q", got.Action, tt.wantAction)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
			if got.Strategy != tt.wantStrategy {
				t.Errorf("Strategy = %q, want %q", got.Strategy, tt.wantStrategy)
			}
			if got.Explanation != tt.wantExplanation {
				t.Errorf("Explanation = %q, want %q", got.Explanation, tt.wantExplanation)
			}
		})
	}
}
