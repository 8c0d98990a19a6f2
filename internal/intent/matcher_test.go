package intent

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMatch(t *testing.T) {
	m := NewMatcher()

	tests := []struct {
		name           string
		text           string
		wantIntent     string
		wantConfidence float64
	}{
		{
			name:           "data processing",
			text:           "clean the csv data file",
			wantIntent:     "data_processing",
			wantConfidence: 0.6,
		},
		{
			name:           "api request",
			text:           "fetch the api endpoint",
			wantIntent:     "api_request",
			wantConfidence: 0.6,
		},
		{
			name:           "debugging",
			text:           "fix the bug in the parser",
			wantIntent:     "debugging",
			wantConfidence: 0.6,
		},
		{
			name:           "no match",
			text:           "hello there",
			wantIntent:     IntentUnknown,
			wantConfidence: 0.0,
		},
		{
			name:           "empty text",
			text:           "",
			wantIntent:     IntentUnknown,
			wantConfidence: 0.0,
		},
		{
			// Both the data_processing and data_analysis rules could match;
			// the earlier rule wins.
			name:           "first match wins",
			text:           "process the data then visualize it",
			wantIntent:     "data_processing",
			wantConfidence: 0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, confidence := m.Match(tt.text)
			if intent != tt.wantIntent {
				t.Errorf("Match(%q) intent = %q, want %q", tt.text, intent, tt.wantIntent)
			}
			if !almostEqual(confidence, tt.wantConfidence) {
				t.Errorf("Match(%q) confidence = %v, want %v", tt.text, confidence, tt.wantConfidence)
			}
		})
	}
}

func TestBoost(t *testing.T) {
	m := NewMatcher()

	tests := []struct {
		name          string
		intent        string
		text          string
		base          float64
		recentActions []string
		want          float64
	}{
		{
			name:   "no boosters matched",
			intent: "data_processing",
			text:   "work on the thing",
			base:   0.6,
			want:   0.6,
		},
		{
			name:   "single booster keyword",
			intent: "data_processing",
			text:   "use pandas for this",
			base:   0.6,
			want:   0.7,
		},
		{
			name:   "booster contribution capped",
			intent: "data_processing",
			text:   "clean and transform with pandas and numpy",
			base:   0.6,
			want:   0.9,
		},
		{
			name:          "recent action bonus",
			intent:        "testing",
			text:          "nothing relevant",
			base:          0.6,
			recentActions: []string{"build", "testing"},
			want:          0.7,
		},
		{
			name:          "clamped to one",
			intent:        "data_processing",
			text:          "clean and transform with pandas and numpy",
			base:          0.8,
			recentActions: []string{"data_processing"},
			want:          1.0,
		},
		{
			name:   "intent without boosters",
			intent: "deployment",
			text:   "deploy it now",
			base:   0.6,
			want:   0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Boost(tt.intent, tt.text, tt.base, tt.recentActions)
			if !almostEqual(got, tt.want) {
				t.Errorf("Boost() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPredict(t *testing.T) {
	m := NewMatcher()

	t.Run("match with boost", func(t *testing.T) {
		intent, confidence := m.Predict("clean the csv data file", nil)
		if intent != "data_processing" {
			t.Fatalf("intent = %q, want data_processing", intent)
		}
		// Base 0.6 plus one booster keyword ("clean").
		if !almostEqual(confidence, 0.7) {
			t.Errorf("confidence = %v, want 0.7", confidence)
		}
	})

	t.Run("unknown stays at zero", func(t *testing.T) {
		intent, confidence := m.Predict("good morning", []string{"testing"})
		if intent != IntentUnknown {
			t.Fatalf("intent = %q, want %q", intent, IntentUnknown)
		}
		if confidence != 0.0 {
			t.Errorf("confidence = %v, want 0.0", confidence)
		}
	})
}

func TestExplain(t *testing.T) {
	tests := []struct {
		name       string
		intent     string
		confidence float64
		want       string
	}{
		{
			name:       "high confidence",
			intent:     "testing",
			confidence: 0.9,
			want:       "HIGH CONFIDENCE: You want to test something - I'll help create tests.",
		},
		{
			name:       "likely",
			intent:     "debugging",
			confidence: 0.6,
			want:       "LIKELY: You're fixing a bug - I'll help debug it.",
		},
		{
			name:       "possible unknown intent",
			intent:     "deployment",
			confidence: 0.3,
			want:       "POSSIBLE: Detected intent: deployment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Explain(tt.intent, tt.confidence); got != tt.want {
				t.Errorf("Explain() = %q, want %q", got, tt.want)
			}
		})
	}
}
