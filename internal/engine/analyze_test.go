package engine

import (
	"math"
	"reflect"
	"testing"

	"github.com/kennonjarvis-debug/JARVIS-AI/pkg/models"
)

func memoriesFor(actions ...string) []models.Memory {
	out := make([]models.Memory, 0, len(actions))
	for _, a := range actions {
		out = append(out, models.Memory{
			Metadata: models.MemoryMetadata{Action: a, Context: "ctx " + a},
		})
	}
	return out
}

func TestAnalyzeMemoriesEmpty(t *testing.T) {
	got := analyzeMemories(nil)

	if got.Intent != "unknown" {
		t.Errorf("Intent = %q, want unknown", got.Intent)
	}
	if got.Confidence != 0.0 {
		t.Errorf("Confidence = %v, want 0.0", got.Confidence)
	}
	if got.Recommendation != models.RecommendAskUser {
		t.Errorf("Recommendation = %q, want ask_user", got.Recommendation)
	}
}

func TestAnalyzeMemoriesNoActions(t *testing.T) {
	memories := []models.Memory{
		{Content: "something", Metadata: models.MemoryMetadata{Type: "note"}},
	}
	got := analyzeMemories(memories)

	if got.Intent != "unknown" {
		t.Errorf("Intent = %q, want unknown when no memory names an action", got.Intent)
	}
	if got.Patterns.TotalSamples != 1 {
		t.Errorf("TotalSamples = %d, want 1", got.Patterns.TotalSamples)
	}
}

func TestAnalyzeMemoriesRecommendationBands(t *testing.T) {
	tests := []struct {
		name           string
		actions        []string
		wantIntent     string
		wantConfidence float64
		wantRec        models.Recommendation
	}{
		{
			name:           "dominant action auto executes",
			actions:        []string{"deploy", "deploy", "deploy", "deploy", "test"},
			wantIntent:     "deploy",
			wantConfidence: 0.8,
			wantRec:        models.RecommendAutoExecute,
		},
		{
			name:           "majority suggests",
			actions:        []string{"deploy", "deploy", "test", "lint"},
			wantIntent:     "deploy",
			wantConfidence: 0.5,
			wantRec:        models.RecommendSuggest,
		},
		{
			name:           "weak pattern asks",
			actions:        []string{"a", "b", "c", "d"},
			wantIntent:     "a",
			wantConfidence: 0.25,
			wantRec:        models.RecommendAskUser,
		},
		{
			name:           "boundary at 0.7 auto executes",
			actions:        []string{"x", "x", "x", "x", "x", "x", "x", "y", "y", "y"},
			wantIntent:     "x",
			wantConfidence: 0.7,
			wantRec:        models.RecommendAutoExecute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzeMemories(memoriesFor(tt.actions...))

			if got.Intent != tt.wantIntent {
				t.Errorf("Intent = %q, want %q", got.Intent, tt.wantIntent)
			}
			if math.Abs(got.Confidence-tt.wantConfidence) > 1e-9 {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
			if got.Recommendation != tt.wantRec {
				t.Errorf("Recommendation = %q, want %q", got.Recommendation, tt.wantRec)
			}
		})
	}
}

func TestAnalyzeMemoriesExplanationBands(t *testing.T) {
	tests := []struct {
		name    string
		actions []string
		want    string
	}{
		{
			name:    "strong pattern at 0.8",
			actions: []string{"deploy", "deploy", "deploy", "deploy", "test"},
			want:    "You almost always do 'deploy' in this situation (80% of 5 times).",
		},
		{
			name:    "likely pattern at 0.5",
			actions: []string{"deploy", "deploy", "test", "lint"},
			want:    "You often do 'deploy' here (50% of 4 times).",
		},
		{
			// 0.7 auto-executes but is below the 0.8 explanation band.
			name:    "auto execute still phrased as often",
			actions: []string{"x", "x", "x", "x", "x", "x", "x", "y", "y", "y"},
			want:    "You often do 'x' here (70% of 10 times).",
		},
		{
			name:    "weak pattern",
			actions: []string{"a", "b", "c", "d"},
			want:    "You sometimes do 'a', but I need more data to be certain (4 samples).",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzeMemories(memoriesFor(tt.actions...))
			if got.Explanation != tt.want {
				t.Errorf("Explanation = %q, want %q", got.Explanation, tt.want)
			}
		})
	}
}

func TestAnalyzeMemoriesPatterns(t *testing.T) {
	got := analyzeMemories(memoriesFor("a", "b", "a", "b", "c"))

	wantDist := map[string]int{"a": 2, "b": 2, "c": 1}
	if !reflect.DeepEqual(got.Patterns.ActionDistribution, wantDist) {
		t.Errorf("ActionDistribution = %v, want %v", got.Patterns.ActionDistribution, wantDist)
	}

	// Only the a->b pair repeats.
	wantSeq := [][]string{{"a", "b"}}
	if !reflect.DeepEqual(got.Patterns.Sequences, wantSeq) {
		t.Errorf("Sequences = %v, want %v", got.Patterns.Sequences, wantSeq)
	}

	if got.Patterns.TotalSamples != 5 {
		t.Errorf("TotalSamples = %d, want 5", got.Patterns.TotalSamples)
	}
	if len(got.SampleContexts) != 5 {
		t.Errorf("SampleContexts has %d entries, want 5", len(got.SampleContexts))
	}
}

func TestAnalyzeMemoriesTieBreak(t *testing.T) {
	// a and b tie; the first-encountered action wins.
	got := analyzeMemories(memoriesFor("a", "b", "b", "a"))
	if got.Intent != "a" {
		t.Errorf("Intent = %q, want first-encountered a", got.Intent)
	}
}

func TestAnalyzeMemoriesSampleContextsCapped(t *testing.T) {
	got := analyzeMemories(memoriesFor("a", "a", "a", "a", "a", "a", "a", "a"))
	if len(got.SampleContexts) != maxSampleContexts {
		t.Errorf("SampleContexts has %d entries, want %d", len(got.SampleContexts), maxSampleContexts)
	}
}
