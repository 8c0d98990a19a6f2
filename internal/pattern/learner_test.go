package pattern

import (
	"math"
	"testing"
)

func TestObserveSequenceMinimumLength(t *testing.T) {
	l := NewLearner()

	l.ObserveSequence(nil)
	l.ObserveSequence([]string{"solo"})
	if got := l.SequenceCount(); got != 0 {
		t.Fatalf("SequenceCount() = %d, want 0 for too-short sequences", got)
	}

	l.ObserveSequence([]string{"a", "b"})
	if got := l.SequenceCount(); got != 1 {
		t.Fatalf("SequenceCount() = %d, want 1", got)
	}
}

func TestPredictFromSequences(t *testing.T) {
	l := NewLearner()
	l.ObserveSequence([]string{"a", "b"})
	l.ObserveSequence([]string{"a", "b"})
	l.ObserveSequence([]string{"a", "c"})

	tests := []struct {
		name   string
		recent []string
		want   string
	}{
		{
			name:   "most frequent follower wins",
			recent: []string{"x", "a"},
			want:   "b",
		},
		{
			name:   "no recent actions",
			recent: nil,
			want:   "",
		},
		{
			name:   "unseen action",
			recent: []string{"z"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.PredictFromSequences(tt.recent); got != tt.want {
				t.Errorf("PredictFromSequences(%v) = %q, want %q", tt.recent, got, tt.want)
			}
		})
	}
}

func TestPredictFromSequencesTieBreak(t *testing.T) {
	l := NewLearner()
	// b and c follow a equally often; the first-encountered follower wins.
	l.ObserveSequence([]string{"a", "b"})
	l.ObserveSequence([]string{"a", "c"})

	if got := l.PredictFromSequences([]string{"a"}); got != "b" {
		t.Errorf("PredictFromSequences() = %q, want first-encountered %q", got, "b")
	}
}

func TestPredictFromContext(t *testing.T) {
	l := NewLearner()
	l.Observe("deploy", "ship the release to production", true, 9)
	l.Observe("test", "run the unit tests locally", true, 10)

	tests := []struct {
		name    string
		context string
		want    string
	}{
		{
			name:    "similar context",
			context: "ship release to production",
			want:    "deploy",
		},
		{
			name:    "empty context",
			context: "",
			want:    "",
		},
		{
			name:    "dissimilar context",
			context: "water the office plants",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.PredictFromContext(tt.context); got != tt.want {
				t.Errorf("PredictFromContext(%q) = %q, want %q", tt.context, got, tt.want)
			}
		})
	}
}

func TestSuccessRate(t *testing.T) {
	l := NewLearner()
	l.Observe("deploy", "ctx", true, 9)
	l.Observe("deploy", "ctx", true, 9)
	l.Observe("deploy", "ctx", false, 9)

	if got := l.SuccessRate("deploy"); math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("SuccessRate(deploy) = %v, want 2/3", got)
	}
	// Unknown is 0.5, not 0: no evidence either way.
	if got := l.SuccessRate("never_seen"); got != 0.5 {
		t.Errorf("SuccessRate(never_seen) = %v, want 0.5", got)
	}
}

func TestBestHour(t *testing.T) {
	l := NewLearner()
	l.Observe("deploy", "ctx", true, 9)
	l.Observe("deploy", "ctx", true, 14)
	l.Observe("deploy", "ctx", true, 9)

	if got := l.BestHour("deploy"); got != 9 {
		t.Errorf("BestHour(deploy) = %d, want 9", got)
	}
	if got := l.BestHour("never_seen"); got != 12 {
		t.Errorf("BestHour(never_seen) = %d, want noon default", got)
	}
}

func TestCounts(t *testing.T) {
	l := NewLearner()
	l.Observe("a", "ctx one", true, 1)
	l.Observe("a", "ctx two", true, 2)
	l.Observe("b", "ctx three", false, 3)

	if got := l.ActionCount(); got != 2 {
		t.Errorf("ActionCount() = %d, want 2", got)
	}
	if got := l.ObservationCount(); got != 3 {
		t.Errorf("ObservationCount() = %d, want 3", got)
	}
}

func TestTopActions(t *testing.T) {
	l := NewLearner()
	l.Observe("b", "ctx", true, 1)
	l.Observe("a", "ctx", true, 1)
	l.Observe("a", "ctx", true, 1)

	top := l.TopActions(5)
	if len(top) != 2 {
		t.Fatalf("got %d tallies, want 2", len(top))
	}
	if top[0].Action != "a" || top[0].Count != 2 {
		t.Errorf("top[0] = %+v, want a with count 2", top[0])
	}
	if top[1].Action != "b" || top[1].Count != 1 {
		t.Errorf("top[1] = %+v, want b with count 1", top[1])
	}

	if limited := l.TopActions(1); len(limited) != 1 {
		t.Errorf("TopActions(1) returned %d tallies, want 1", len(limited))
	}
}
