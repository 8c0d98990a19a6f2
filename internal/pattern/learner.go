// Package pattern implements the statistical pattern learner: it accumulates
// observed actions, contexts, and action sequences, and answers "what usually
// follows" queries from the accumulated frequencies.
package pattern

import (
	"strings"
	"sync"
)

const (
	// similarityThreshold is the minimum word-overlap similarity for a
	// recorded context to count as a vote in context-based prediction.
	similarityThreshold = 0.3
	// defaultSuccessRate is reported for actions with no observations.
	// It signals "unknown" rather than "bad".
	defaultSuccessRate = 0.5
	// defaultBestHour is reported for actions with no hour samples.
	defaultBestHour = 12
	// minSequenceLen is the shortest sequence worth learning from.
	minSequenceLen = 2
)

// successCount tracks success and failure tallies for one action.
type successCount struct {
	Success int
	Failure int
}

// Learner accumulates observations and action sequences and derives
// frequency statistics from them. All methods are safe for concurrent use;
// a single mutex serializes access to the mutable maps.
type Learner struct {
	mu sync.RWMutex

	// sequences holds observed action sequences in insertion order.
	// Duplicates are allowed; recency equals position.
	sequences [][]string

	// actionOrder lists action labels in first-observed order. Map
	// iteration in Go is randomized, so tie-breaks that must be stable
	// with respect to observation order walk this slice instead.
	actionOrder []string
	contexts    map[string][]string
	success     map[string]*successCount
	hours       map[string][]int
}

// NewLearner creates an empty Learner.
func NewLearner() *Learner {
	return &Learner{
		contexts: make(map[string][]string),
		success:  make(map[string]*successCount),
		hours:    make(map[string][]int),
	}
}

// Observe records a single action with its context, outcome, and hour of
// day. It is side-effect only and never fails.
func (l *Learner) Observe(action, context string, success bool, hour int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.touchAction(action)
	l.contexts[action] = append(l.contexts[action], context)

	counts := l.success[action]
	if success {
		counts.Success++
	} else {
		counts.Failure++
	}

	l.hours[action] = append(l.hours[action], hour)
}

// ObserveSequence appends an action sequence to the sequence log. Sequences
// shorter than two actions carry no follower information and are silently
// ignored; this is documented policy, not an error.
func (l *Learner) ObserveSequence(actions []string) {
	if len(actions) < minSequenceLen {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	seq := make([]string, len(actions))
	copy(seq, actions)
	l.sequences = append(l.sequences, seq)
}

// PredictFromSequences predicts the next action from the last element of
// recentActions: it scans every stored sequence for occurrences of that
// action (excluding final positions) and returns the most frequent
// follower. Ties break toward the follower first encountered during the
// scan, which makes the result stable with respect to sequence insertion
// order. Returns "" when no follower was ever observed.
func (l *Learner) PredictFromSequences(recentActions []string) string {
	if len(recentActions) == 0 {
		return ""
	}
	last := recentActions[len(recentActions)-1]

	l.mu.RLock()
	defer l.mu.RUnlock()

	counts := make(map[string]int)
	best := ""
	bestCount := 0
	for _, seq := range l.sequences {
		for i := 0; i < len(seq)-1; i++ {
			if seq[i] != last {
				continue
			}
			follower := seq[i+1]
			counts[follower]++
			// Strictly-greater keeps the first-encountered follower on ties.
			if counts[follower] > bestCount {
				best = follower
				bestCount = counts[follower]
			}
		}
	}

	return best
}

// PredictFromContext predicts an action from contexts similar to the query:
// every recorded context sample with word-overlap similarity of at least 0.3
// votes for its action, and the most-voted action wins. Ties break toward
// the action observed first. Returns "" when no sample clears the threshold.
func (l *Learner) PredictFromContext(context string) string {
	queryWords := tokenSet(context)

	l.mu.RLock()
	defer l.mu.RUnlock()

	best := ""
	bestVotes := 0
	for _, action := range l.actionOrder {
		votes := 0
		for _, sample := range l.contexts[action] {
			if similarity(queryWords, tokenSet(sample)) >= similarityThreshold {
				votes++
			}
		}
		if votes > bestVotes {
			best = action
			bestVotes = votes
		}
	}

	return best
}

// SuccessRate returns the observed success rate for an action. An action
// with no observations reports 0.5: unknown, not failing.
func (l *Learner) SuccessRate(action string) float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	counts, ok := l.success[action]
	if !ok {
		return defaultSuccessRate
	}
	total := counts.Success + counts.Failure
	if total == 0 {
		return defaultSuccessRate
	}
	return float64(counts.Success) / float64(total)
}

// BestHour returns the hour of day the action is most often observed at,
// defaulting to noon when there are no samples. Ties break toward the hour
// recorded first.
func (l *Learner) BestHour(action string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	samples := l.hours[action]
	if len(samples) == 0 {
		return defaultBestHour
	}

	counts := make(map[int]int)
	best := samples[0]
	bestCount := 0
	for _, hour := range samples {
		counts[hour]++
		if counts[hour] > bestCount {
			best = hour
			bestCount = counts[hour]
		}
	}
	return best
}

// SequenceCount returns the number of learned sequences.
func (l *Learner) SequenceCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.sequences)
}

// ActionCount returns the number of distinct actions observed.
func (l *Learner) ActionCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.actionOrder)
}

// ObservationCount returns the total number of recorded observations.
func (l *Learner) ObservationCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := 0
	for _, samples := range l.contexts {
		total += len(samples)
	}
	return total
}

// ActionTally pairs an action label with its observation count.
type ActionTally struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}

// TopActions returns up to limit actions by observation count, most
// observed first. Ties order by first observation.
func (l *Learner) TopActions(limit int) []ActionTally {
	l.mu.RLock()
	defer l.mu.RUnlock()

	tallies := make([]ActionTally, 0, len(l.actionOrder))
	for _, action := range l.actionOrder {
		tallies = append(tallies, ActionTally{Action: action, Count: len(l.contexts[action])})
	}

	// Insertion sort keeps the first-observed order stable within equal counts.
	for i := 1; i < len(tallies); i++ {
		for j := i; j > 0 && tallies[j].Count > tallies[j-1].Count; j-- {
			tallies[j], tallies[j-1] = tallies[j-1], tallies[j]
		}
	}

	if limit > 0 && len(tallies) > limit {
		tallies = tallies[:limit]
	}
	return tallies
}

// touchAction registers an action label the first time it is observed.
// Caller must hold the write lock.
func (l *Learner) touchAction(action string) {
	if _, ok := l.success[action]; ok {
		return
	}
	l.actionOrder = append(l.actionOrder, action)
	l.success[action] = &successCount{}
}

// tokenSet splits text into a set of lowercased whitespace-delimited words.
func tokenSet(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// similarity computes Jaccard word overlap between two token sets:
// |intersection| / |union|. Empty sets never match.
func similarity(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
