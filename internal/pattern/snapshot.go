package pattern

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Snapshot is the flat persistence document for a Learner's full state.
type Snapshot struct {
	Sequences      [][]string          `json:"sequences"`
	ActionContexts map[string][]string `json:"action_contexts"`
	ActionSuccess  map[string]Outcomes `json:"action_success"`
	TimePatterns   map[string][]int    `json:"time_patterns"`
}

// Outcomes holds the persisted success/failure tallies for one action.
type Outcomes struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

// Snapshot captures the learner's current state.
func (l *Learner) Snapshot() *Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snap := &Snapshot{
		Sequences:      make([][]string, 0, len(l.sequences)),
		ActionContexts: make(map[string][]string, len(l.contexts)),
		ActionSuccess:  make(map[string]Outcomes, len(l.success)),
		TimePatterns:   make(map[string][]int, len(l.hours)),
	}

	for _, seq := range l.sequences {
		cp := make([]string, len(seq))
		copy(cp, seq)
		snap.Sequences = append(snap.Sequences, cp)
	}
	for action, samples := range l.contexts {
		cp := make([]string, len(samples))
		copy(cp, samples)
		snap.ActionContexts[action] = cp
	}
	for action, counts := range l.success {
		snap.ActionSuccess[action] = Outcomes{Success: counts.Success, Failure: counts.Failure}
	}
	for action, samples := range l.hours {
		cp := make([]int, len(samples))
		copy(cp, samples)
		snap.TimePatterns[action] = cp
	}

	return snap
}

// Restore replaces the learner's state with the snapshot contents. Missing
// keys in the snapshot default to empty. Actions are re-registered in sorted
// label order: the snapshot format does not record observation order, so
// tie-breaks after a restore are stable but alphabetical.
func (l *Learner) Restore(snap *Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sequences = nil
	l.actionOrder = nil
	l.contexts = make(map[string][]string)
	l.success = make(map[string]*successCount)
	l.hours = make(map[string][]int)

	for _, seq := range snap.Sequences {
		if len(seq) < minSequenceLen {
			continue
		}
		cp := make([]string, len(seq))
		copy(cp, seq)
		l.sequences = append(l.sequences, cp)
	}

	actions := make(map[string]struct{})
	for action := range snap.ActionContexts {
		actions[action] = struct{}{}
	}
	for action := range snap.ActionSuccess {
		actions[action] = struct{}{}
	}
	for action := range snap.TimePatterns {
		actions[action] = struct{}{}
	}

	ordered := make([]string, 0, len(actions))
	for action := range actions {
		ordered = append(ordered, action)
	}
	sort.Strings(ordered)

	for _, action := range ordered {
		l.touchAction(action)
		if samples, ok := snap.ActionContexts[action]; ok {
			cp := make([]string, len(samples))
			copy(cp, samples)
			l.contexts[action] = cp
		}
		if counts, ok := snap.ActionSuccess[action]; ok {
			l.success[action] = &successCount{Success: counts.Success, Failure: counts.Failure}
		}
		if samples, ok := snap.TimePatterns[action]; ok {
			cp := make([]int, len(samples))
			copy(cp, samples)
			l.hours[action] = cp
		}
	}
}

// Save writes the learner state to a JSON file at path.
func (l *Learner) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(l.Snapshot()); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Load reads a JSON snapshot from path and restores it into the learner.
// A partially-present document is fine (missing keys default to empty), but
// a structurally malformed document is an error: silently corrupting
// persisted learning is worse than stopping.
func (l *Learner) Load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot file: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("malformed snapshot %s: %w", path, err)
	}

	l.Restore(&snap)
	return nil
}
