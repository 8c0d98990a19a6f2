package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kennonjarvis-debug/JARVIS-AI/internal/pattern"
)

func writeTestSnapshot(t *testing.T, path string) {
	t.Helper()

	learner := pattern.NewLearner()
	learner.Observe("deploy", "ship the release", true, 9)
	learner.Observe("test", "run the suite", true, 9)
	learner.ObserveSequence([]string{"test", "deploy"})

	if err := learner.Save(path); err != nil {
		t.Fatalf("saving snapshot: %v", err)
	}
}

func TestImportSnapshot(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "export.json")
	dest := filepath.Join(dir, "restore.json")
	writeTestSnapshot(t, src)

	learner, err := importSnapshot(src, dest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if learner.ObservationCount() != 2 || learner.SequenceCount() != 1 {
		t.Errorf("imported counts = %d observations, %d sequences; want 2, 1",
			learner.ObservationCount(), learner.SequenceCount())
	}

	// The installed copy must itself be loadable.
	restored := pattern.NewLearner()
	if err := restored.Load(dest); err != nil {
		t.Fatalf("loading installed snapshot: %v", err)
	}
	if restored.ObservationCount() != 2 || restored.SequenceCount() != 1 {
		t.Errorf("restored counts = %d observations, %d sequences; want 2, 1",
			restored.ObservationCount(), restored.SequenceCount())
	}
}

func TestImportSnapshotRejectsBadFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(src, []byte("not json"), 0644); err != nil {
		t.Fatalf("writing bad snapshot: %v", err)
	}

	if _, err := importSnapshot(src, filepath.Join(dir, "restore.json")); err == nil {
		t.Fatal("expected error for a malformed snapshot")
	}
}

func TestSeedFromSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "restore.json")
	writeTestSnapshot(t, path)

	t.Run("fresh learner restores", func(t *testing.T) {
		learner := pattern.NewLearner()
		if err := seedFromSnapshot(learner, path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if learner.ObservationCount() != 2 || learner.SequenceCount() != 1 {
			t.Errorf("seeded counts = %d observations, %d sequences; want 2, 1",
				learner.ObservationCount(), learner.SequenceCount())
		}
	})

	t.Run("replayed history wins over snapshot", func(t *testing.T) {
		learner := pattern.NewLearner()
		learner.Observe("lint", "check the code", true, 10)

		if err := seedFromSnapshot(learner, path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if learner.ObservationCount() != 1 {
			t.Errorf("ObservationCount = %d, want the replayed history untouched", learner.ObservationCount())
		}
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		learner := pattern.NewLearner()
		if err := seedFromSnapshot(learner, filepath.Join(dir, "nope.json")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unconfigured path is a no-op", func(t *testing.T) {
		learner := pattern.NewLearner()
		if err := seedFromSnapshot(learner, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
