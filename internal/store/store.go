// Package store provides SQLite-backed persistence for observations and
// action sequences. The database is an append-only log: on startup the
// service replays it to rebuild the learner's in-memory state.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/kennonjarvis-debug/JARVIS-AI/internal/pattern"
	"github.com/kennonjarvis-debug/JARVIS-AI/pkg/models"
)

// Store provides SQLite-backed storage for the observation log.
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex
}

// DefaultDBPath returns the default location of the observation database.
func DefaultDBPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "jarvis", "adaptive.db")
}

// New opens (creating if necessary) the observation database at dbPath.
// It creates the parent directories if they don't exist.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for concurrent reads
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	return &Store{db: conn, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Path returns the path to the database file.
func (s *Store) Path() string {
	return s.dbPath
}

// AppendObservation records one observation in the log.
func (s *Store) AppendObservation(userID string, obs models.Observation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO observations (id, user_id, action, context, success, hour, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		uuid.New().String(),
		userID,
		obs.Action,
		obs.Context,
		boolToInt(obs.Success),
		obs.Hour,
		formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("insert observation: %w", err)
	}
	return nil
}

// AppendSequence records one action sequence in the log. Sequences shorter
// than two actions are not stored; they carry no transition information.
func (s *Store) AppendSequence(actions []string) error {
	if len(actions) < 2 {
		return nil
	}

	encoded, err := json.Marshal(actions)
	if err != nil {
		return fmt.Errorf("encode sequence: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(`
		INSERT INTO sequences (id, actions, created_at)
		VALUES (?, ?, ?)
	`,
		uuid.New().String(),
		string(encoded),
		formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("insert sequence: %w", err)
	}
	return nil
}

// Replay feeds every logged observation and sequence into the learner, in
// insertion order. Called once at startup so tie-break order matches the
// order the actions were originally observed in.
func (s *Store) Replay(learner *pattern.Learner) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT action, context, success, hour FROM observations ORDER BY rowid
	`)
	if err != nil {
		return fmt.Errorf("query observations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			action, context string
			success, hour   int
		)
		if err := rows.Scan(&action, &context, &success, &hour); err != nil {
			return fmt.Errorf("scan observation: %w", err)
		}
		learner.Observe(action, context, success != 0, hour)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate observations: %w", err)
	}

	seqRows, err := s.db.Query(`SELECT actions FROM sequences ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("query sequences: %w", err)
	}
	defer seqRows.Close()

	for seqRows.Next() {
		var encoded string
		if err := seqRows.Scan(&encoded); err != nil {
			return fmt.Errorf("scan sequence: %w", err)
		}
		var actions []string
		if err := json.Unmarshal([]byte(encoded), &actions); err != nil {
			return fmt.Errorf("decode sequence: %w", err)
		}
		learner.ObserveSequence(actions)
	}
	if err := seqRows.Err(); err != nil {
		return fmt.Errorf("iterate sequences: %w", err)
	}

	return nil
}

// ObservationCount reports how many observations are logged.
func (s *Store) ObservationCount() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM observations").Scan(&count); err != nil {
		return 0, fmt.Errorf("count observations: %w", err)
	}
	return count, nil
}

// Helper functions

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
