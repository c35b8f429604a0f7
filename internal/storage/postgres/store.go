package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"chronotask/internal/constants"
	"chronotask/internal/storage"
)

// Store persists the snapshot as a single JSONB row keyed by the storage
// namespace, for installations that want the data off the local machine.
type Store struct {
	connStr string
	db      *sql.DB
}

func NewStore(connStr string) *Store {
	return &Store{connStr: connStr}
}

func (s *Store) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Init() error {
	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			name TEXT PRIMARY KEY,
			version INTEGER NOT NULL,
			state JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		return fmt.Errorf("failed to create snapshots table: %w", err)
	}

	empty, err := json.Marshal(storage.NewSnapshot())
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO snapshots (name, version, state) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING`,
		constants.StorageName, storage.SnapshotVersion, empty,
	)
	return err
}

func (s *Store) Load() (storage.Snapshot, error) {
	if err := s.open(); err != nil {
		return storage.Snapshot{}, err
	}

	var state []byte
	row := s.db.QueryRow(`SELECT state FROM snapshots WHERE name = $1`, constants.StorageName)
	if err := row.Scan(&state); err != nil {
		if err == sql.ErrNoRows {
			return storage.Snapshot{}, fmt.Errorf("storage not initialized, run 'chronotask init' first")
		}
		return storage.Snapshot{}, err
	}

	var snap storage.Snapshot
	if err := json.Unmarshal(state, &snap); err != nil {
		return storage.Snapshot{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return snap, nil
}

func (s *Store) Save(snap storage.Snapshot) error {
	if err := s.open(); err != nil {
		return err
	}

	state, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (name, version, state, updated_at) VALUES ($1, $2, $3, now())
		ON CONFLICT (name) DO UPDATE SET version = excluded.version, state = excluded.state, updated_at = now()`,
		constants.StorageName, storage.SnapshotVersion, state,
	)
	return err
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Path() string {
	return s.connStr
}
