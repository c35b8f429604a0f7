package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"chronotask/internal/constants"
	"chronotask/internal/models"
	"chronotask/internal/storage"
)

// Store persists the snapshot in a SQLite database, one table per collection
// plus a singleton state row. Every Save replaces the whole snapshot inside a
// transaction, matching the persist-after-mutate contract.
type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	if err := s.migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed the singleton state row so Load works before the first Save.
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO app_state (name, version, current_step) VALUES (?, ?, 0)`,
		constants.StorageName, storage.SnapshotVersion,
	)
	return err
}

func (s *Store) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	s.db = db
	return nil
}

func (s *Store) load() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'chronotask init' first")
	}
	return s.open()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS app_state (
			name TEXT PRIMARY KEY,
			version INTEGER NOT NULL,
			user_id TEXT,
			user_email TEXT,
			current_step INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS responses (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			question_id TEXT NOT NULL,
			answer TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS tasks (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			priority TEXT NOT NULL,
			status TEXT NOT NULL,
			due_date TEXT,
			category TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS routines (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL,
			time TEXT NOT NULL,
			activity TEXT NOT NULL,
			duration_min INTEGER NOT NULL,
			priority TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS goals (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			deadline TEXT NOT NULL DEFAULT '',
			progress REAL NOT NULL DEFAULT 0,
			category TEXT NOT NULL DEFAULT '',
			milestones TEXT NOT NULL DEFAULT '[]'
		);`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Save(snap storage.Snapshot) error {
	if err := s.load(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var userID, userEmail sql.NullString
	if snap.User != nil {
		userID = sql.NullString{String: snap.User.ID, Valid: true}
		userEmail = sql.NullString{String: snap.User.Email, Valid: true}
	}
	if _, err := tx.Exec(
		`INSERT INTO app_state (name, version, user_id, user_email, current_step) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET version=excluded.version, user_id=excluded.user_id,
		 user_email=excluded.user_email, current_step=excluded.current_step`,
		constants.StorageName, storage.SnapshotVersion, userID, userEmail, snap.CurrentStep,
	); err != nil {
		return err
	}

	for _, table := range []string{"responses", "tasks", "routines", "goals"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	for _, r := range snap.Responses {
		answer, err := json.Marshal(r.Answer)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			`INSERT INTO responses (question_id, answer) VALUES (?, ?)`,
			r.QuestionID, string(answer),
		); err != nil {
			return err
		}
	}

	for _, t := range snap.Tasks {
		var due sql.NullString
		if t.DueDate != nil {
			due = sql.NullString{String: t.DueDate.Format(time.RFC3339), Valid: true}
		}
		if _, err := tx.Exec(
			`INSERT INTO tasks (id, title, description, priority, status, due_date, category)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Title, t.Description, string(t.Priority), string(t.Status), due, t.Category,
		); err != nil {
			return err
		}
	}

	for _, r := range snap.Routines {
		if _, err := tx.Exec(
			`INSERT INTO routines (id, time, activity, duration_min, priority) VALUES (?, ?, ?, ?, ?)`,
			r.ID, r.Time, r.Activity, r.DurationMin, string(r.Priority),
		); err != nil {
			return err
		}
	}

	for _, g := range snap.Goals {
		milestones, err := json.Marshal(g.Milestones)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			`INSERT INTO goals (id, title, description, deadline, progress, category, milestones)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			g.ID, g.Title, g.Description, g.Deadline, g.Progress, g.Category, string(milestones),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) Load() (storage.Snapshot, error) {
	if err := s.load(); err != nil {
		return storage.Snapshot{}, err
	}

	snap := storage.NewSnapshot()

	var userID, userEmail sql.NullString
	row := s.db.QueryRow(
		`SELECT version, user_id, user_email, current_step FROM app_state WHERE name = ?`,
		constants.StorageName,
	)
	if err := row.Scan(&snap.Version, &userID, &userEmail, &snap.CurrentStep); err != nil {
		if err == sql.ErrNoRows {
			return storage.Snapshot{}, fmt.Errorf("storage not initialized, run 'chronotask init' first")
		}
		return storage.Snapshot{}, err
	}
	if userID.Valid {
		snap.User = &models.User{ID: userID.String, Email: userEmail.String}
	}

	if err := s.loadResponses(&snap); err != nil {
		return storage.Snapshot{}, err
	}
	if err := s.loadTasks(&snap); err != nil {
		return storage.Snapshot{}, err
	}
	if err := s.loadRoutines(&snap); err != nil {
		return storage.Snapshot{}, err
	}
	if err := s.loadGoals(&snap); err != nil {
		return storage.Snapshot{}, err
	}

	return snap, nil
}

func (s *Store) loadResponses(snap *storage.Snapshot) error {
	rows, err := s.db.Query(`SELECT question_id, answer FROM responses ORDER BY seq`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r models.UserResponse
		var answer string
		if err := rows.Scan(&r.QuestionID, &answer); err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(answer), &r.Answer); err != nil {
			return fmt.Errorf("corrupt answer for question %s: %w", r.QuestionID, err)
		}
		snap.Responses = append(snap.Responses, r)
	}
	return rows.Err()
}

func (s *Store) loadTasks(snap *storage.Snapshot) error {
	rows, err := s.db.Query(
		`SELECT id, title, description, priority, status, due_date, category FROM tasks ORDER BY seq`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Task
		var priority, status string
		var due sql.NullString
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &priority, &status, &due, &t.Category); err != nil {
			return err
		}
		t.Priority = models.Priority(priority)
		t.Status = models.Status(status)
		if due.Valid {
			parsed, err := time.Parse(time.RFC3339, due.String)
			if err != nil {
				return fmt.Errorf("corrupt due date for task %s: %w", t.ID, err)
			}
			t.DueDate = &parsed
		}
		snap.Tasks = append(snap.Tasks, t)
	}
	return rows.Err()
}

func (s *Store) loadRoutines(snap *storage.Snapshot) error {
	rows, err := s.db.Query(`SELECT id, time, activity, duration_min, priority FROM routines ORDER BY seq`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r models.DailyRoutine
		var priority string
		if err := rows.Scan(&r.ID, &r.Time, &r.Activity, &r.DurationMin, &priority); err != nil {
			return err
		}
		r.Priority = models.Priority(priority)
		snap.Routines = append(snap.Routines, r)
	}
	return rows.Err()
}

func (s *Store) loadGoals(snap *storage.Snapshot) error {
	rows, err := s.db.Query(
		`SELECT id, title, description, deadline, progress, category, milestones FROM goals ORDER BY seq`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var g models.Goal
		var milestones string
		if err := rows.Scan(&g.ID, &g.Title, &g.Description, &g.Deadline, &g.Progress, &g.Category, &milestones); err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(milestones), &g.Milestones); err != nil {
			return fmt.Errorf("corrupt milestones for goal %s: %w", g.ID, err)
		}
		snap.Goals = append(snap.Goals, g)
	}
	return rows.Err()
}
