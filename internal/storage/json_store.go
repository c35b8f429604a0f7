package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"chronotask/internal/constants"
)

// document is the on-disk shape: the snapshot wrapped under the fixed
// storage namespace key.
type document struct {
	Name  string   `json:"name"`
	State Snapshot `json:"state"`
}

// JSONStore persists the snapshot as an indented JSON file. It is the default
// backend.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(NewSnapshot())
}

func (s *JSONStore) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, fmt.Errorf("storage not initialized, run 'chronotask init' first")
		}
		return Snapshot{}, fmt.Errorf("failed to read storage: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Name != "" && doc.Name != constants.StorageName {
		return Snapshot{}, fmt.Errorf("unexpected storage namespace %q", doc.Name)
	}

	return doc.State, nil
}

func (s *JSONStore) Save(snap Snapshot) error {
	doc := document{Name: constants.StorageName, State: snap}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}
