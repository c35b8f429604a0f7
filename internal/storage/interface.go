package storage

import "chronotask/internal/models"

// Snapshot is the full store state as one persisted document. Collections are
// ordered slices because insertion order is meaningful to every projection.
type Snapshot struct {
	Version     int                   `json:"version"`
	User        *models.User          `json:"user"`
	CurrentStep int                   `json:"current_step"`
	Responses   []models.UserResponse `json:"responses"`
	Tasks       []models.Task         `json:"tasks"`
	Routines    []models.DailyRoutine `json:"routines"`
	Goals       []models.Goal         `json:"goals"`
}

// SnapshotVersion is the current on-disk schema version.
const SnapshotVersion = 1

// NewSnapshot returns an empty snapshot at the current version.
func NewSnapshot() Snapshot {
	return Snapshot{Version: SnapshotVersion}
}

// Persister is the durable persistence collaborator the store writes through
// after every mutation. Implementations hold the whole snapshot under the
// fixed storage namespace; there is no per-record access.
type Persister interface {
	// Init prepares the backing storage for first use.
	Init() error
	// Load reads the last persisted snapshot.
	Load() (Snapshot, error)
	// Save replaces the persisted snapshot with the given one.
	Save(Snapshot) error
	Close() error

	// Path returns the backing location, for diagnostics.
	Path() string
}
