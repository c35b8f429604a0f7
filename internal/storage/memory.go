package storage

// MemoryStore is an in-memory Persister used in tests and as a stand-in when
// no durable backend is configured.
type MemoryStore struct {
	snap    Snapshot
	loaded  bool
	SaveErr error // when set, Save fails with this error
	Saves   int   // number of successful Save calls
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snap: NewSnapshot(), loaded: true}
}

func (s *MemoryStore) Init() error {
	s.snap = NewSnapshot()
	s.loaded = true
	return nil
}

func (s *MemoryStore) Load() (Snapshot, error) {
	return s.snap, nil
}

func (s *MemoryStore) Save(snap Snapshot) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.snap = snap
	s.Saves++
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) Path() string {
	return "memory"
}
