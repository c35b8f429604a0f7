package store

import (
	"context"
	"sync"

	"chronotask/internal/auth"
	"chronotask/internal/logger"
	"chronotask/internal/models"
	"chronotask/internal/projection"
	"chronotask/internal/storage"
)

// Store is the single source of truth for all user-entered domain data. It
// owns the user, onboarding responses, tasks, routines and goals; everything
// else in the system is a pure projection of its snapshot.
//
// Mutations are synchronous and total: they never fail. Each one is followed
// by a best-effort write through the injected Persister and a notification to
// subscribers. Filtering and querying are the caller's responsibility.
type Store struct {
	mu          sync.Mutex
	persister   storage.Persister
	auth        auth.Provider
	state       storage.Snapshot
	subscribers []func(storage.Snapshot)
}

// New builds a store backed by the given persistence and auth collaborators,
// loading the last persisted snapshot once at construction.
func New(persister storage.Persister, provider auth.Provider) (*Store, error) {
	snap, err := persister.Load()
	if err != nil {
		return nil, err
	}
	return &Store{
		persister: persister,
		auth:      provider,
		state:     snap,
	}, nil
}

// Snapshot returns a deep copy of the current state. Mutating the returned
// value never affects the store.
func (s *Store) Snapshot() storage.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSnapshot(s.state)
}

// Subscribe registers fn to be called with a snapshot copy after every
// mutation.
func (s *Store) Subscribe(fn func(storage.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// commit persists the current state and notifies subscribers. Persistence is
// best-effort: a failed write is logged, never surfaced as a mutation failure.
// Callbacks run with the store lock held and must not call back into the
// store.
func (s *Store) commit() {
	if err := s.persister.Save(s.state); err != nil {
		logger.Warn("Snapshot persistence failed", "error", err)
	}
	if len(s.subscribers) > 0 {
		snap := cloneSnapshot(s.state)
		for _, fn := range s.subscribers {
			fn(snap)
		}
	}
}

// SetUser replaces the current user. Passing nil clears it.
func (s *Store) SetUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.state.User = nil
	} else {
		u := *user
		s.state.User = &u
	}
	s.commit()
}

// SetCurrentStep moves the onboarding wizard cursor. No bounds checking; the
// caller keeps it inside the question catalog.
func (s *Store) SetCurrentStep(step int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentStep = step
	s.commit()
}

// AddResponse appends a response in insertion order. A second answer to the
// same question coexists with the first.
func (s *Store) AddResponse(response models.UserResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	response.Answer = append(models.Answer(nil), response.Answer...)
	s.state.Responses = append(s.state.Responses, response)
	s.commit()
}

// AddTask appends the task to the collection.
func (s *Store) AddTask(task models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Tasks = append(s.state.Tasks, cloneTask(task))
	s.commit()
}

// UpdateTask merges the patch onto the task with the given id and reports
// whether it matched. A missing id leaves the collection unchanged.
func (s *Store) UpdateTask(id string, patch models.TaskPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, task := range s.state.Tasks {
		if task.ID == id {
			s.state.Tasks[i] = patch.Apply(task)
			s.commit()
			return true
		}
	}
	return false
}

// RemoveTask deletes the task with the given id, preserving the order of the
// rest, and reports whether it matched.
func (s *Store) RemoveTask(id string) bool {
	return s.RemoveTasksWhere(func(t models.Task) bool { return t.ID == id }) > 0
}

// RemoveTasksWhere deletes every task the predicate matches and returns how
// many were removed. This is the only deletion path; callers must never prune
// a returned snapshot in place.
func (s *Store) RemoveTasksWhere(pred func(models.Task) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.state.Tasks[:0]
	removed := 0
	for _, task := range s.state.Tasks {
		if pred(task) {
			removed++
			continue
		}
		kept = append(kept, task)
	}
	if removed == 0 {
		return 0
	}
	s.state.Tasks = kept
	s.commit()
	return removed
}

// ClearCompleted removes every done task from the board. The original client
// had two conflicting behaviors here (an in-place splice and a priority
// demotion); deletion through the store surface is the one policy kept.
func (s *Store) ClearCompleted() int {
	return s.RemoveTasksWhere(func(t models.Task) bool { return t.Status == models.StatusDone })
}

// AddRoutine appends the routine to the collection.
func (s *Store) AddRoutine(routine models.DailyRoutine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Routines = append(s.state.Routines, routine)
	s.commit()
}

// AddGoal appends the goal, normalizing its progress to match its milestones.
func (s *Store) AddGoal(goal models.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	goal = cloneGoal(goal)
	goal.Progress = projection.Progress(goal)
	s.state.Goals = append(s.state.Goals, goal)
	s.commit()
}

// UpdateGoal merges the patch onto the goal with the given id and reports
// whether it matched. When the patch replaces the milestone list, progress is
// recomputed so the stored value stays consistent.
func (s *Store) UpdateGoal(id string, patch models.GoalPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, goal := range s.state.Goals {
		if goal.ID == id {
			updated := patch.Apply(goal)
			updated.Progress = projection.Progress(updated)
			s.state.Goals[i] = updated
			s.commit()
			return true
		}
	}
	return false
}

// ToggleMilestone flips the milestone's completed flag and recomputes the
// goal's progress as one update; the flipped flag and the new aggregate are
// never observable separately. Reports whether both ids matched.
func (s *Store) ToggleMilestone(goalID, milestoneID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, goal := range s.state.Goals {
		if goal.ID != goalID {
			continue
		}
		for j, m := range goal.Milestones {
			if m.ID != milestoneID {
				continue
			}
			updated := cloneGoal(goal)
			updated.Milestones[j].Completed = !m.Completed
			updated.Progress = projection.Progress(updated)
			s.state.Goals[i] = updated
			s.commit()
			return true
		}
		return false
	}
	return false
}

// Logout signs out of the auth collaborator and clears all user-entered
// state. The sign-out call is fire-and-forget: its failure never blocks the
// local clearing.
func (s *Store) Logout(ctx context.Context) {
	if s.auth != nil {
		if err := s.auth.SignOut(ctx); err != nil {
			logger.Warn("Auth sign-out failed", "error", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = nil
	s.state.CurrentStep = 0
	s.state.Responses = nil
	s.state.Tasks = nil
	s.state.Routines = nil
	s.state.Goals = nil
	s.commit()
}
