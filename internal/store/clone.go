package store

import (
	"chronotask/internal/models"
	"chronotask/internal/storage"
)

func cloneTask(t models.Task) models.Task {
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}

func cloneGoal(g models.Goal) models.Goal {
	g.Milestones = append([]models.Milestone(nil), g.Milestones...)
	return g
}

func cloneSnapshot(snap storage.Snapshot) storage.Snapshot {
	out := snap
	if snap.User != nil {
		u := *snap.User
		out.User = &u
	}
	if snap.Responses != nil {
		out.Responses = make([]models.UserResponse, len(snap.Responses))
		for i, r := range snap.Responses {
			r.Answer = append(models.Answer(nil), r.Answer...)
			out.Responses[i] = r
		}
	}
	if snap.Tasks != nil {
		out.Tasks = make([]models.Task, len(snap.Tasks))
		for i, t := range snap.Tasks {
			out.Tasks[i] = cloneTask(t)
		}
	}
	if snap.Routines != nil {
		out.Routines = append([]models.DailyRoutine(nil), snap.Routines...)
	}
	if snap.Goals != nil {
		out.Goals = make([]models.Goal, len(snap.Goals))
		for i, g := range snap.Goals {
			out.Goals[i] = cloneGoal(g)
		}
	}
	return out
}
