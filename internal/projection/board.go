package projection

import "chronotask/internal/models"

// Lanes is the task board: one ordered column per status. Within a lane,
// tasks keep their insertion order; moving a task between lanes is just a
// status update and does not reorder it relative to its new siblings.
type Lanes struct {
	Todo       []models.Task `json:"todo"`
	InProgress []models.Task `json:"in_progress"`
	Done       []models.Task `json:"done"`
}

// Board partitions tasks into status lanes.
func Board(tasks []models.Task) Lanes {
	var lanes Lanes
	for _, task := range tasks {
		switch task.Status {
		case models.StatusInProgress:
			lanes.InProgress = append(lanes.InProgress, task)
		case models.StatusDone:
			lanes.Done = append(lanes.Done, task)
		default:
			lanes.Todo = append(lanes.Todo, task)
		}
	}
	return lanes
}

// BoardStats summarizes completion across the whole collection.
type BoardStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// Stats derives completion counts from the task collection.
func Stats(tasks []models.Task) BoardStats {
	stats := BoardStats{Total: len(tasks)}
	for _, task := range tasks {
		if task.Status == models.StatusDone {
			stats.Completed++
		}
	}
	return stats
}

// quickListMax caps the dashboard quick list.
const quickListMax = 5

// QuickList returns the first high-priority tasks that are not done yet, in
// insertion order, capped for the dashboard widget.
func QuickList(tasks []models.Task) []models.Task {
	var out []models.Task
	for _, task := range tasks {
		if task.Priority == models.PriorityHigh && task.Status != models.StatusDone {
			out = append(out, task)
			if len(out) == quickListMax {
				break
			}
		}
	}
	return out
}
