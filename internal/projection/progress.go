package projection

import "chronotask/internal/models"

// Progress derives a goal's percent-complete from its milestones:
// 100 * completed / total. A goal with no milestones is 0, never NaN.
func Progress(goal models.Goal) float64 {
	if len(goal.Milestones) == 0 {
		return 0
	}
	completed := 0
	for _, m := range goal.Milestones {
		if m.Completed {
			completed++
		}
	}
	return 100 * float64(completed) / float64(len(goal.Milestones))
}
