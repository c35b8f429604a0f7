package models

// Milestone is a named sub-step of a goal with a binary completion flag.
type Milestone struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Goal is a long-horizon objective tracked through its milestones. Progress is
// derived: 100 * completed milestones / total milestones, 0 when there are
// none. The store recomputes it whenever a milestone flips so the stored value
// is always consistent with the milestone list.
type Goal struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Deadline    string      `json:"deadline"` // YYYY-MM-DD format
	Progress    float64     `json:"progress"` // percent, 0..100
	Category    string      `json:"category"`
	Milestones  []Milestone `json:"milestones"`
}

// GoalPatch is a partial update merged onto an existing goal. Nil fields are
// left untouched.
type GoalPatch struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Deadline    *string     `json:"deadline,omitempty"`
	Category    *string     `json:"category,omitempty"`
	Milestones  []Milestone `json:"milestones,omitempty"`
}

// Apply returns a copy of g with the patch's non-nil fields merged in.
func (p GoalPatch) Apply(g Goal) Goal {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.Deadline != nil {
		g.Deadline = *p.Deadline
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.Milestones != nil {
		g.Milestones = append([]Milestone(nil), p.Milestones...)
	}
	return g
}
