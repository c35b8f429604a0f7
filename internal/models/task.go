package models

import "time"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// StackRank orders priorities for calendar slot stacking: high above medium
// above low.
func (p Priority) StackRank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task is a single board card. The ID is an opaque string assigned by the
// creator; the store never generates one.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Category    string     `json:"category"`
}

// TaskPatch is a partial update merged onto an existing task. Nil fields are
// left untouched.
type TaskPatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *Priority  `json:"priority,omitempty"`
	Status      *Status    `json:"status,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Category    *string    `json:"category,omitempty"`
}

// Apply returns a copy of t with the patch's non-nil fields merged in.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.DueDate != nil {
		due := *p.DueDate
		t.DueDate = &due
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	return t
}
