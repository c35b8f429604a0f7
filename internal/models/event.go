package models

import "time"

type EventType string

const (
	EventTask    EventType = "task"
	EventRoutine EventType = "routine"
	EventGoal    EventType = "goal"
)

// CalendarEvent is a pure projection of a task or routine onto the calendar.
// It is recomputed on every read and never persisted. The ID is synthesized
// ("task-<id>" / "routine-<id>") so events from overlapping source records
// never collide.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Type        EventType `json:"type"`
	Priority    Priority  `json:"priority"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
}
