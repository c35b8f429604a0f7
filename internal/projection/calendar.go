package projection

import (
	"fmt"
	"sort"
	"time"

	"chronotask/internal/models"
	"chronotask/internal/utils"
)

type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

func (v View) Valid() bool {
	switch v {
	case ViewDay, ViewWeek, ViewMonth:
		return true
	}
	return false
}

// Window is the requested calendar range. Days lists every grid day so the
// month view keeps its leading and trailing days from adjacent months.
type Window struct {
	View  View        `json:"view"`
	Start time.Time   `json:"start"`
	End   time.Time   `json:"end"`
	Days  []time.Time `json:"days"`
}

// NewWindow resolves a (view, anchor) pair into a concrete range: the
// anchor's calendar day, the 7-day week starting on its Monday, or the grid
// weeks covering its month.
func NewWindow(view View, anchor time.Time) Window {
	switch view {
	case ViewWeek:
		start := utils.StartOfWeek(anchor)
		days := make([]time.Time, 7)
		for i := range days {
			days[i] = start.AddDate(0, 0, i)
		}
		return Window{View: view, Start: start, End: utils.EndOfDay(days[6]), Days: days}
	case ViewMonth:
		days := utils.MonthGrid(anchor)
		return Window{View: view, Start: days[0], End: utils.EndOfDay(days[len(days)-1]), Days: days}
	default:
		day := utils.StartOfDay(anchor)
		return Window{View: ViewDay, Start: day, End: utils.EndOfDay(day), Days: []time.Time{day}}
	}
}

// Contains reports whether the event's start falls inside the window.
func (w Window) Contains(event models.CalendarEvent) bool {
	return !event.Start.Before(w.Start) && !event.Start.After(w.End)
}

// Events projects the live task and routine collections onto the calendar.
// Each task spans the whole of its due day (today when unset); each routine
// spans [time, time+duration) on now's day. Routines with an unparseable time
// are dropped rather than projected onto a bogus slot. Full recompute on
// every call; nothing is cached across mutations.
func Events(tasks []models.Task, routines []models.DailyRoutine, now time.Time) []models.CalendarEvent {
	events := make([]models.CalendarEvent, 0, len(tasks)+len(routines))

	for _, task := range tasks {
		day := now
		if task.DueDate != nil {
			day = *task.DueDate
		}
		events = append(events, models.CalendarEvent{
			ID:          fmt.Sprintf("task-%s", task.ID),
			Title:       task.Title,
			Start:       utils.StartOfDay(day),
			End:         utils.EndOfDay(day),
			Type:        models.EventTask,
			Priority:    task.Priority,
			Description: task.Description,
			Category:    task.Category,
		})
	}

	for _, routine := range routines {
		start, err := utils.AtClock(now, routine.Time)
		if err != nil {
			continue
		}
		events = append(events, models.CalendarEvent{
			ID:       fmt.Sprintf("routine-%s", routine.ID),
			Title:    routine.Activity,
			Start:    start,
			End:      start.Add(time.Duration(routine.DurationMin) * time.Minute),
			Type:     models.EventRoutine,
			Priority: routine.Priority,
		})
	}

	return events
}

// EventsInWindow filters events to the requested window and orders them for
// display: by start time, with higher priority stacked above lower inside the
// same slot.
func EventsInWindow(events []models.CalendarEvent, w Window) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0, len(events))
	for _, event := range events {
		if w.Contains(event) {
			out = append(out, event)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].Priority.StackRank() > out[j].Priority.StackRank()
	})
	return out
}

// EventsForDay returns the window events falling on the given calendar day,
// in display order.
func EventsForDay(events []models.CalendarEvent, day time.Time) []models.CalendarEvent {
	w := NewWindow(ViewDay, day)
	return EventsInWindow(events, w)
}
