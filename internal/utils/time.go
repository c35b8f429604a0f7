package utils

import (
	"fmt"
	"time"

	"chronotask/internal/constants"
)

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfWeek returns midnight of the Monday on or before t. Weeks start on
// Monday, matching the locale the original questionnaire ships in.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	// time.Weekday puts Sunday at 0; shift so Monday is the origin.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// MonthGrid returns the calendar-grid days covering t's month: whole weeks
// from the Monday on or before the 1st through the Sunday on or after the
// last day, so leading and trailing days of adjacent months are included.
func MonthGrid(t time.Time) []time.Time {
	first := StartOfWeek(StartOfMonth(t))
	last := EndOfMonth(t)

	var days []time.Time
	for day := first; day.Before(last); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	// Pad out the final partial week.
	for len(days)%7 != 0 {
		days = append(days, days[len(days)-1].AddDate(0, 0, 1))
	}
	return days
}

// ParseClock parses an HH:MM string into minutes from midnight.
func ParseClock(clock string) (int, error) {
	t, err := time.Parse(constants.TimeFormat, clock)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AtClock returns day's date at the given HH:MM time.
func AtClock(day time.Time, clock string) (time.Time, error) {
	minutes, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return StartOfDay(day).Add(time.Duration(minutes) * time.Minute), nil
}

// ValidateClock checks that the string matches the HH:MM format.
func ValidateClock(clock string) bool {
	_, err := ParseClock(clock)
	return err == nil
}
