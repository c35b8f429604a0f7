package models

// DailyRoutine is a recurring block that happens every day. Time has no date
// component; projections anchor it to "today".
type DailyRoutine struct {
	ID          string   `json:"id"`
	Time        string   `json:"time"` // HH:MM format
	Activity    string   `json:"activity"`
	DurationMin int      `json:"duration_min"`
	Priority    Priority `json:"priority"`
}
