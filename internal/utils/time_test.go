package utils

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"wednesday", date(2026, time.September, 16), date(2026, time.September, 14)},
		{"monday is its own start", date(2026, time.September, 14), date(2026, time.September, 14)},
		{"sunday belongs to the prior monday", date(2026, time.September, 20), date(2026, time.September, 14)},
		{"crosses month boundary", date(2026, time.September, 1), date(2026, time.August, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfWeek(tt.in); !got.Equal(tt.want) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMonthGrid(t *testing.T) {
	grid := MonthGrid(date(2026, time.September, 16))

	if len(grid)%7 != 0 {
		t.Fatalf("grid length %d is not a whole number of weeks", len(grid))
	}
	if got, want := grid[0], date(2026, time.August, 31); !got.Equal(want) {
		t.Errorf("grid starts %v, want %v", got, want)
	}
	if got := grid[0].Weekday(); got != time.Monday {
		t.Errorf("grid starts on %v, want Monday", got)
	}
	if got := grid[len(grid)-1].Weekday(); got != time.Sunday {
		t.Errorf("grid ends on %v, want Sunday", got)
	}
	// Every day of September must be present.
	seen := map[int]bool{}
	for _, day := range grid {
		if day.Month() == time.September {
			seen[day.Day()] = true
		}
	}
	for d := 1; d <= 30; d++ {
		if !seen[d] {
			t.Errorf("grid is missing September %d", d)
		}
	}
}

func TestEndOfDayAndSameDay(t *testing.T) {
	noon := time.Date(2026, time.March, 5, 12, 30, 0, 0, time.UTC)
	end := EndOfDay(noon)
	if !SameDay(noon, end) {
		t.Errorf("EndOfDay left the day: %v", end)
	}
	if !end.Before(date(2026, time.March, 6)) {
		t.Errorf("EndOfDay crossed midnight: %v", end)
	}
	if SameDay(noon, date(2026, time.March, 6)) {
		t.Error("SameDay matched distinct days")
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{clock: "00:00", want: 0},
		{clock: "07:30", want: 450},
		{clock: "23:59", want: 1439},
		{clock: "24:00", wantErr: true},
		{clock: "morning", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			got, err := ParseClock(tt.clock)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.clock, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.clock, got, tt.want)
			}
		})
	}
}

func TestAtClock(t *testing.T) {
	got, err := AtClock(date(2026, time.September, 16), "07:30")
	if err != nil {
		t.Fatalf("AtClock() error = %v", err)
	}
	want := time.Date(2026, time.September, 16, 7, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AtClock() = %v, want %v", got, want)
	}
}
