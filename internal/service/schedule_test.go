package service

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextMaintenanceDate(t *testing.T) {
	tests := []struct {
		name      string
		performed time.Time
		want      time.Time
	}{
		{
			// 2024-01-01 + 180d = 2024-06-29 (Saturday); five business
			// days forward lands on Friday 2024-07-05.
			name:      "base lands on saturday",
			performed: date(2024, time.January, 1),
			want:      date(2024, time.July, 5),
		},
		{
			// 2024-03-31 + 180d = 2024-09-27 (Friday); the grace walk
			// skips the following weekend.
			name:      "grace walk crosses weekend",
			performed: date(2024, time.March, 31),
			want:      date(2024, time.October, 4),
		},
		{
			// 2024-01-05 + 180d = 2024-07-03 (Wednesday).
			name:      "midweek base",
			performed: date(2024, time.January, 5),
			want:      date(2024, time.July, 10),
		},
		{
			// 2023-11-01 + 180d = 2024-04-29 (Monday); crosses a year
			// boundary and a leap February.
			name:      "crosses year boundary",
			performed: date(2023, time.November, 1),
			want:      date(2024, time.May, 6),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextMaintenanceDate(tt.performed)
			if !got.Equal(tt.want) {
				t.Errorf("NextMaintenanceDate(%s) = %s, want %s",
					tt.performed.Format("2006-01-02"),
					got.Format("2006-01-02"),
					tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestNextMaintenanceDate_NeverWeekend(t *testing.T) {
	// Property: regardless of the start date, the due date is a weekday.
	start := date(2024, time.January, 1)
	for i := 0; i < 366; i++ {
		performed := start.AddDate(0, 0, i)
		got := NextMaintenanceDate(performed)
		if wd := got.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Fatalf("NextMaintenanceDate(%s) = %s falls on %s",
				performed.Format("2006-01-02"), got.Format("2006-01-02"), wd)
		}
	}
}

func TestNextMaintenanceDate_Monotonic(t *testing.T) {
	// Property: a later maintenance never produces an earlier due date.
	start := date(2024, time.January, 1)
	prev := NextMaintenanceDate(start)
	for i := 1; i < 60; i++ {
		got := NextMaintenanceDate(start.AddDate(0, 0, i))
		if got.Before(prev) {
			t.Fatalf("due date went backwards at offset %d: %s < %s",
				i, got.Format("2006-01-02"), prev.Format("2006-01-02"))
		}
		prev = got
	}
}
