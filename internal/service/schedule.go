package service

import "time"

// maintenanceIntervalDays is the base interval between maintenances,
// in calendar days.
const maintenanceIntervalDays = 180

// maintenanceGraceBusinessDays is the scheduling buffer added after the
// base interval, counted in Monday-Friday business days.
const maintenanceGraceBusinessDays = 5

// NextMaintenanceDate computes when an asset is next due after a
// maintenance performed on the given date: 180 calendar days, then a
// grace period of 5 business days walked forward one day at a time.
// The result always lands on a weekday.
func NextMaintenanceDate(performed time.Time) time.Time {
	next := performed.AddDate(0, 0, maintenanceIntervalDays)

	added := 0
	for added < maintenanceGraceBusinessDays {
		next = next.AddDate(0, 0, 1)
		if wd := next.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added++
		}
	}
	return next
}
