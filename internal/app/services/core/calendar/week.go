package calendar

import "time"

const DaysPerWeek = 7

// WeekStart returns local midnight of the Monday that begins the week
// offset whole weeks away from the week containing now. Sunday belongs to
// the week that started six days earlier.
func WeekStart(now time.Time, offset int) time.Time {
	weekday := int(now.Weekday())
	diffToMonday := 1 - weekday
	if weekday == 0 {
		diffToMonday = -6
	}
	return addDays(now, diffToMonday+offset*DaysPerWeek)
}

// addDays moves by calendar days rather than 24h steps so month ends and
// DST transitions still land on midnight.
func addDays(t time.Time, days int) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day+days, 0, 0, 0, 0, t.Location())
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
