package booking

import (
	"slices"
	"time"
)

// masterSlots is the fixed daily slot template. The parity rule in DeriveSlots is
// a placeholder; a provider availability service would replace both.
var masterSlots = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM", "11:00 AM",
	"02:00 PM", "02:30 PM", "03:00 PM", "04:00 PM", "04:30 PM", "05:00 PM",
}

// MasterSlots returns a copy of the slot template.
func MasterSlots() []string {
	return slices.Clone(masterSlots)
}

// IsDateDisabled reports whether date cannot be booked: it falls before today's
// midnight or on a weekend.
func IsDateDisabled(date, today time.Time) bool {
	if midnight(date).Before(midnight(today)) {
		return true
	}
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DeriveSlots returns the slots offered on date. Even days get indices 0,2,4,...
// and odd days get 1,3,5,...
func DeriveSlots(date time.Time) []string {
	start := 1
	if date.Day()%2 == 0 {
		start = 0
	}
	out := make([]string, 0, len(masterSlots)/2+1)
	for i := start; i < len(masterSlots); i += 2 {
		out = append(out, masterSlots[i])
	}
	return out
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func firstOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func daysIn(month time.Time) int {
	return firstOfMonth(month).AddDate(0, 1, -1).Day()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
