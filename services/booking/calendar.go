package booking

import (
	"time"

	"drepto/models"
)

// CalendarPolicy decides which days are selectable and what re-clicking a
// selected day does.
type CalendarPolicy struct {
	Name string
	// Disabled returns true for days that cannot be selected. Nil disables nothing.
	Disabled func(date, today time.Time) bool
	// ToggleOnReselect clears the selection when the selected day is clicked again.
	ToggleOnReselect bool
}

var (
	// BookingCalendarPolicy rejects past days and weekends; every valid click replaces the selection.
	BookingCalendarPolicy = CalendarPolicy{Name: "booking", Disabled: IsDateDisabled}
	// FilterCalendarPolicy allows any day; clicking the selected day again clears the filter.
	FilterCalendarPolicy = CalendarPolicy{Name: "filter", ToggleOnReselect: true}
)

// DayCell is the render state of one day in the displayed month.
type DayCell struct {
	Day        int    `json:"day"`
	Date       string `json:"date"`
	IsSelected bool   `json:"isSelected"`
	IsDisabled bool   `json:"isDisabled"`
	IsToday    bool   `json:"isToday"`
	HasMarker  bool   `json:"hasMarker"`
}

// CalendarView is a snapshot of a calendar for rendering.
type CalendarView struct {
	Policy        string    `json:"policy"`
	Month         string    `json:"month"` // "2006-01"
	LeadingBlanks int       `json:"leadingBlanks"`
	Selected      string    `json:"selected,omitempty"`
	Days          []DayCell `json:"days"`
}

// Calendar tracks the displayed month and an optional selected day.
// It is not safe for concurrent use; owners serialize access.
type Calendar struct {
	policy   CalendarPolicy
	now      func() time.Time
	cursor   time.Time
	selected *time.Time
	marker   func(date string) bool
}

// NewCalendar creates a calendar showing the current month with nothing selected.
func NewCalendar(policy CalendarPolicy, now func() time.Time) *Calendar {
	if now == nil {
		now = time.Now
	}
	c := &Calendar{policy: policy, now: now}
	c.Reset()
	return c
}

// Reset moves the cursor back to the current month and clears the selection.
func (c *Calendar) Reset() {
	c.cursor = firstOfMonth(c.now())
	c.selected = nil
}

// SetMarker installs the predicate that flags days holding existing appointments.
func (c *Calendar) SetMarker(marker func(date string) bool) {
	c.marker = marker
}

// Cursor returns the first day of the displayed month.
func (c *Calendar) Cursor() time.Time {
	return c.cursor
}

// ChangeMonth moves the displayed month by delta months. The selection is untouched.
func (c *Calendar) ChangeMonth(delta int) {
	c.cursor = c.cursor.AddDate(0, delta, 0)
}

// Selected returns the selected day, if any.
func (c *Calendar) Selected() (time.Time, bool) {
	if c.selected == nil {
		return time.Time{}, false
	}
	return *c.selected, true
}

// ClearSelection drops the selected day.
func (c *Calendar) ClearSelection() {
	c.selected = nil
}

// SelectDay selects a day of the displayed month. It returns whether a day is
// selected afterwards, which is false only when a toggle cleared it.
func (c *Calendar) SelectDay(day int) (bool, error) {
	if day < 1 || day > daysIn(c.cursor) {
		return c.selected != nil, newFlowError(ErrDayOutOfRange, "day %d is outside %s", day, c.cursor.Format("2006-01"))
	}
	date := c.cursor.AddDate(0, 0, day-1)
	if c.isDisabled(date) {
		return c.selected != nil, newFlowError(ErrDateDisabled, "%s is not selectable", date.Format(models.DateLayout))
	}
	if c.policy.ToggleOnReselect && c.selected != nil && sameDay(*c.selected, date) {
		c.selected = nil
		return false, nil
	}
	c.selected = &date
	return true, nil
}

// LeadingBlanks is the weekday of the first of the month, Sunday being 0.
func (c *Calendar) LeadingBlanks() int {
	return int(c.cursor.Weekday())
}

// Days computes the render state of every day in the displayed month.
func (c *Calendar) Days() []DayCell {
	today := c.now()
	n := daysIn(c.cursor)
	cells := make([]DayCell, 0, n)
	for d := 1; d <= n; d++ {
		date := c.cursor.AddDate(0, 0, d-1)
		key := date.Format(models.DateLayout)
		cells = append(cells, DayCell{
			Day:        d,
			Date:       key,
			IsSelected: c.selected != nil && sameDay(*c.selected, date),
			IsDisabled: c.isDisabled(date),
			IsToday:    sameDay(date, today),
			HasMarker:  c.marker != nil && c.marker(key),
		})
	}
	return cells
}

// View snapshots the calendar.
func (c *Calendar) View() CalendarView {
	v := CalendarView{
		Policy:        c.policy.Name,
		Month:         c.cursor.Format("2006-01"),
		LeadingBlanks: c.LeadingBlanks(),
		Days:          c.Days(),
	}
	if c.selected != nil {
		v.Selected = c.selected.Format(models.DateLayout)
	}
	return v
}

func (c *Calendar) isDisabled(date time.Time) bool {
	return c.policy.Disabled != nil && c.policy.Disabled(date, c.now())
}
