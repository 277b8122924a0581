package booking

import (
	"slices"
	"time"
)

// SlotOption is one time label as rendered by the slot picker.
type SlotOption struct {
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// SlotSelector tracks the chosen time for the selected date. Without a date it
// offers nothing and refuses selections.
type SlotSelector struct {
	date     *time.Time
	options  []string
	selected string
}

// SetDate switches the date the slots are derived for and always clears the time.
func (s *SlotSelector) SetDate(date time.Time) {
	s.date = &date
	s.options = DeriveSlots(date)
	s.selected = ""
}

// Reset forgets both the date and the time.
func (s *SlotSelector) Reset() {
	s.date = nil
	s.options = nil
	s.selected = ""
}

// Enabled reports whether a date has been chosen.
func (s *SlotSelector) Enabled() bool {
	return s.date != nil
}

// Select picks a time label offered for the current date.
func (s *SlotSelector) Select(label string) error {
	if s.date == nil {
		return ErrNoDateSelected
	}
	if !slices.Contains(s.options, label) {
		return newFlowError(ErrUnknownSlot, "%q is not offered on %s", label, s.date.Format("2006-01-02"))
	}
	s.selected = label
	return nil
}

// Selected returns the chosen label, or "" when none.
func (s *SlotSelector) Selected() string {
	return s.selected
}

// Options lists the offered labels with the current selection marked.
func (s *SlotSelector) Options() []SlotOption {
	out := make([]SlotOption, 0, len(s.options))
	for _, l := range s.options {
		out = append(out, SlotOption{Label: l, Selected: l == s.selected})
	}
	return out
}
