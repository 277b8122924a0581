package booking

import (
	"slices"
	"strings"
	"sync"
	"time"

	"drepto/models"
)

// DefaultBoardPageSize is the number of rows per appointments page.
const DefaultBoardPageSize = 5

// BoardTab selects which statuses the appointment board lists.
type BoardTab string

const (
	TabUpcoming BoardTab = "upcoming"
	TabHistory  BoardTab = "history"
)

func (t BoardTab) includes(s models.AppointmentStatus) bool {
	if t == TabHistory {
		return s == models.StatusCompleted || s == models.StatusCancelled
	}
	return s == models.StatusUpcoming
}

// BoardView is one rendered page of the appointment board.
type BoardView struct {
	Tab          BoardTab             `json:"tab"`
	Search       string               `json:"search"`
	SelectedDate string               `json:"selectedDate,omitempty"`
	Items        []models.Appointment `json:"items"`
	Page         int                  `json:"page"`
	TotalPages   int                  `json:"totalPages"`
	Total        int                  `json:"total"`
	Calendar     CalendarView         `json:"calendar"`
}

// Board is the practitioner appointment list with tab, search and a toggling
// date filter. The appointment set comes from a collaborator and is empty by default.
type Board struct {
	mu           sync.Mutex
	appointments []models.Appointment
	tab          BoardTab
	search       string
	calendar     *Calendar
	page         int
	pageSize     int
}

// NewBoard creates a board on the upcoming tab.
func NewBoard(appointments []models.Appointment, now func() time.Time) *Board {
	b := &Board{
		appointments: slices.Clone(appointments),
		tab:          TabUpcoming,
		calendar:     NewCalendar(FilterCalendarPolicy, now),
		page:         1,
		pageSize:     DefaultBoardPageSize,
	}
	b.calendar.SetMarker(b.hasUpcomingOn)
	return b
}

// hasUpcomingOn is called with b.mu held.
func (b *Board) hasUpcomingOn(date string) bool {
	for _, a := range b.appointments {
		if a.Date == date && a.Status == models.StatusUpcoming {
			return true
		}
	}
	return false
}

// Replace swaps the backing appointment set.
func (b *Board) Replace(appointments []models.Appointment) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.appointments = slices.Clone(appointments)
	b.page = 1
}

// SetTab switches tabs and returns to page 1.
func (b *Board) SetTab(tab BoardTab) error {
	if tab != TabUpcoming && tab != TabHistory {
		return newFlowError(ErrInvalidFilter, "unknown tab %q", tab)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tab = tab
	b.page = 1
	return nil
}

// SetSearch filters by patient name and returns to page 1.
func (b *Board) SetSearch(q string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.search = q
	b.page = 1
}

// ToggleDay selects a day as the date filter, or clears it when already selected.
func (b *Board) ToggleDay(day int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := b.calendar.SelectDay(day); err != nil {
		return err
	}
	b.page = 1
	return nil
}

// ClearDate removes the date filter.
func (b *Board) ClearDate() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calendar.ClearSelection()
	b.page = 1
}

// ChangeMonth moves the filter calendar without touching the filter.
func (b *Board) ChangeMonth(delta int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calendar.ChangeMonth(delta)
}

// SetPage moves to page p, clamped to the available pages.
func (b *Board) SetPage(p int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.page = clampPage(p, pageCount(len(b.filtered()), b.pageSize))
}

// Find returns the appointment with the given id.
func (b *Board) Find(id string) (models.Appointment, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, a := range b.appointments {
		if a.ID == id {
			return a, true
		}
	}
	return models.Appointment{}, false
}

// View renders the current page.
func (b *Board) View() BoardView {
	b.mu.Lock()
	defer b.mu.Unlock()

	filtered := b.filtered()
	total := len(filtered)
	pages := pageCount(total, b.pageSize)
	page := clampPage(b.page, pages)
	start := min((page-1)*b.pageSize, total)
	end := min(start+b.pageSize, total)

	cal := b.calendar.View()
	return BoardView{
		Tab:          b.tab,
		Search:       b.search,
		SelectedDate: cal.Selected,
		Items:        filtered[start:end],
		Page:         page,
		TotalPages:   pages,
		Total:        total,
		Calendar:     cal,
	}
}

func (b *Board) filtered() []models.Appointment {
	q := strings.ToLower(b.search)
	var date string
	if d, ok := b.calendar.Selected(); ok {
		date = d.Format(models.DateLayout)
	}
	out := make([]models.Appointment, 0, len(b.appointments))
	for _, a := range b.appointments {
		if !b.tab.includes(a.Status) {
			continue
		}
		if !strings.Contains(strings.ToLower(a.PatientName), q) {
			continue
		}
		if date != "" && a.Date != date {
			continue
		}
		out = append(out, a)
	}
	return out
}
