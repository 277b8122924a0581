package booking

import (
	"context"
	"strings"
	"sync"
	"time"

	"drepto/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// View is the screen a flow is on.
type View string

const (
	ViewListing View = "list"
	ViewSlots   View = "slots"
	ViewSuccess View = "success"
)

var preferredGenders = map[string]bool{"Any": true, "Female": true, "Male": true}

// Details are the free-form fields of the slot view.
type Details struct {
	Address         string `json:"address"`
	Notes           string `json:"notes"`
	PreferredGender string `json:"preferredGender"`
}

// FlowConfig wires a Flow to its collaborators.
type FlowConfig struct {
	Kind     models.BookableKind
	Now      func() time.Time
	Lookup   EntityLookup
	OnFinish FinishFunc
	Logger   *zap.Logger
}

// FlowSnapshot is the rendered state of a flow.
type FlowSnapshot struct {
	Kind         models.BookableKind    `json:"kind"`
	View         View                   `json:"view"`
	Entity       *models.Bookable       `json:"entity,omitempty"`
	Calendar     *CalendarView          `json:"calendar,omitempty"`
	SlotsEnabled bool                   `json:"slotsEnabled"`
	Slots        []SlotOption           `json:"slots,omitempty"`
	SelectedTime string                 `json:"selectedTime,omitempty"`
	Details      Details                `json:"details"`
	RescheduleOf string                 `json:"rescheduleOf,omitempty"`
	CanConfirm   bool                   `json:"canConfirm"`
	Summary      *models.BookingSummary `json:"summary,omitempty"`
	Appointment  *models.Appointment    `json:"appointment,omitempty"`
}

// Flow drives Listing -> SlotSelection -> Success for one bookable kind.
// One draft exists at a time; starting another booking overwrites it.
type Flow struct {
	mu        sync.Mutex
	kind      models.BookableKind
	view      View
	draft     *models.BookingDraft
	calendar  *Calendar
	slots     SlotSelector
	confirmed *models.Appointment
	finished  bool

	now      func() time.Time
	lookup   EntityLookup
	onFinish FinishFunc
	logger   *zap.Logger
}

var _ BookingFlow = (*Flow)(nil)

// NewFlow creates a flow on the listing view.
func NewFlow(cfg FlowConfig) *Flow {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Flow{
		kind:     cfg.Kind,
		view:     ViewListing,
		calendar: NewCalendar(BookingCalendarPolicy, cfg.Now),
		now:      cfg.Now,
		lookup:   cfg.Lookup,
		onFinish: cfg.OnFinish,
		logger:   cfg.Logger.With(zap.String("kind", string(cfg.Kind))),
	}
}

// Kind returns the bookable kind this flow serves.
func (f *Flow) Kind() models.BookableKind {
	return f.kind
}

// BookClick starts a booking for entity from any view.
func (f *Flow) BookClick(entity models.Bookable) error {
	if entity.Kind != f.kind {
		return newFlowError(ErrKindMismatch, "%s entity cannot be booked in the %s flow", entity.Kind, f.kind)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.start(entity, "")
	f.logger.Debug("Booking started", zap.String("entityID", entity.ID))
	return nil
}

// Reschedule re-enters slot selection for the entity of an existing appointment.
// The previous date, time and address are deliberately not carried over.
func (f *Flow) Reschedule(ctx context.Context, appt models.Appointment) error {
	if appt.Kind != "" && appt.Kind != f.kind {
		return newFlowError(ErrKindMismatch, "appointment %s is a %s booking", appt.ID, appt.Kind)
	}
	if f.lookup == nil {
		return newFlowError(ErrEntityNotFound, "no catalog available for %s", f.kind)
	}
	entity, ok, err := f.lookup(ctx, appt.EntityID)
	if err != nil {
		return err
	}
	if !ok {
		f.logger.Warn("Reschedule target missing from catalog", zap.String("entityID", appt.EntityID))
		return newFlowError(ErrEntityNotFound, "entity %s not found", appt.EntityID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.start(entity, appt.ID)
	f.logger.Debug("Reschedule started", zap.String("appointmentID", appt.ID), zap.String("entityID", entity.ID))
	return nil
}

func (f *Flow) start(entity models.Bookable, rescheduleOf string) {
	f.draft = &models.BookingDraft{Entity: entity, RescheduleOf: rescheduleOf}
	f.calendar.Reset()
	f.slots.Reset()
	f.confirmed = nil
	f.finished = false
	f.view = ViewSlots
}

// ChangeMonth moves the booking calendar.
func (f *Flow) ChangeMonth(delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.require(ViewSlots, "change month"); err != nil {
		return err
	}
	f.calendar.ChangeMonth(delta)
	return nil
}

// SelectDay selects a day of the displayed month and clears the chosen time.
// Disabled days leave the draft untouched.
func (f *Flow) SelectDay(day int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.require(ViewSlots, "select a day"); err != nil {
		return err
	}
	if _, err := f.calendar.SelectDay(day); err != nil {
		return err
	}
	date, _ := f.calendar.Selected()
	f.draft.Date = date
	f.draft.Time = ""
	f.slots.SetDate(date)
	return nil
}

// SelectTime picks one of the slots derived for the selected date.
func (f *Flow) SelectTime(label string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.require(ViewSlots, "select a time"); err != nil {
		return err
	}
	if err := f.slots.Select(label); err != nil {
		return err
	}
	f.draft.Time = label
	return nil
}

// SetDetails replaces the address, notes and preferred caregiver gender.
func (f *Flow) SetDetails(d Details) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.require(ViewSlots, "edit details"); err != nil {
		return err
	}
	if d.PreferredGender != "" && !preferredGenders[d.PreferredGender] {
		return newFlowError(ErrInvalidFilter, "preferred gender %q is not one of Any, Female, Male", d.PreferredGender)
	}
	f.draft.Address = d.Address
	f.draft.Notes = d.Notes
	f.draft.PreferredGender = d.PreferredGender
	return nil
}

// CanConfirm reports whether date, time and a non-blank address are all present.
func (f *Flow) CanConfirm() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canConfirm()
}

func (f *Flow) canConfirm() bool {
	if f.view != ViewSlots || f.draft == nil {
		return false
	}
	return !f.draft.Date.IsZero() && f.draft.Time != "" && strings.TrimSpace(f.draft.Address) != ""
}

// Confirm moves the draft to the success view and returns its summary.
func (f *Flow) Confirm() (models.BookingSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.require(ViewSlots, "confirm"); err != nil {
		return models.BookingSummary{}, err
	}
	if !f.canConfirm() {
		return models.BookingSummary{}, ErrIncomplete
	}

	d := f.draft
	f.confirmed = &models.Appointment{
		ID:           uuid.New().String(),
		EntityID:     d.Entity.ID,
		Kind:         d.Entity.Kind,
		EntityName:   d.Entity.Name,
		Category:     d.Entity.Category,
		Reason:       strings.TrimSpace(d.Notes),
		Date:         d.Date.Format(models.DateLayout),
		Time:         d.Time,
		Address:      d.Address,
		Status:       models.StatusUpcoming,
		RescheduleOf: d.RescheduleOf,
		CreatedAt:    f.now(),
	}
	f.view = ViewSuccess
	f.logger.Info("Booking confirmed",
		zap.String("appointmentID", f.confirmed.ID),
		zap.String("entityID", d.Entity.ID),
		zap.String("date", f.confirmed.Date),
		zap.String("time", d.Time))
	return f.summary(), nil
}

// Cancel discards the draft and returns to the listing.
func (f *Flow) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.require(ViewSlots, "cancel"); err != nil {
		return err
	}
	f.reset()
	f.logger.Debug("Booking cancelled")
	return nil
}

func (f *Flow) reset() {
	f.view = ViewListing
	f.draft = nil
	f.confirmed = nil
	f.calendar.Reset()
	f.slots.Reset()
}

// Finish hands the confirmed appointment to the dashboard collaborator. It runs
// once per confirmation and does not change the rendered state.
func (f *Flow) Finish() (models.Appointment, error) {
	f.mu.Lock()
	if err := f.require(ViewSuccess, "finish"); err != nil {
		f.mu.Unlock()
		return models.Appointment{}, err
	}
	if f.finished {
		f.mu.Unlock()
		return models.Appointment{}, newFlowError(ErrInvalidTransition, "booking already finished")
	}
	f.finished = true
	appt := *f.confirmed
	onFinish := f.onFinish
	f.mu.Unlock()

	if onFinish != nil {
		onFinish(appt)
	}
	return appt, nil
}

// Snapshot renders the current state.
func (f *Flow) Snapshot() FlowSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := FlowSnapshot{Kind: f.kind, View: f.view}
	if f.draft == nil {
		return s
	}
	entity := f.draft.Entity
	s.Entity = &entity
	s.SelectedTime = f.draft.Time
	s.Details = Details{Address: f.draft.Address, Notes: f.draft.Notes, PreferredGender: f.draft.PreferredGender}
	s.RescheduleOf = f.draft.RescheduleOf

	switch f.view {
	case ViewSlots:
		cal := f.calendar.View()
		s.Calendar = &cal
		s.SlotsEnabled = f.slots.Enabled()
		s.Slots = f.slots.Options()
		s.CanConfirm = f.canConfirm()
	case ViewSuccess:
		sum := f.summary()
		appt := *f.confirmed
		s.Summary = &sum
		s.Appointment = &appt
	}
	return s
}

func (f *Flow) summary() models.BookingSummary {
	return models.BookingSummary{
		Name:    f.draft.Entity.Name,
		Date:    f.draft.Date.Format(models.DateLayout),
		Time:    f.draft.Time,
		Address: f.draft.Address,
	}
}

func (f *Flow) require(view View, action string) error {
	if f.view != view {
		return newFlowError(ErrInvalidTransition, "cannot %s from the %s view", action, f.view)
	}
	return nil
}
