package booking

import (
	"context"

	"drepto/models"
)

// EntityLookup resolves a catalog entity of the flow's kind by id. The boolean is
// false when the catalog has no such entity.
type EntityLookup func(ctx context.Context, id string) (models.Bookable, bool, error)

// FinishFunc receives the confirmed appointment when the user returns to the
// dashboard. It owns any persistence; the flow keeps nothing.
type FinishFunc func(appt models.Appointment)

// BookingFlow is the per-kind booking wizard driven by the HTTP layer.
type BookingFlow interface {
	BookClick(entity models.Bookable) error
	Reschedule(ctx context.Context, appt models.Appointment) error
	ChangeMonth(delta int) error
	SelectDay(day int) error
	SelectTime(label string) error
	SetDetails(details Details) error
	CanConfirm() bool
	Confirm() (models.BookingSummary, error)
	Cancel() error
	Finish() (models.Appointment, error)
	Snapshot() FlowSnapshot
}
