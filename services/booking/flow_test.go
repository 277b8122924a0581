package booking

import (
	"context"
	"errors"
	"testing"

	"drepto/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var drA = models.Bookable{ID: "1", Kind: models.KindDoctor, Name: "Dr. A", Category: "Cardiologist", Rating: 4.9, Availability: "Today"}

func newTestFlow(t *testing.T, onFinish FinishFunc) *Flow {
	t.Helper()
	lookup := func(_ context.Context, id string) (models.Bookable, bool, error) {
		if id == drA.ID {
			return drA, true, nil
		}
		return models.Bookable{}, false, nil
	}
	return NewFlow(FlowConfig{Kind: models.KindDoctor, Now: fixedNow, Lookup: lookup, OnFinish: onFinish})
}

func TestFlowHappyPath(t *testing.T) {
	var finished []models.Appointment
	f := newTestFlow(t, func(a models.Appointment) { finished = append(finished, a) })

	assert.Equal(t, ViewListing, f.Snapshot().View)
	require.NoError(t, f.BookClick(drA))

	require.NoError(t, f.SelectDay(19))
	slot := DeriveSlots(day(19))[0]
	require.NoError(t, f.SelectTime(slot))
	require.NoError(t, f.SetDetails(Details{Address: "12 Main St"}))
	require.True(t, f.CanConfirm())

	summary, err := f.Confirm()
	require.NoError(t, err)
	assert.Equal(t, models.BookingSummary{Name: "Dr. A", Date: "2026-10-19", Time: slot, Address: "12 Main St"}, summary)

	snap := f.Snapshot()
	assert.Equal(t, ViewSuccess, snap.View)
	require.NotNil(t, snap.Summary)
	assert.Equal(t, summary, *snap.Summary)
	assert.Equal(t, models.StatusUpcoming, snap.Appointment.Status)

	appt, err := f.Finish()
	require.NoError(t, err)
	require.Len(t, finished, 1)
	assert.Equal(t, appt, finished[0])
	assert.Equal(t, ViewSuccess, f.Snapshot().View, "finish leaves the state alone")

	_, err = f.Finish()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Len(t, finished, 1)
}

func TestFlowConfirmRequiresAllFields(t *testing.T) {
	f := newTestFlow(t, nil)
	require.NoError(t, f.BookClick(drA))

	assert.False(t, f.CanConfirm())
	_, err := f.Confirm()
	assert.ErrorIs(t, err, ErrIncomplete)

	require.NoError(t, f.SelectDay(19))
	assert.False(t, f.CanConfirm())

	require.NoError(t, f.SelectTime("09:30 AM"))
	assert.False(t, f.CanConfirm())

	require.NoError(t, f.SetDetails(Details{Address: "   \t"}))
	assert.False(t, f.CanConfirm(), "whitespace address")
	_, err = f.Confirm()
	assert.ErrorIs(t, err, ErrIncomplete)

	require.NoError(t, f.SetDetails(Details{Address: "12 Main St"}))
	assert.True(t, f.CanConfirm())
}

func TestFlowSelectingDateClearsTime(t *testing.T) {
	f := newTestFlow(t, nil)
	require.NoError(t, f.BookClick(drA))
	require.NoError(t, f.SelectDay(19))
	require.NoError(t, f.SelectTime("09:30 AM"))

	require.NoError(t, f.SelectDay(20))
	assert.Empty(t, f.Snapshot().SelectedTime)

	require.NoError(t, f.SelectTime("09:00 AM"))
	require.NoError(t, f.SelectDay(20))
	assert.Empty(t, f.Snapshot().SelectedTime, "reselecting the same day still clears the time")
}

func TestFlowDisabledDayKeepsDraft(t *testing.T) {
	f := newTestFlow(t, nil)
	require.NoError(t, f.BookClick(drA))
	require.NoError(t, f.SelectDay(19))
	require.NoError(t, f.SelectTime("09:30 AM"))

	err := f.SelectDay(17)
	assert.ErrorIs(t, err, ErrDateDisabled)
	snap := f.Snapshot()
	assert.Equal(t, "2026-10-19", snap.Calendar.Selected)
	assert.Equal(t, "09:30 AM", snap.SelectedTime)
}

func TestFlowTimeRequiresDate(t *testing.T) {
	f := newTestFlow(t, nil)
	require.NoError(t, f.BookClick(drA))

	snap := f.Snapshot()
	assert.False(t, snap.SlotsEnabled)
	assert.Empty(t, snap.Slots)
	assert.ErrorIs(t, f.SelectTime("09:00 AM"), ErrNoDateSelected)

	require.NoError(t, f.SelectDay(19))
	assert.ErrorIs(t, f.SelectTime("09:00 AM"), ErrUnknownSlot, "even-index slot on an odd day")
}

func TestFlowCancelDoesNotLeak(t *testing.T) {
	f := newTestFlow(t, nil)
	require.NoError(t, f.BookClick(drA))
	require.NoError(t, f.ChangeMonth(1))
	require.NoError(t, f.ChangeMonth(-1))
	require.NoError(t, f.SelectDay(19))
	require.NoError(t, f.SelectTime("09:30 AM"))
	require.NoError(t, f.SetDetails(Details{Address: "12 Main St", Notes: "knee"}))

	require.NoError(t, f.Cancel())
	snap := f.Snapshot()
	assert.Equal(t, ViewListing, snap.View)
	assert.Nil(t, snap.Entity)

	require.NoError(t, f.BookClick(drA))
	snap = f.Snapshot()
	assert.Equal(t, ViewSlots, snap.View)
	assert.Empty(t, snap.Calendar.Selected)
	assert.Empty(t, snap.SelectedTime)
	assert.Equal(t, Details{}, snap.Details)
	assert.Equal(t, "2026-10", snap.Calendar.Month)
}

func TestFlowBookClickResetsCursor(t *testing.T) {
	f := newTestFlow(t, nil)
	require.NoError(t, f.BookClick(drA))
	require.NoError(t, f.ChangeMonth(4))

	other := drA
	other.ID, other.Name = "2", "Dr. B"
	require.NoError(t, f.BookClick(other))

	snap := f.Snapshot()
	assert.Equal(t, "Dr. B", snap.Entity.Name)
	assert.Equal(t, "2026-10", snap.Calendar.Month)
}

func TestFlowRescheduleStartsEmpty(t *testing.T) {
	f := newTestFlow(t, nil)
	appt := models.Appointment{
		ID: "appt-1", EntityID: "1", Kind: models.KindDoctor,
		Date: "2026-10-20", Time: "10:00 AM", Address: "Old Rd", Status: models.StatusUpcoming,
	}

	require.NoError(t, f.Reschedule(context.Background(), appt))
	snap := f.Snapshot()
	assert.Equal(t, ViewSlots, snap.View)
	assert.Equal(t, "Dr. A", snap.Entity.Name)
	assert.Equal(t, "appt-1", snap.RescheduleOf)
	assert.Empty(t, snap.Calendar.Selected)
	assert.Empty(t, snap.SelectedTime)
	assert.Empty(t, snap.Details.Address)

	require.NoError(t, f.SelectDay(21))
	require.NoError(t, f.SelectTime("09:30 AM"))
	require.NoError(t, f.SetDetails(Details{Address: "New Rd"}))
	_, err := f.Confirm()
	require.NoError(t, err)
	assert.Equal(t, "appt-1", f.Snapshot().Appointment.RescheduleOf)
}

func TestFlowRescheduleUnknownEntity(t *testing.T) {
	f := newTestFlow(t, nil)
	err := f.Reschedule(context.Background(), models.Appointment{ID: "x", EntityID: "404"})
	assert.ErrorIs(t, err, ErrEntityNotFound)
	assert.Equal(t, ViewListing, f.Snapshot().View)
}

func TestFlowRejectsWrongKindAndBadTransitions(t *testing.T) {
	f := newTestFlow(t, nil)

	err := f.BookClick(models.Bookable{ID: "1", Kind: models.KindLabTest, Name: "CBC Test"})
	assert.ErrorIs(t, err, ErrKindMismatch)

	assert.ErrorIs(t, f.Cancel(), ErrInvalidTransition)
	assert.ErrorIs(t, f.SelectDay(19), ErrInvalidTransition)
	_, err = f.Finish()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	var fe *FlowError
	require.True(t, errors.As(f.Cancel(), &fe))
	assert.Equal(t, "invalidTransition", fe.Code)
}

func TestFlowPreferredGender(t *testing.T) {
	f := NewFlow(FlowConfig{Kind: models.KindNurseService, Now: fixedNow})
	require.NoError(t, f.BookClick(models.Bookable{ID: "3", Kind: models.KindNurseService, Name: "Post-op care"}))

	assert.ErrorIs(t, f.SetDetails(Details{Address: "x", PreferredGender: "Robot"}), ErrInvalidFilter)
	require.NoError(t, f.SetDetails(Details{Address: "x", PreferredGender: "Female"}))
	assert.Equal(t, "Female", f.Snapshot().Details.PreferredGender)
}

func TestFlowStartingNewBookingOverwritesSuccess(t *testing.T) {
	f := newTestFlow(t, nil)
	require.NoError(t, f.BookClick(drA))
	require.NoError(t, f.SelectDay(19))
	require.NoError(t, f.SelectTime("09:30 AM"))
	require.NoError(t, f.SetDetails(Details{Address: "12 Main St"}))
	_, err := f.Confirm()
	require.NoError(t, err)

	require.NoError(t, f.BookClick(drA))
	snap := f.Snapshot()
	assert.Equal(t, ViewSlots, snap.View)
	assert.Nil(t, snap.Summary)
}
