package ambulance

import (
	"context"
	"testing"
	"time"

	"drepto/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTiers = []models.AmbulanceTier{
	{ID: "basic", Label: "Basic", Price: "₹50", Mode: models.AmbulanceRoad},
	{ID: "oxygen", Label: "Oxygen", Price: "₹80", Mode: models.AmbulanceRoad},
	{ID: "icu", Label: "ICU", Price: "₹150", Mode: models.AmbulanceRoad},
	{ID: "air", Label: "Air Ambulance", Price: "₹2500", Mode: models.AmbulanceAir},
}

func newDispatch(t *testing.T, delay time.Duration) *Dispatch {
	t.Helper()
	d := NewDispatch(context.Background(), testTiers, delay, nil)
	t.Cleanup(d.Stop)
	return d
}

func TestDispatchDefaults(t *testing.T) {
	d := newDispatch(t, time.Millisecond)
	s := d.State()
	assert.Equal(t, models.DispatchInput, s.Step)
	assert.Equal(t, models.AmbulanceRoad, s.Mode)
	assert.Equal(t, "basic", s.TierID)
	assert.Len(t, d.Tiers(), 3)
}

func TestDispatchModesAndTiers(t *testing.T) {
	d := newDispatch(t, time.Millisecond)

	require.NoError(t, d.SelectTier("icu"))
	assert.ErrorIs(t, d.SelectTier("air"), ErrUnknownTier)

	require.NoError(t, d.SetMode(models.AmbulanceAir))
	assert.Equal(t, "air", d.State().TierID)
	assert.Len(t, d.Tiers(), 1)
	assert.ErrorIs(t, d.SetMode("Boat"), ErrUnknownTier)
}

func TestDispatchRequiresPickup(t *testing.T) {
	d := newDispatch(t, time.Millisecond)
	assert.ErrorIs(t, d.Request(), ErrPickupRequired)

	require.NoError(t, d.SetLocations("   ", "City Hospital"))
	assert.ErrorIs(t, d.Request(), ErrPickupRequired)
	assert.Equal(t, models.DispatchInput, d.State().Step)
}

func TestDispatchSearchThenTrack(t *testing.T) {
	d := newDispatch(t, 30*time.Millisecond)
	require.NoError(t, d.SetLocations("221B Baker St", ""))
	require.NoError(t, d.Request())

	assert.Equal(t, models.DispatchSearching, d.State().Step)
	assert.ErrorIs(t, d.SetLocations("x", "y"), ErrNotEditable)
	assert.ErrorIs(t, d.Request(), ErrNotEditable)

	require.Eventually(t, func() bool { return d.State().Step == models.DispatchTracking }, time.Second, 5*time.Millisecond)
	assert.NotNil(t, d.State().Driver)
}

func TestDispatchCancelClearsLocations(t *testing.T) {
	d := newDispatch(t, 30*time.Millisecond)
	require.NoError(t, d.SetLocations("Gate 2", "AIIMS"))
	require.NoError(t, d.Request())

	require.NoError(t, d.Cancel())
	time.Sleep(60 * time.Millisecond)

	s := d.State()
	assert.Equal(t, models.DispatchInput, s.Step, "cancelled search never reaches tracking")
	assert.Empty(t, s.Pickup)
	assert.Empty(t, s.Dropoff)
	assert.ErrorIs(t, d.Cancel(), ErrNotActive)
}

func TestStaleSearchTimerIsIgnored(t *testing.T) {
	d := newDispatch(t, time.Hour)
	require.NoError(t, d.SetLocations("Gate 2", ""))
	require.NoError(t, d.Request())
	first := d.search

	require.NoError(t, d.Cancel())
	require.NoError(t, d.SetLocations("Gate 5", ""))
	require.NoError(t, d.Request())

	d.assign(first)
	assert.Equal(t, models.DispatchSearching, d.State().Step)

	d.assign(d.search)
	assert.Equal(t, models.DispatchTracking, d.State().Step)
}
