package portal

import (
	"context"
	"sync"
	"testing"
	"time"

	catalogRepo "drepto/database/repository/catalog"
	"drepto/models"
	"drepto/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testDeps(clk *clock) Deps {
	cat := catalogRepo.NewStaticCatalog()
	cat.DoctorList = []models.Doctor{{ID: 1, Name: "Dr. A", Specialty: "Cardiologist", Rating: 4.9, Available: "Today"}}
	return Deps{
		Catalog:        cat,
		Now:            clk.Now,
		ReminderDelay:  time.Hour,
		PaymentDelay:   10 * time.Millisecond,
		AmbulanceDelay: 10 * time.Millisecond,
	}
}

func newClock() *clock {
	return &clock{now: time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)}
}

func TestPortalBookingFinishDiscardsFlow(t *testing.T) {
	ctx := context.Background()
	p, err := New(ctx, "s1", testDeps(newClock()))
	require.NoError(t, err)
	defer p.Close()

	var entity models.Bookable
	require.NoError(t, p.WithListing(ctx, models.KindDoctor, func(l *booking.Listing) error {
		page := l.Current()
		require.Len(t, page.Items, 1)
		entity = page.Items[0]
		return nil
	}))

	f, err := p.Flow(models.KindDoctor)
	require.NoError(t, err)
	require.NoError(t, f.BookClick(entity))
	require.NoError(t, f.SelectDay(19))
	require.NoError(t, f.SelectTime("09:30 AM"))
	require.NoError(t, f.SetDetails(booking.Details{Address: "12 Main St"}))
	_, err = f.Confirm()
	require.NoError(t, err)
	_, err = f.Finish()
	require.NoError(t, err)

	again, err := p.Flow(models.KindDoctor)
	require.NoError(t, err)
	assert.NotSame(t, f, again)
	assert.Equal(t, booking.ViewListing, again.Snapshot().View)
}

func TestPortalRescheduleUsesCatalog(t *testing.T) {
	p, err := New(context.Background(), "s1", testDeps(newClock()))
	require.NoError(t, err)
	defer p.Close()

	f, err := p.Flow(models.KindDoctor)
	require.NoError(t, err)
	require.NoError(t, f.Reschedule(context.Background(), models.Appointment{ID: "a1", EntityID: "1", Kind: models.KindDoctor}))
	assert.Equal(t, "Dr. A", f.Snapshot().Entity.Name)
}

func TestPortalCatalogAddReachesOpenCart(t *testing.T) {
	ctx := context.Background()
	p, err := New(ctx, "s1", testDeps(newClock()))
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.AddToCartFromCatalog(ctx, models.CartItem{ID: models.NumericID(4), Name: "Dolo 650", Price: "₹30"}))
	assert.Equal(t, 1, p.Cart.Count())
	assert.Equal(t, 30.0, p.Cart.Total())
}

func TestPortalFlowRejectsUnknownKind(t *testing.T) {
	p, err := New(context.Background(), "s1", testDeps(newClock()))
	require.NoError(t, err)
	defer p.Close()

	_, err = p.Flow("spa")
	assert.Error(t, err)
}

func TestRegistryReusesAndExpiresSessions(t *testing.T) {
	clk := newClock()
	r := NewRegistry(testDeps(clk), time.Hour)
	defer r.CloseAll()
	ctx := context.Background()

	a, err := r.Get(ctx, "a")
	require.NoError(t, err)
	a2, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Same(t, a, a2)

	_, err = r.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	clk.Advance(45 * time.Minute)
	_, _ = r.Get(ctx, "a")
	clk.Advance(30 * time.Minute)

	assert.Equal(t, 1, r.Sweep())
	assert.Equal(t, 1, r.Len())

	r.Remove("a")
	assert.Zero(t, r.Len())
}

func TestSessionsHaveSeparateCarts(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(testDeps(newClock()), time.Hour)
	defer r.CloseAll()

	a, _ := r.Get(ctx, "a")
	b, _ := r.Get(ctx, "b")
	require.NoError(t, a.Cart.Add(ctx, models.CartItem{ID: models.NumericID(1), Name: "x", Price: "5"}))
	assert.Zero(t, b.Cart.Count())
}

type failingAppointments struct{}

func (failingAppointments) Appointments(context.Context) ([]models.Appointment, error) {
	return nil, assert.AnError
}

func TestPortalBoardLoadsAppointments(t *testing.T) {
	ctx := context.Background()
	deps := testDeps(newClock())
	cat := deps.Catalog.(*catalogRepo.StaticCatalog)
	cat.AppointmentList = []models.Appointment{
		{ID: "a1", EntityID: "1", Kind: models.KindDoctor, PatientName: "Asha Rao", Date: "2026-10-21", Time: "10:00 AM", Status: models.StatusUpcoming},
	}
	deps.Appointments = cat

	p, err := New(ctx, "s-appt", deps)
	require.NoError(t, err)
	defer p.Close()

	appt, ok := p.Board.Find("a1")
	require.True(t, ok)
	assert.Equal(t, "Asha Rao", appt.PatientName)
	assert.Equal(t, 1, p.Board.View().Total)

	deps.Appointments = failingAppointments{}
	q, err := New(ctx, "s-empty", deps)
	require.NoError(t, err)
	defer q.Close()
	assert.Zero(t, q.Board.View().Total)
}
