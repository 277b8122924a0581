package portal

import (
	"context"
	"fmt"
	"sync"
	"time"

	catalogRepo "drepto/database/repository/catalog"
	"drepto/models"
	"drepto/services/ambulance"
	"drepto/services/booking"
	"drepto/services/cart"
	ai "drepto/services/intelligence"
	"drepto/services/notification"
	"drepto/services/payment"
	"drepto/services/user"

	"go.uber.org/zap"
)

// Deps are shared by every portal session.
type Deps struct {
	Catalog        catalogRepo.CatalogRepository
	Appointments   catalogRepo.AppointmentRepository
	CartStore      cart.Store
	Assistant      *ai.Assistant
	Now            func() time.Time
	Logger         *zap.Logger
	ReminderDelay  time.Duration
	PaymentDelay   time.Duration
	AmbulanceDelay time.Duration
}

// Portal is the context object of one signed-in browser session. Every feature
// reaches shared state through it instead of through globals.
type Portal struct {
	ID        string
	Auth      *user.AuthContext
	Cart      *cart.Cart
	Checkout  *payment.Checkout
	Board     *booking.Board
	Patients  *booking.PatientRegister
	Tasks     *booking.TaskList
	Ambulance *ambulance.Dispatch
	Reminder  *notification.Reminder
	Assistant *ai.Assistant

	ctx    context.Context
	cancel context.CancelFunc
	deps   Deps
	bus    *cart.Bus
	logger *zap.Logger

	mu       sync.Mutex
	flows    map[models.BookableKind]*booking.Flow
	listings map[models.BookableKind]*booking.Listing
}

// New opens a portal session: it rehydrates the cart and starts the reminder countdown.
func New(parent context.Context, id string, deps Deps) (*Portal, error) {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.CartStore == nil {
		deps.CartStore = cart.NewMemoryStore()
	}
	if deps.Catalog == nil {
		deps.Catalog = &catalogRepo.StaticCatalog{}
	}
	if deps.Assistant == nil {
		deps.Assistant = ai.NewAssistant(nil, nil, deps.Logger)
	}
	logger := deps.Logger.With(zap.String("session", id))
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))

	p := &Portal{
		ID:        id,
		Auth:      user.NewAuthContext(deps.Now),
		Patients:  booking.NewPatientRegister(deps.Now),
		Tasks:     booking.NewTaskList(deps.Now),
		Reminder:  notification.NewReminder(deps.ReminderDelay, deps.Now, logger),
		Assistant: deps.Assistant,
		ctx:       ctx,
		cancel:    cancel,
		deps:      deps,
		bus:       cart.NewBus(),
		logger:    logger,
		flows:     make(map[models.BookableKind]*booking.Flow),
		listings:  make(map[models.BookableKind]*booking.Listing),
	}

	c, err := cart.Open(ctx, deps.CartStore, p.bus, p.CartKey(), logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open cart: %w", err)
	}
	p.Cart = c
	p.Checkout = payment.NewCheckout(ctx, c, payment.Config{Delay: deps.PaymentDelay, Now: deps.Now, Logger: logger})

	tiers, err := deps.Catalog.AmbulanceTiers(ctx)
	if err != nil {
		logger.Warn("Failed to load ambulance tiers", zap.Error(err))
	}
	p.Ambulance = ambulance.NewDispatch(ctx, tiers, deps.AmbulanceDelay, logger)

	var appointments []models.Appointment
	if deps.Appointments != nil {
		if appointments, err = deps.Appointments.Appointments(ctx); err != nil {
			logger.Warn("Failed to load appointments", zap.Error(err))
		}
	}
	p.Board = booking.NewBoard(appointments, deps.Now)

	p.Reminder.Start(ctx)
	return p, nil
}

// CartKey is the storage key of this session's cart.
func (p *Portal) CartKey() string {
	return p.ID + ":" + cart.StorageKey
}

// AddToCartFromCatalog is the medicines page add path: it writes straight to
// storage and the open cart picks the change up from the bus.
func (p *Portal) AddToCartFromCatalog(ctx context.Context, item models.CartItem) error {
	return cart.AddToStored(ctx, p.deps.CartStore, p.bus, p.CartKey(), item)
}

// Flow returns the booking flow for kind, creating it on first use.
func (p *Portal) Flow(kind models.BookableKind) (*booking.Flow, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown bookable kind %q", kind)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if f, ok := p.flows[kind]; ok {
		return f, nil
	}
	f := booking.NewFlow(booking.FlowConfig{
		Kind: kind,
		Now:  p.deps.Now,
		Lookup: func(ctx context.Context, id string) (models.Bookable, bool, error) {
			return catalogRepo.FindBookable(ctx, p.deps.Catalog, kind, id)
		},
		OnFinish: func(appt models.Appointment) { p.discardFlow(kind, appt) },
		Logger:   p.logger,
	})
	p.flows[kind] = f
	return f, nil
}

// discardFlow drops a finished flow, as returning to the dashboard does. The
// appointment is not kept anywhere.
func (p *Portal) discardFlow(kind models.BookableKind, appt models.Appointment) {
	p.mu.Lock()
	delete(p.flows, kind)
	p.mu.Unlock()
	p.logger.Info("Returned to dashboard", zap.String("kind", string(kind)), zap.String("appointmentID", appt.ID))
}

// Listing returns the search state for kind, loading the catalog on first use.
func (p *Portal) Listing(ctx context.Context, kind models.BookableKind) (*booking.Listing, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if l, ok := p.listings[kind]; ok {
		return l, nil
	}
	items, err := catalogRepo.Bookables(ctx, p.deps.Catalog, kind)
	if err != nil {
		return nil, err
	}
	l := booking.NewListing(items, booking.DefaultListingPageSize)
	p.listings[kind] = l
	return l, nil
}

// WithListing runs fn while holding the portal lock, since listings are not
// safe for concurrent use on their own.
func (p *Portal) WithListing(ctx context.Context, kind models.BookableKind, fn func(*booking.Listing) error) error {
	l, err := p.Listing(ctx, kind)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return fn(l)
}

// Close stops every timer of the session and detaches the cart from the bus.
func (p *Portal) Close() {
	p.Reminder.Stop()
	p.Checkout.Stop()
	p.Ambulance.Stop()
	p.Cart.Close()
	p.cancel()
	p.logger.Debug("Portal session closed")
}
