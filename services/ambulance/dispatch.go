package ambulance

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"drepto/models"
	"drepto/services/tasks"

	"go.uber.org/zap"
)

// DefaultSearchDelay is how long locating a unit takes in the simulation.
const DefaultSearchDelay = 3 * time.Second

var (
	ErrPickupRequired = errors.New("pickup location is required")
	ErrUnknownTier    = errors.New("vehicle type not offered for this mode")
	ErrNotEditable    = errors.New("request already submitted")
	ErrNotActive      = errors.New("no active request")
)

// Dispatch walks a single ambulance request through input, searching and tracking.
type Dispatch struct {
	mu     sync.Mutex
	ctx    context.Context
	tiers  []models.AmbulanceTier
	req    models.AmbulanceRequest
	task   *tasks.Task
	search uint64
	delay  time.Duration
	logger *zap.Logger
}

// NewDispatch starts in the input step with the road mode and its first tier chosen.
func NewDispatch(ctx context.Context, tiers []models.AmbulanceTier, delay time.Duration, logger *zap.Logger) *Dispatch {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Dispatch{ctx: ctx, tiers: tiers, delay: delay, logger: logger}
	d.req = models.AmbulanceRequest{Step: models.DispatchInput, Mode: models.AmbulanceRoad, TierID: d.firstTier(models.AmbulanceRoad)}
	return d
}

func (d *Dispatch) firstTier(mode models.AmbulanceMode) string {
	for _, t := range d.tiers {
		if t.Mode == mode {
			return t.ID
		}
	}
	return ""
}

// Tiers lists the vehicle types offered for the current mode.
func (d *Dispatch) Tiers() []models.AmbulanceTier {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []models.AmbulanceTier
	for _, t := range d.tiers {
		if t.Mode == d.req.Mode {
			out = append(out, t)
		}
	}
	return out
}

// State renders the request.
func (d *Dispatch) State() models.AmbulanceRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := d.req
	if r.Driver != nil {
		drv := *r.Driver
		r.Driver = &drv
	}
	return r
}

// SetMode switches between road and air and picks that mode's first tier.
func (d *Dispatch) SetMode(mode models.AmbulanceMode) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.req.Step != models.DispatchInput {
		return ErrNotEditable
	}
	tier := d.firstTier(mode)
	if tier == "" {
		return ErrUnknownTier
	}
	d.req.Mode = mode
	d.req.TierID = tier
	return nil
}

// SelectTier picks a vehicle type of the current mode.
func (d *Dispatch) SelectTier(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.req.Step != models.DispatchInput {
		return ErrNotEditable
	}
	for _, t := range d.tiers {
		if t.ID == id && t.Mode == d.req.Mode {
			d.req.TierID = id
			return nil
		}
	}
	return ErrUnknownTier
}

// SetLocations records pickup and the optional drop-off.
func (d *Dispatch) SetLocations(pickup, dropoff string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.req.Step != models.DispatchInput {
		return ErrNotEditable
	}
	d.req.Pickup = pickup
	d.req.Dropoff = dropoff
	return nil
}

// Request starts searching for a unit. Tracking follows after the search delay.
func (d *Dispatch) Request() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.req.Step != models.DispatchInput {
		return ErrNotEditable
	}
	if strings.TrimSpace(d.req.Pickup) == "" {
		return ErrPickupRequired
	}
	d.req.Step = models.DispatchSearching
	d.search++
	search := d.search
	d.task = tasks.Schedule(d.ctx, tasks.TypeDispatchAmbulance, d.delay, func() { d.assign(search) })
	d.logger.Info("Ambulance requested", zap.String("mode", string(d.req.Mode)), zap.String("tier", d.req.TierID))
	return nil
}

func (d *Dispatch) assign(search uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if search != d.search || d.req.Step != models.DispatchSearching {
		return
	}
	d.req.Step = models.DispatchTracking
	// crew details stay blank until a fleet service provides them
	d.req.Driver = &models.AssignedDriver{}
	d.task = nil
	d.logger.Info("Ambulance assigned")
}

// Cancel returns to the input step, clearing locations and any pending search.
func (d *Dispatch) Cancel() error {
	d.mu.Lock()
	if d.req.Step == models.DispatchInput {
		d.mu.Unlock()
		return ErrNotActive
	}
	d.abandon()
	d.req.Step = models.DispatchInput
	d.req.Pickup = ""
	d.req.Dropoff = ""
	d.req.Driver = nil
	d.mu.Unlock()

	d.logger.Debug("Ambulance request cancelled")
	return nil
}

// Stop cancels a pending search.
func (d *Dispatch) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.abandon()
}

// abandon retires the current search timer. Called with d.mu held.
func (d *Dispatch) abandon() {
	d.search++
	if d.task != nil {
		d.task.Cancel()
		d.task = nil
	}
}
