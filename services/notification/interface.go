package notification

import (
	"context"
	"errors"
	"sync"
	"time"

	"drepto/models"
	"drepto/services/tasks"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultReminderDelay is how long after the dashboard opens the reminder toast appears.
const DefaultReminderDelay = 1500 * time.Millisecond

// The upcoming appointment is fixed until a booking store feeds real ones.
const (
	upcomingDoctor = "Dr. Sarah Smith"
	upcomingTime   = "10:00 AM"
)

var ErrReminderNotVisible = errors.New("reminder is not visible")

// ReminderService is the simulated push channel for the upcoming-appointment reminder.
type ReminderService interface {
	Start(ctx context.Context)
	State() models.ReminderState
	Dismiss() error
	ViewDetails() (models.Notification, error)
	DismissBanner()
	Stop()
}

// Reminder shows one toast after a delay. Dismiss and ViewDetails are both
// terminal; nothing about the seen state outlives the session.
type Reminder struct {
	mu     sync.Mutex
	status models.ReminderStatus
	toast  *models.Notification
	banner bool
	task   *tasks.Task

	delay  time.Duration
	now    func() time.Time
	logger *zap.Logger
}

var _ ReminderService = (*Reminder)(nil)

// NewReminder creates a reminder that has not started counting down.
func NewReminder(delay time.Duration, now func() time.Time, logger *zap.Logger) *Reminder {
	if delay <= 0 {
		delay = DefaultReminderDelay
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reminder{status: models.ReminderPending, banner: true, delay: delay, now: now, logger: logger}
}

// Start schedules the toast. Calling it again while the first timer is live does nothing.
func (r *Reminder) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.task != nil || r.status != models.ReminderPending {
		return
	}
	r.task = tasks.Schedule(ctx, tasks.TypeShowReminder, r.delay, r.show)
}

func (r *Reminder) show() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != models.ReminderPending {
		return
	}
	tomorrow := r.now().AddDate(0, 0, 1)
	r.toast = &models.Notification{
		ID:    uuid.New().String(),
		Type:  "appointment_reminder",
		Title: "Upcoming Appointment",
		Body:  "You have a consultation with " + upcomingDoctor + " scheduled for tomorrow at " + upcomingTime + ".",
		Data: map[string]any{
			"doctor": upcomingDoctor,
			"date":   tomorrow.Format(models.DateLayout),
			"time":   upcomingTime,
			"tab":    "appointments",
		},
		CreatedAt: r.now(),
	}
	r.status = models.ReminderVisible
	r.logger.Info("Reminder shown", zap.String("notificationID", r.toast.ID))
}

// State renders the toast and banner.
func (r *Reminder) State() models.ReminderState {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := models.ReminderState{Status: r.status, BannerVisible: r.banner}
	if r.status == models.ReminderVisible {
		toast := *r.toast
		s.Toast = &toast
	}
	if r.banner {
		s.Banner = "Up Next: " + upcomingDoctor + " • Tomorrow, " + upcomingTime
	}
	return s
}

// Dismiss hides the visible toast for good.
func (r *Reminder) Dismiss() error {
	_, err := r.close(models.ReminderDismissed)
	return err
}

// ViewDetails hides the toast and returns it so the caller can open the appointments tab.
func (r *Reminder) ViewDetails() (models.Notification, error) {
	return r.close(models.ReminderViewed)
}

func (r *Reminder) close(to models.ReminderStatus) (models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != models.ReminderVisible {
		return models.Notification{}, ErrReminderNotVisible
	}
	r.status = to
	n := *r.toast
	n.Read = true
	r.toast = nil
	r.logger.Debug("Reminder closed", zap.String("status", string(to)))
	return n, nil
}

// DismissBanner hides the inline banner.
func (r *Reminder) DismissBanner() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.banner = false
}

// Stop cancels a pending toast.
func (r *Reminder) Stop() {
	r.mu.Lock()
	task := r.task
	r.mu.Unlock()
	if task != nil {
		task.Cancel()
	}
}
