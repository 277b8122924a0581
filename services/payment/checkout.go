package payment

import (
	"context"
	"errors"
	"sync"
	"time"

	"drepto/models"
	"drepto/services/cart"
	"drepto/services/tasks"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultProcessingDelay is how long the simulated gateway takes to settle.
const DefaultProcessingDelay = 1500 * time.Millisecond

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrPaymentClosed     = errors.New("payment window is not open")
	ErrUnknownMethod     = errors.New("payment method must be UPI, Card or COD")
	ErrNoMethod          = errors.New("select a payment method first")
	ErrPaymentInProgress = errors.New("payment is already processing")
	ErrAlreadyPaid       = errors.New("payment already completed")
	ErrNotPaid           = errors.New("payment has not completed")
)

// Config wires a Checkout.
type Config struct {
	Delay  time.Duration
	Now    func() time.Time
	Logger *zap.Logger
	// OnPaid is called once per settled payment, outside the checkout lock.
	OnPaid func(models.Invoice)
}

// Checkout drives the cart drawer and the simulated payment modal. Payments
// never fail and never reach a real gateway.
type Checkout struct {
	mu    sync.Mutex
	ctx   context.Context
	cart  *cart.Cart
	state models.CheckoutState
	task  *tasks.Task
	// attempt identifies the settlement timer that may still change state.
	attempt uint64
	cfg     Config
}

// NewCheckout creates a checkout over c. Pending payments are abandoned when ctx ends.
func NewCheckout(ctx context.Context, c *cart.Cart, cfg Config) *Checkout {
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultProcessingDelay
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Checkout{ctx: ctx, cart: c, cfg: cfg}
}

// State renders the drawer, modal and payment draft.
func (co *Checkout) State() models.CheckoutState {
	co.mu.Lock()
	defer co.mu.Unlock()
	s := co.state
	if s.Invoice != nil {
		inv := *s.Invoice
		s.Invoice = &inv
	}
	return s
}

// OpenCart shows the cart drawer.
func (co *Checkout) OpenCart() {
	co.mu.Lock()
	defer co.mu.Unlock()
	co.state.CartOpen = true
}

// CloseCart hides the cart drawer.
func (co *Checkout) CloseCart() {
	co.mu.Lock()
	defer co.mu.Unlock()
	co.state.CartOpen = false
}

// ProceedToPayment opens a fresh payment modal for a non-empty cart.
func (co *Checkout) ProceedToPayment() error {
	if co.cart.Count() == 0 {
		return ErrEmptyCart
	}
	co.mu.Lock()
	defer co.mu.Unlock()
	if co.state.Payment.Processing {
		return ErrPaymentInProgress
	}
	co.state.PaymentOpen = true
	co.state.Payment = models.PaymentState{}
	co.state.Invoice = nil
	return nil
}

// SelectMethod picks UPI, Card or COD.
func (co *Checkout) SelectMethod(m models.PaymentMethod) error {
	if !m.Valid() {
		return ErrUnknownMethod
	}
	co.mu.Lock()
	defer co.mu.Unlock()
	if err := co.editable(); err != nil {
		return err
	}
	co.state.Payment.Method = m
	return nil
}

func (co *Checkout) editable() error {
	switch {
	case !co.state.PaymentOpen:
		return ErrPaymentClosed
	case co.state.Payment.Processing:
		return ErrPaymentInProgress
	case co.state.Payment.Success:
		return ErrAlreadyPaid
	}
	return nil
}

// Pay starts processing. Success follows after the configured delay, exactly once.
func (co *Checkout) Pay() error {
	co.mu.Lock()
	defer co.mu.Unlock()
	if err := co.editable(); err != nil {
		return err
	}
	if co.state.Payment.Method == "" {
		return ErrNoMethod
	}
	co.state.Payment.Processing = true
	co.attempt++
	attempt := co.attempt
	co.task = tasks.Schedule(co.ctx, tasks.TypeSettlePayment, co.cfg.Delay, func() { co.settle(attempt) })
	co.cfg.Logger.Info("Payment processing", zap.String("method", string(co.state.Payment.Method)))
	return nil
}

func (co *Checkout) settle(attempt uint64) {
	co.mu.Lock()
	if attempt != co.attempt || !co.state.Payment.Processing {
		co.mu.Unlock()
		return
	}
	inv := newInvoice(co.state.Payment.Method, co.cart.Items(), co.cfg.Now())
	co.state.Payment.Processing = false
	co.state.Payment.Success = true
	co.state.Invoice = &inv
	co.task = nil
	onPaid := co.cfg.OnPaid
	co.mu.Unlock()

	co.cfg.Logger.Info("Payment settled",
		zap.String("invoiceID", inv.InvoiceID),
		zap.Float64("amount", inv.Amount),
		zap.String("status", inv.Status))
	if onPaid != nil {
		onPaid(inv)
	}
}

// Done closes the payment modal and the cart drawer after success. The cart keeps its items.
func (co *Checkout) Done() error {
	co.mu.Lock()
	defer co.mu.Unlock()
	if !co.state.Payment.Success {
		return ErrNotPaid
	}
	co.state.PaymentOpen = false
	co.state.CartOpen = false
	return nil
}

// ClosePayment dismisses the payment modal, abandoning a payment still in flight.
func (co *Checkout) ClosePayment() {
	co.mu.Lock()
	defer co.mu.Unlock()
	co.state.PaymentOpen = false
	co.state.Payment.Processing = false
	if co.abandon() {
		co.cfg.Logger.Debug("Pending payment abandoned")
	}
}

// Stop cancels any pending settlement.
func (co *Checkout) Stop() {
	co.mu.Lock()
	defer co.mu.Unlock()
	co.abandon()
}

// abandon retires the current settlement timer. Called with co.mu held;
// Task.Cancel never takes co.mu.
func (co *Checkout) abandon() bool {
	co.attempt++
	task := co.task
	co.task = nil
	return task != nil && task.Cancel()
}

func newInvoice(method models.PaymentMethod, items []models.CartItem, now time.Time) models.Invoice {
	status := "paid"
	if method == models.MethodCOD {
		status = "pending"
	}
	return models.Invoice{
		InvoiceID: uuid.New().String(),
		Amount:    cart.Total(items),
		Currency:  "INR",
		Method:    method,
		Status:    status,
		Items:     len(items),
		CreatedAt: now,
	}
}
