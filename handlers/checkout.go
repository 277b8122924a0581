package handlers

import (
	"net/http"

	"drepto/models"
	"drepto/services/portal"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler drives the cart drawer and the simulated payment modal.
type CheckoutHandler struct{}

func NewCheckoutHandler() *CheckoutHandler {
	return &CheckoutHandler{}
}

type methodRequest struct {
	Method models.PaymentMethod `json:"method" binding:"required"`
}

// checkoutAction runs op against the session checkout and renders the result.
func checkoutAction(c *gin.Context, message string, op func(p *portal.Portal) error) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	if err := op(p); err != nil {
		writeError(c, message, err)
		return
	}
	c.JSON(http.StatusOK, p.Checkout.State())
}

func (h *CheckoutHandler) State(c *gin.Context) {
	checkoutAction(c, "", func(*portal.Portal) error { return nil })
}

func (h *CheckoutHandler) OpenCart(c *gin.Context) {
	checkoutAction(c, "", func(p *portal.Portal) error {
		p.Checkout.OpenCart()
		return nil
	})
}

func (h *CheckoutHandler) CloseCart(c *gin.Context) {
	checkoutAction(c, "", func(p *portal.Portal) error {
		p.Checkout.CloseCart()
		return nil
	})
}

func (h *CheckoutHandler) Proceed(c *gin.Context) {
	checkoutAction(c, "Cannot proceed to payment", func(p *portal.Portal) error {
		return p.Checkout.ProceedToPayment()
	})
}

func (h *CheckoutHandler) SelectMethod(c *gin.Context) {
	var req methodRequest
	if !bindJSON(c, &req) {
		return
	}
	checkoutAction(c, "Cannot select payment method", func(p *portal.Portal) error {
		return p.Checkout.SelectMethod(req.Method)
	})
}

// Pay starts processing; poll State for the settled invoice.
func (h *CheckoutHandler) Pay(c *gin.Context) {
	checkoutAction(c, "Cannot start payment", func(p *portal.Portal) error {
		return p.Checkout.Pay()
	})
}

func (h *CheckoutHandler) Done(c *gin.Context) {
	checkoutAction(c, "Payment not complete", func(p *portal.Portal) error {
		return p.Checkout.Done()
	})
}

func (h *CheckoutHandler) ClosePayment(c *gin.Context) {
	checkoutAction(c, "", func(p *portal.Portal) error {
		p.Checkout.ClosePayment()
		return nil
	})
}
