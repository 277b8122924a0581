package handlers

import (
	"errors"
	"net/http"

	"drepto/middleware"
	"drepto/services/ambulance"
	"drepto/services/booking"
	"drepto/services/cart"
	ai "drepto/services/intelligence"
	"drepto/services/notification"
	"drepto/services/payment"
	"drepto/services/portal"
	"drepto/services/user"
	"drepto/utils"

	"github.com/gin-gonic/gin"
)

// statusByError maps domain sentinels onto HTTP statuses.
var statusByError = []struct {
	err    error
	status int
}{
	{booking.ErrEntityNotFound, http.StatusNotFound},
	{booking.ErrInvalidTransition, http.StatusConflict},
	{booking.ErrKindMismatch, http.StatusConflict},
	{booking.ErrInvalidFilter, http.StatusBadRequest},
	{booking.ErrInvalidField, http.StatusBadRequest},
	{booking.ErrDateDisabled, http.StatusUnprocessableEntity},
	{booking.ErrDayOutOfRange, http.StatusUnprocessableEntity},
	{booking.ErrNoDateSelected, http.StatusUnprocessableEntity},
	{booking.ErrUnknownSlot, http.StatusUnprocessableEntity},
	{booking.ErrIncomplete, http.StatusUnprocessableEntity},

	{cart.ErrIndexOutOfRange, http.StatusNotFound},
	{cart.ErrNameRequired, http.StatusBadRequest},
	{cart.ErrInvalidPrice, http.StatusBadRequest},

	{payment.ErrUnknownMethod, http.StatusBadRequest},
	{payment.ErrEmptyCart, http.StatusUnprocessableEntity},
	{payment.ErrNoMethod, http.StatusUnprocessableEntity},
	{payment.ErrPaymentClosed, http.StatusConflict},
	{payment.ErrPaymentInProgress, http.StatusConflict},
	{payment.ErrAlreadyPaid, http.StatusConflict},
	{payment.ErrNotPaid, http.StatusConflict},

	{ambulance.ErrPickupRequired, http.StatusBadRequest},
	{ambulance.ErrUnknownTier, http.StatusBadRequest},
	{ambulance.ErrNotEditable, http.StatusConflict},
	{ambulance.ErrNotActive, http.StatusConflict},

	{notification.ErrReminderNotVisible, http.StatusConflict},
	{ai.ErrEmptyMessage, http.StatusBadRequest},

	{user.ErrInvalidRole, http.StatusBadRequest},
	{user.ErrIdentifierRequired, http.StatusBadRequest},
	{user.ErrMissingDetails, http.StatusBadRequest},
}

func statusFor(err error) int {
	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// writeError reports err with the status of its sentinel.
func writeError(c *gin.Context, message string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		utils.JSONError(c, status, message, "An unexpected error occurred. Please try again later.")
		getLogger(c).Sugar().Errorf("%s: %v", message, err)
		return
	}
	utils.JSONError(c, status, message, err.Error())
}

// sessionPortal fetches the caller's portal or aborts the request.
func sessionPortal(c *gin.Context) (*portal.Portal, bool) {
	p, ok := middleware.CurrentPortal(c)
	if !ok {
		utils.JSONError(c, http.StatusInternalServerError, "Session not found", "portal session missing from context")
		return nil, false
	}
	return p, true
}

// bindJSON decodes the body into dst or aborts with 400.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return false
	}
	return true
}
