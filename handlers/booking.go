package handlers

import (
	"net/http"

	catalogRepo "drepto/database/repository/catalog"
	"drepto/services/booking"
	"drepto/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler drives the per-kind booking flows of a session.
type BookingHandler struct {
	Catalog catalogRepo.CatalogRepository
}

func NewBookingHandler(catalog catalogRepo.CatalogRepository) *BookingHandler {
	return &BookingHandler{Catalog: catalog}
}

type bookRequest struct {
	EntityID string `json:"entityId" binding:"required"`
}

type rescheduleRequest struct {
	AppointmentID string `json:"appointmentId" binding:"required"`
}

type monthRequest struct {
	Delta int `json:"delta"`
}

type dayRequest struct {
	Day int `json:"day" binding:"required"`
}

type timeRequest struct {
	Time string `json:"time" binding:"required"`
}

// flowFor resolves the flow named by the :kind path segment.
func flowFor(c *gin.Context) (*booking.Flow, bool) {
	p, ok := sessionPortal(c)
	if !ok {
		return nil, false
	}
	kind, ok := kindParam(c)
	if !ok {
		return nil, false
	}
	f, err := p.Flow(kind)
	if err != nil {
		writeError(c, "Failed to open booking flow", err)
		return nil, false
	}
	return f, true
}

// Snapshot renders the flow.
func (h *BookingHandler) Snapshot(c *gin.Context) {
	f, ok := flowFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, f.Snapshot())
}

// Book starts a booking for a catalog entity.
func (h *BookingHandler) Book(c *gin.Context) {
	f, ok := flowFor(c)
	if !ok {
		return
	}
	var req bookRequest
	if !bindJSON(c, &req) {
		return
	}
	entity, found, err := catalogRepo.FindBookable(c.Request.Context(), h.Catalog, f.Kind(), req.EntityID)
	if err != nil {
		writeError(c, "Failed to load entity", err)
		return
	}
	if !found {
		utils.JSONError(c, http.StatusNotFound, "Entity not found", req.EntityID)
		return
	}
	if err := f.BookClick(entity); err != nil {
		writeError(c, "Failed to start booking", err)
		return
	}
	c.JSON(http.StatusOK, f.Snapshot())
}

// Reschedule reopens slot selection for an appointment on the session's board.
func (h *BookingHandler) Reschedule(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	f, ok := flowFor(c)
	if !ok {
		return
	}
	var req rescheduleRequest
	if !bindJSON(c, &req) {
		return
	}
	appt, found := p.Board.Find(req.AppointmentID)
	if !found {
		utils.JSONError(c, http.StatusNotFound, "Appointment not found", req.AppointmentID)
		return
	}
	if err := f.Reschedule(c.Request.Context(), appt); err != nil {
		writeError(c, "Failed to reschedule", err)
		return
	}
	c.JSON(http.StatusOK, f.Snapshot())
}

func (h *BookingHandler) ChangeMonth(c *gin.Context) {
	f, ok := flowFor(c)
	if !ok {
		return
	}
	var req monthRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := f.ChangeMonth(req.Delta); err != nil {
		writeError(c, "Failed to change month", err)
		return
	}
	c.JSON(http.StatusOK, f.Snapshot())
}

func (h *BookingHandler) SelectDay(c *gin.Context) {
	f, ok := flowFor(c)
	if !ok {
		return
	}
	var req dayRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := f.SelectDay(req.Day); err != nil {
		writeError(c, "Date not available", err)
		return
	}
	c.JSON(http.StatusOK, f.Snapshot())
}

func (h *BookingHandler) SelectTime(c *gin.Context) {
	f, ok := flowFor(c)
	if !ok {
		return
	}
	var req timeRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := f.SelectTime(req.Time); err != nil {
		writeError(c, "Time not available", err)
		return
	}
	c.JSON(http.StatusOK, f.Snapshot())
}

func (h *BookingHandler) SetDetails(c *gin.Context) {
	f, ok := flowFor(c)
	if !ok {
		return
	}
	var req booking.Details
	if !bindJSON(c, &req) {
		return
	}
	if err := f.SetDetails(req); err != nil {
		writeError(c, "Invalid details", err)
		return
	}
	c.JSON(http.StatusOK, f.Snapshot())
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	f, ok := flowFor(c)
	if !ok {
		return
	}
	summary, err := f.Confirm()
	if err != nil {
		writeError(c, "Booking incomplete", err)
		return
	}
	getLogger(c).Info("Booking confirmed", zap.String("kind", string(f.Kind())), zap.String("date", summary.Date))
	c.JSON(http.StatusOK, gin.H{"summary": summary, "flow": f.Snapshot()})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	f, ok := flowFor(c)
	if !ok {
		return
	}
	if err := f.Cancel(); err != nil {
		writeError(c, "Nothing to cancel", err)
		return
	}
	c.JSON(http.StatusOK, f.Snapshot())
}

// Finish returns to the dashboard. The flow is discarded with its appointment.
func (h *BookingHandler) Finish(c *gin.Context) {
	f, ok := flowFor(c)
	if !ok {
		return
	}
	appt, err := f.Finish()
	if err != nil {
		writeError(c, "Failed to finish booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}
