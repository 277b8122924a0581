package handlers

import (
	"net/http"

	"drepto/services/booking"
	"drepto/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentsHandler serves the practitioner appointment board.
type AppointmentsHandler struct{}

func NewAppointmentsHandler() *AppointmentsHandler {
	return &AppointmentsHandler{}
}

type tabRequest struct {
	Tab booking.BoardTab `json:"tab" binding:"required"`
}

type searchRequest struct {
	Query string `json:"query"`
}

type pageRequest struct {
	Page int `json:"page" binding:"required"`
}

func (h *AppointmentsHandler) View(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, p.Board.View())
}

func (h *AppointmentsHandler) Get(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	appt, found := p.Board.Find(c.Param("id"))
	if !found {
		utils.JSONError(c, http.StatusNotFound, "Appointment not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

func (h *AppointmentsHandler) SetTab(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	var req tabRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := p.Board.SetTab(req.Tab); err != nil {
		writeError(c, "Invalid tab", err)
		return
	}
	c.JSON(http.StatusOK, p.Board.View())
}

func (h *AppointmentsHandler) Search(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	var req searchRequest
	if !bindJSON(c, &req) {
		return
	}
	p.Board.SetSearch(req.Query)
	c.JSON(http.StatusOK, p.Board.View())
}

// ToggleDay sets the date filter, or clears it when the day is already selected.
func (h *AppointmentsHandler) ToggleDay(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	var req dayRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := p.Board.ToggleDay(req.Day); err != nil {
		writeError(c, "Invalid day", err)
		return
	}
	c.JSON(http.StatusOK, p.Board.View())
}

func (h *AppointmentsHandler) ClearDate(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	p.Board.ClearDate()
	c.JSON(http.StatusOK, p.Board.View())
}

func (h *AppointmentsHandler) ChangeMonth(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	var req monthRequest
	if !bindJSON(c, &req) {
		return
	}
	p.Board.ChangeMonth(req.Delta)
	c.JSON(http.StatusOK, p.Board.View())
}

func (h *AppointmentsHandler) SetPage(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	var req pageRequest
	if !bindJSON(c, &req) {
		return
	}
	p.Board.SetPage(req.Page)
	c.JSON(http.StatusOK, p.Board.View())
}
