package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReminderHandler serves the upcoming-appointment toast and banner.
type ReminderHandler struct{}

func NewReminderHandler() *ReminderHandler {
	return &ReminderHandler{}
}

func (h *ReminderHandler) State(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, p.Reminder.State())
}

func (h *ReminderHandler) Dismiss(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	if err := p.Reminder.Dismiss(); err != nil {
		writeError(c, "No reminder to dismiss", err)
		return
	}
	c.JSON(http.StatusOK, p.Reminder.State())
}

// ViewDetails closes the toast and returns the notification, whose data points
// the shell at the appointments tab.
func (h *ReminderHandler) ViewDetails(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	n, err := p.Reminder.ViewDetails()
	if err != nil {
		writeError(c, "No reminder to view", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": n, "reminder": p.Reminder.State()})
}

func (h *ReminderHandler) DismissBanner(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	p.Reminder.DismissBanner()
	c.JSON(http.StatusOK, p.Reminder.State())
}
