package handlers

import (
	"net/http"

	"drepto/models"
	"drepto/services/booking"

	"github.com/gin-gonic/gin"
)

// PatientsHandler serves the doctor's patient register.
type PatientsHandler struct{}

func NewPatientsHandler() *PatientsHandler {
	return &PatientsHandler{}
}

func (h *PatientsHandler) View(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, p.Patients.View())
}

// Add registers a patient. A rejected field leaves the register unchanged.
func (h *PatientsHandler) Add(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	var req models.NewPatient
	if !bindJSON(c, &req) {
		return
	}
	patient, err := p.Patients.Add(req)
	if err != nil {
		writeError(c, "Invalid patient details", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"patient": patient, "register": p.Patients.View()})
}

func (h *PatientsHandler) Search(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	var req searchRequest
	if !bindJSON(c, &req) {
		return
	}
	p.Patients.SetSearch(req.Query)
	c.JSON(http.StatusOK, p.Patients.View())
}

func (h *PatientsHandler) SetPage(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	var req pageRequest
	if !bindJSON(c, &req) {
		return
	}
	p.Patients.SetPage(req.Page)
	c.JSON(http.StatusOK, p.Patients.View())
}

// TasksHandler serves the nurse's daily task list.
type TasksHandler struct{}

func NewTasksHandler() *TasksHandler {
	return &TasksHandler{}
}

type taskFilterRequest struct {
	Filter booking.TaskFilter `json:"filter" binding:"required"`
}

func (h *TasksHandler) View(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, p.Tasks.View())
}

func (h *TasksHandler) Add(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	var req models.NewShiftTask
	if !bindJSON(c, &req) {
		return
	}
	task, err := p.Tasks.Add(req)
	if err != nil {
		writeError(c, "Invalid task details", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": task, "tasks": p.Tasks.View()})
}

func (h *TasksHandler) Toggle(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	if _, err := p.Tasks.Toggle(c.Param("id")); err != nil {
		writeError(c, "Failed to update task", err)
		return
	}
	c.JSON(http.StatusOK, p.Tasks.View())
}

func (h *TasksHandler) SetFilter(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	var req taskFilterRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := p.Tasks.SetFilter(req.Filter); err != nil {
		writeError(c, "Invalid filter", err)
		return
	}
	c.JSON(http.StatusOK, p.Tasks.View())
}
