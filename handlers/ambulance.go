package handlers

import (
	"net/http"

	"drepto/models"
	"drepto/services/portal"

	"github.com/gin-gonic/gin"
)

// AmbulanceHandler serves the ambulance request screen.
type AmbulanceHandler struct{}

func NewAmbulanceHandler() *AmbulanceHandler {
	return &AmbulanceHandler{}
}

// AmbulanceView pairs the request with the vehicle types of its mode.
type AmbulanceView struct {
	Request models.AmbulanceRequest `json:"request"`
	Tiers   []models.AmbulanceTier  `json:"tiers"`
}

type modeRequest struct {
	Mode models.AmbulanceMode `json:"mode" binding:"required"`
}

type tierRequest struct {
	TierID string `json:"tierId" binding:"required"`
}

type locationsRequest struct {
	Pickup  string `json:"pickup"`
	Dropoff string `json:"dropoff"`
}

func ambulanceAction(c *gin.Context, message string, op func(p *portal.Portal) error) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	if err := op(p); err != nil {
		writeError(c, message, err)
		return
	}
	c.JSON(http.StatusOK, AmbulanceView{Request: p.Ambulance.State(), Tiers: p.Ambulance.Tiers()})
}

func (h *AmbulanceHandler) State(c *gin.Context) {
	ambulanceAction(c, "", func(*portal.Portal) error { return nil })
}

func (h *AmbulanceHandler) SetMode(c *gin.Context) {
	var req modeRequest
	if !bindJSON(c, &req) {
		return
	}
	ambulanceAction(c, "Cannot change mode", func(p *portal.Portal) error {
		return p.Ambulance.SetMode(req.Mode)
	})
}

func (h *AmbulanceHandler) SelectTier(c *gin.Context) {
	var req tierRequest
	if !bindJSON(c, &req) {
		return
	}
	ambulanceAction(c, "Cannot select vehicle", func(p *portal.Portal) error {
		return p.Ambulance.SelectTier(req.TierID)
	})
}

func (h *AmbulanceHandler) SetLocations(c *gin.Context) {
	var req locationsRequest
	if !bindJSON(c, &req) {
		return
	}
	ambulanceAction(c, "Cannot update locations", func(p *portal.Portal) error {
		return p.Ambulance.SetLocations(req.Pickup, req.Dropoff)
	})
}

// Request starts the search; the request reaches tracking after the search delay.
func (h *AmbulanceHandler) Request(c *gin.Context) {
	ambulanceAction(c, "Cannot request ambulance", func(p *portal.Portal) error {
		return p.Ambulance.Request()
	})
}

func (h *AmbulanceHandler) Cancel(c *gin.Context) {
	ambulanceAction(c, "Cannot cancel request", func(p *portal.Portal) error {
		return p.Ambulance.Cancel()
	})
}
