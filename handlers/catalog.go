package handlers

import (
	"net/http"
	"strconv"

	catalogRepo "drepto/database/repository/catalog"
	"drepto/models"
	"drepto/services/booking"
	"drepto/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves listing pages and the reference lists behind them.
type CatalogHandler struct {
	Catalog catalogRepo.CatalogRepository
}

func NewCatalogHandler(catalog catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

// kindParam reads the :kind path segment, aborting with 404 when it is unknown.
func kindParam(c *gin.Context) (models.BookableKind, bool) {
	kind := models.BookableKind(c.Param("kind"))
	if !kind.Valid() {
		utils.JSONError(c, http.StatusNotFound, "Unknown catalog", "no bookables of kind "+string(kind))
		return "", false
	}
	return kind, true
}

// Listing applies the query filter to the session's listing of :kind. The
// page query moves within the filtered results; without it a changed filter
// starts at page 1 and an unchanged one stays put.
func (h *CatalogHandler) Listing(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	var filter booking.ListingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	page := 0
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid page", err.Error())
			return
		}
		page = n
	}

	var current booking.ListingPage
	err := p.WithListing(c.Request.Context(), kind, func(l *booking.Listing) error {
		if err := l.SetFilter(filter); err != nil {
			return err
		}
		if page != 0 {
			l.SetPage(page)
		}
		current = l.Current()
		return nil
	})
	if err != nil {
		writeError(c, "Failed to load listing", err)
		return
	}
	c.JSON(http.StatusOK, current)
}

func (h *CatalogHandler) Cities(c *gin.Context) {
	cities, err := h.Catalog.Cities(c.Request.Context())
	if err != nil {
		writeError(c, "Failed to load cities", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

func (h *CatalogHandler) Products(c *gin.Context) {
	products, err := h.Catalog.Products(c.Request.Context())
	if err != nil {
		writeError(c, "Failed to load products", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}
