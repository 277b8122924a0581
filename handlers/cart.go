package handlers

import (
	"net/http"
	"strconv"
	"time"

	catalogRepo "drepto/database/repository/catalog"
	"drepto/models"
	"drepto/services/cart"
	"drepto/services/portal"
	"drepto/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler serves the cart drawer, quick add and the medicines page add path.
type CartHandler struct {
	Catalog catalogRepo.CatalogRepository
	Now     func() time.Time
}

func NewCartHandler(catalog catalogRepo.CatalogRepository, now func() time.Time) *CartHandler {
	if now == nil {
		now = time.Now
	}
	return &CartHandler{Catalog: catalog, Now: now}
}

// CartView is the cart as the drawer shows it.
type CartView struct {
	Items      []models.CartItem `json:"items"`
	Count      int               `json:"count"`
	Total      float64           `json:"total"`
	TotalLabel string            `json:"totalLabel"`
}

type quickAddRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

func cartView(p *portal.Portal) CartView {
	items := p.Cart.Items()
	if items == nil {
		items = []models.CartItem{}
	}
	total := cart.Total(items)
	return CartView{Items: items, Count: len(items), Total: total, TotalLabel: utils.FormatINR(total)}
}

func (h *CartHandler) View(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cartView(p))
}

// AddItem appends a line as given by the client.
func (h *CartHandler) AddItem(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	var item models.CartItem
	if !bindJSON(c, &item) {
		return
	}
	if err := p.Cart.Add(c.Request.Context(), item); err != nil {
		writeError(c, "Failed to add to cart", err)
		return
	}
	c.JSON(http.StatusOK, cartView(p))
}

// RemoveItem removes the line at :index.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid index", err.Error())
		return
	}
	if err := p.Cart.Remove(c.Request.Context(), index); err != nil {
		writeError(c, "Failed to remove from cart", err)
		return
	}
	c.JSON(http.StatusOK, cartView(p))
}

// QuickAdd validates a manually typed medicine and appends it.
func (h *CartHandler) QuickAdd(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	var req quickAddRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := cart.NewQuickAddItem(req.Name, req.Price, h.Now())
	if err != nil {
		writeError(c, "Invalid medicine", err)
		return
	}
	if err := p.Cart.Add(c.Request.Context(), item); err != nil {
		writeError(c, "Failed to add to cart", err)
		return
	}
	c.JSON(http.StatusOK, cartView(p))
}

// AddProduct adds a pharmacy product by id through the stored cart, the way
// the medicines page does; the open cart refreshes from the update event.
func (h *CartHandler) AddProduct(c *gin.Context) {
	p, ok := sessionPortal(c)
	if !ok {
		return
	}
	products, err := h.Catalog.Products(c.Request.Context())
	if err != nil {
		writeError(c, "Failed to load products", err)
		return
	}
	id := c.Param("id")
	for _, prod := range products {
		if strconv.Itoa(prod.ID) != id {
			continue
		}
		if err := p.AddToCartFromCatalog(c.Request.Context(), prod.AsCartItem()); err != nil {
			writeError(c, "Failed to add to cart", err)
			return
		}
		getLogger(c).Debug("Product added to cart", zap.String("productID", id))
		c.JSON(http.StatusOK, cartView(p))
		return
	}
	utils.JSONError(c, http.StatusNotFound, "Product not found", id)
}
