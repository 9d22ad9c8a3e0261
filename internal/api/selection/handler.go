package selection

import (
	"net/http"

	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/domain/catalog"
	"gallery-app/internal/domain/selection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	catalog catalog.Catalog
	carts   *selection.Registry
	log     *zap.Logger
}

func NewHandler(c catalog.Catalog, carts *selection.Registry, log *zap.Logger) *Handler {
	return &Handler{catalog: c, carts: carts, log: log}
}

type CartResponse struct {
	Items []catalog.Painting `json:"items"`
	Count int                `json:"count"`
	Total float64            `json:"total"`
}

type CheckoutResponse struct {
	PaintingIDs []string `json:"painting_ids"`
	ContactURL  string   `json:"contact_url"`
	Total       float64  `json:"total"`
}

func toCartResponse(cart selection.Cart) CartResponse {
	return CartResponse{Items: cart.Items(), Count: cart.Len(), Total: selection.Total(cart)}
}

func visitorID(c *gin.Context) (string, bool) {
	id := c.GetString(middleware.CtxVisitorID)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Visitor session missing"})
		return "", false
	}
	return id, true
}

// GET /selection
func (h *Handler) Get(c *gin.Context) {
	visitor, ok := visitorID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toCartResponse(h.carts.Get(visitor)))
}

// POST /selection/:id
// Sold paintings are never added; the answer says so with added=false.
func (h *Handler) Add(c *gin.Context) {
	visitor, ok := visitorID(c)
	if !ok {
		return
	}

	p, found := h.catalog.ByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		return
	}

	cart, added := h.carts.Add(visitor, p)

	h.log.Debug("selection add",
		zap.String("visitor", visitor),
		zap.String("painting", p.ID),
		zap.Bool("added", added),
	)

	c.JSON(http.StatusOK, gin.H{
		"added": added,
		"cart":  toCartResponse(cart),
	})
}

// DELETE /selection/:id
func (h *Handler) Remove(c *gin.Context) {
	visitor, ok := visitorID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toCartResponse(h.carts.Remove(visitor, c.Param("id"))))
}

// POST /selection/checkout
// The cart is kept; the client clears it once the inquiry is sent.
func (h *Handler) Checkout(c *gin.Context) {
	visitor, ok := visitorID(c)
	if !ok {
		return
	}

	cart := h.carts.Get(visitor)
	req := selection.Checkout(cart)

	c.JSON(http.StatusOK, CheckoutResponse{
		PaintingIDs: req.PaintingIDs,
		ContactURL:  req.ContactURL(),
		Total:       selection.Total(cart),
	})
}

// DELETE /selection
func (h *Handler) Clear(c *gin.Context) {
	visitor, ok := visitorID(c)
	if !ok {
		return
	}
	h.carts.Clear(visitor)
	c.JSON(http.StatusOK, toCartResponse(selection.Cart{}))
}
