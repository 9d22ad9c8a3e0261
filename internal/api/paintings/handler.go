package paintings

import (
	"net/http"

	"gallery-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const listingPath = "/gallery"

type Handler struct {
	catalog catalog.Catalog
	log     *zap.Logger
}

func NewHandler(c catalog.Catalog, log *zap.Logger) *Handler {
	return &Handler{catalog: c, log: log}
}

// GET /paintings
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	criteria := q.Criteria()
	if err := criteria.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out := catalog.Apply(h.catalog.All(), criteria)
	h.log.Debug("paintings filtered",
		zap.String("query", criteria.Query),
		zap.String("medium", criteria.Medium),
		zap.String("price_range", string(criteria.PriceRange)),
		zap.String("availability", string(criteria.Availability)),
		zap.Int("count", len(out)),
	)

	c.JSON(http.StatusOK, ListResponse{Paintings: out, Count: len(out), Criteria: criteria})
}

// GET /paintings/featured
func (h *Handler) Featured(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"paintings": h.catalog.Featured()})
}

// GET /paintings/mediums
func (h *Handler) Mediums(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mediums": h.catalog.Mediums()})
}

// GET /paintings/:id
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")

	d, ok := catalog.Resolve(h.catalog.All(), id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found", "redirect": listingPath})
		return
	}

	c.JSON(http.StatusOK, DetailResponse{
		Painting:       d.Painting,
		Related:        d.Related,
		InquiryMessage: catalog.InquiryMessage(d.Painting),
	})
}
