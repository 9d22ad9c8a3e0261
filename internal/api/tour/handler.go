package tour

import (
	"net/http"
	"strconv"

	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/domain/catalog"
	"gallery-app/internal/domain/tour"
	"gallery-app/internal/domain/visits"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	catalog catalog.Catalog
	flags   *visits.Stores
	log     *zap.Logger
}

func NewHandler(c catalog.Catalog, flags *visits.Stores, log *zap.Logger) *Handler {
	return &Handler{catalog: c, flags: flags, log: log}
}

type StopResponse struct {
	Painting catalog.Painting `json:"painting"`
	Index    int              `json:"index"`
	Position int              `json:"position"`
	Total    int              `json:"total"`
	Prev     int              `json:"prev"`
	Next     int              `json:"next"`
}

// GET /virtual-gallery/instructions
func (h *Handler) Instructions(c *gin.Context) {
	visitor := c.GetString(middleware.CtxVisitorID)
	if visitor == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Visitor session missing"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"show": visits.ShowInstructions(h.flags.For(visitor))})
}

// GET /virtual-gallery/paintings/:index
func (h *Handler) Stop(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	paintings := h.catalog.All()
	cur, err := tour.New(idx, len(paintings))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, StopResponse{
		Painting: paintings[cur.Index],
		Index:    cur.Index,
		Position: cur.Position(),
		Total:    cur.Len,
		Prev:     cur.Prev().Index,
		Next:     cur.Next().Index,
	})
}
