package admin

import (
	"net/http"
	"time"

	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/domain/admin"
	"gallery-app/internal/domain/inquiry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	workspaces *admin.Workspaces
	inquiries  inquiry.Store
	now        func() time.Time
	log        *zap.Logger
}

func NewHandler(ws *admin.Workspaces, inquiries inquiry.Store, log *zap.Logger) *Handler {
	return &Handler{workspaces: ws, inquiries: inquiries, now: time.Now, log: log}
}

type DashboardStats struct {
	TotalPaintings int                    `json:"total_paintings"`
	Featured       int                    `json:"featured"`
	Sold           int                    `json:"sold"`
	CatalogValue   float64                `json:"catalog_value"`
	Inquiries      map[inquiry.Status]int `json:"inquiries"`
}

func (h *Handler) workspace(c *gin.Context) (*admin.Workspace, bool) {
	owner := c.GetString(middleware.CtxEmail)
	if owner == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return h.workspaces.For(owner), true
}

func (h *Handler) bindFields(c *gin.Context) (admin.Fields, bool) {
	var f admin.Fields
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return admin.Fields{}, false
	}
	if err := f.Validate(h.now()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return admin.Fields{}, false
	}
	return f, true
}

// GET /admin/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}

	var stats DashboardStats
	for _, p := range ws.List() {
		stats.TotalPaintings++
		if p.Featured {
			stats.Featured++
		}
		if p.Sold {
			stats.Sold++
		} else {
			stats.CatalogValue += p.Price
		}
	}

	stats.Inquiries = map[inquiry.Status]int{
		inquiry.StatusNew:       0,
		inquiry.StatusContacted: 0,
		inquiry.StatusCompleted: 0,
	}
	all, err := h.inquiries.List(c.Request.Context(), "")
	if err != nil {
		h.log.Error("dashboard inquiries failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inquiries", "details": err.Error()})
		return
	}
	for _, cr := range all {
		stats.Inquiries[cr.Status]++
	}

	c.JSON(http.StatusOK, stats)
}

// GET /admin/paintings
func (h *Handler) ListPaintings(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	list := ws.List()
	c.JSON(http.StatusOK, gin.H{"paintings": list, "count": len(list)})
}

// GET /admin/paintings/:id
func (h *Handler) GetPainting(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	p, found := ws.Get(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"painting": p, "fields": admin.FieldsOf(p)})
}

// POST /admin/paintings
func (h *Handler) CreatePainting(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	f, ok := h.bindFields(c)
	if !ok {
		return
	}

	p := ws.Create(f)
	h.log.Info("painting created",
		zap.String("owner", c.GetString(middleware.CtxEmail)),
		zap.String("id", p.ID),
	)
	c.JSON(http.StatusCreated, p)
}

// PUT /admin/paintings/:id
func (h *Handler) UpdatePainting(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	f, ok := h.bindFields(c)
	if !ok {
		return
	}

	p, found := ws.Update(c.Param("id"), f)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /admin/paintings/:id
func (h *Handler) DeletePainting(c *gin.Context) {
	ws, ok := h.workspace(c)
	if !ok {
		return
	}
	if !ws.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Painting not found"})
		return
	}
	h.log.Info("painting deleted",
		zap.String("owner", c.GetString(middleware.CtxEmail)),
		zap.String("id", c.Param("id")),
	)
	c.JSON(http.StatusOK, gin.H{"message": "Painting deleted"})
}

// POST /admin/paintings/reset
// Discards the caller's edits; the next request starts from the seed catalog.
func (h *Handler) ResetPaintings(c *gin.Context) {
	owner := c.GetString(middleware.CtxEmail)
	if owner == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	h.workspaces.Reset(owner)
	list := h.workspaces.For(owner).List()
	c.JSON(http.StatusOK, gin.H{"paintings": list, "count": len(list)})
}
