package inquiries

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gallery-app/internal/domain/catalog"
	"gallery-app/internal/domain/inquiry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	catalog  catalog.Catalog
	store    inquiry.Store
	notifier inquiry.Notifier
	log      *zap.Logger
}

func NewHandler(c catalog.Catalog, store inquiry.Store, notifier inquiry.Notifier, log *zap.Logger) *Handler {
	if notifier == nil {
		notifier = inquiry.NopNotifier{}
	}
	return &Handler{catalog: c, store: store, notifier: notifier, log: log}
}

// SubmitRequest covers both the detail page form (painting_id) and the
// selection checkout hand-off (painting_ids).
type SubmitRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone"`
	Message     string   `json:"message" binding:"required"`
	PaintingID  string   `json:"painting_id"`
	PaintingIDs []string `json:"painting_ids"`
}

func (r SubmitRequest) ids() []string {
	seen := make(map[string]bool)
	var out []string
	for _, id := range append([]string{r.PaintingID}, r.PaintingIDs...) {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// POST /inquiries
func (h *Handler) Submit(c *gin.Context) {
	var input SubmitRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids := input.ids()
	titles := make([]string, 0, len(ids))
	for _, id := range ids {
		p, ok := h.catalog.ByID(id)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown painting", "painting_id": id})
			return
		}
		if p.Sold {
			c.JSON(http.StatusConflict, gin.H{"error": "Cette œuvre a déjà été vendue", "painting_id": id})
			return
		}
		titles = append(titles, p.Title)
	}

	rec := inquiry.Record{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Message:      input.Message,
		PaintingName: strings.Join(titles, ", "),
		PaintingIDs:  ids,
	}

	ack, err := h.store.Submit(c.Request.Context(), rec)
	if err != nil {
		h.log.Error("inquiry submit failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save inquiry", "details": err.Error()})
		return
	}

	cr := inquiry.NewContactRequest(rec, ack.Reference, ack.CreatedAt)
	cr.ID = ack.ID
	cr.Status = ack.Status
	if err := h.notifier.NotifyInquiry(c.Request.Context(), cr); err != nil {
		h.log.Warn("inquiry notification failed",
			zap.Uint("id", ack.ID),
			zap.Error(err),
		)
	}

	h.log.Info("inquiry received",
		zap.Uint("id", ack.ID),
		zap.String("reference", ack.Reference),
		zap.Strings("paintings", ids),
	)

	c.JSON(http.StatusCreated, ack)
}

// GET /admin/inquiries?status=new
func (h *Handler) List(c *gin.Context) {
	status := inquiry.Status(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	list, err := h.store.List(c.Request.Context(), status)
	if err != nil {
		h.log.Error("inquiry list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inquiries", "details": err.Error()})
		return
	}
	if list == nil {
		list = []inquiry.ContactRequest{}
	}

	c.JSON(http.StatusOK, gin.H{"inquiries": list, "count": len(list)})
}

// GET /admin/inquiries/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inquiry id"})
		return
	}

	cr, err := h.store.Get(c.Request.Context(), uint(id))
	switch {
	case errors.Is(err, inquiry.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	case err != nil:
		h.log.Error("inquiry load failed", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inquiry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cr)
}

// PUT /admin/inquiries/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inquiry id"})
		return
	}

	var body struct {
		Status inquiry.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.store.UpdateStatus(c.Request.Context(), uint(id), body.Status)
	switch {
	case errors.Is(err, inquiry.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	case errors.Is(err, inquiry.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	case err != nil:
		h.log.Error("inquiry status update failed", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inquiry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": body.Status})
}
