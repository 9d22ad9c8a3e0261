package tour

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/domain/catalog"
	"gallery-app/internal/domain/visits"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouter(c catalog.Catalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(c, visits.NewStores(), zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxVisitorID, c.GetHeader("X-Visitor"))
		c.Next()
	})
	r.GET("/virtual-gallery/instructions", h.Instructions)
	r.GET("/virtual-gallery/paintings/:index", h.Stop)
	return r
}

func get(r *gin.Engine, url, visitor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("X-Visitor", visitor)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInstructions_FirstVisitOnly(t *testing.T) {
	r := newRouter(catalog.NewSeeded())

	var resp struct {
		Show bool `json:"show"`
	}
	require.NoError(t, json.Unmarshal(get(r, "/virtual-gallery/instructions", "v").Body.Bytes(), &resp))
	assert.True(t, resp.Show)

	require.NoError(t, json.Unmarshal(get(r, "/virtual-gallery/instructions", "v").Body.Bytes(), &resp))
	assert.False(t, resp.Show)

	require.NoError(t, json.Unmarshal(get(r, "/virtual-gallery/instructions", "other").Body.Bytes(), &resp))
	assert.True(t, resp.Show)

	assert.Equal(t, http.StatusBadRequest, get(r, "/virtual-gallery/instructions", "").Code)
}

func TestStop_WrapsAround(t *testing.T) {
	r := newRouter(catalog.NewSeeded())

	w := get(r, "/virtual-gallery/paintings/0", "v")
	require.Equal(t, http.StatusOK, w.Code)
	var stop StopResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stop))
	assert.Equal(t, "1", stop.Painting.ID)
	assert.Equal(t, 1, stop.Position)
	assert.Equal(t, 6, stop.Total)
	assert.Equal(t, 5, stop.Prev)
	assert.Equal(t, 1, stop.Next)

	w = get(r, "/virtual-gallery/paintings/6", "v")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stop))
	assert.Equal(t, 0, stop.Index)
}

func TestStop_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, get(newRouter(catalog.NewSeeded()), "/virtual-gallery/paintings/abc", "v").Code)
	assert.Equal(t, http.StatusNotFound, get(newRouter(catalog.New(nil)), "/virtual-gallery/paintings/0", "v").Code)
}
