package inquiries

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gallery-app/internal/domain/catalog"
	"gallery-app/internal/domain/inquiry"
	"gallery-app/internal/domain/inquiry/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouter(store inquiry.Store, notifier inquiry.Notifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(catalog.NewSeeded(), store, notifier, zap.NewNop())

	r := gin.New()
	r.POST("/inquiries", h.Submit)
	r.GET("/admin/inquiries", h.List)
	r.GET("/admin/inquiries/:id", h.Get)
	r.PUT("/admin/inquiries/:id/status", h.UpdateStatus)
	return r
}

func doJSON(r *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validRequest() SubmitRequest {
	return SubmitRequest{
		Name:    "Marie Dubois",
		Email:   "marie@example.com",
		Message: "Bonjour",
	}
}

func TestSubmit_StoresAndNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec inquiry.Record) (inquiry.Ack, error) {
			assert.Equal(t, []string{"2", "6"}, rec.PaintingIDs)
			assert.Equal(t, "Vue Montagnarde, Côte Sauvage", rec.PaintingName)
			return inquiry.Ack{ID: 7, Reference: "ref-7", Status: inquiry.StatusNew, CreatedAt: created}, nil
		})
	notifier.EXPECT().
		NotifyInquiry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cr inquiry.ContactRequest) error {
			assert.Equal(t, uint(7), cr.ID)
			assert.Equal(t, "2,6", cr.PaintingIDs)
			return nil
		})

	req := validRequest()
	req.PaintingIDs = []string{"2", "6", "2"}
	w := doJSON(newRouter(store, notifier), http.MethodPost, "/inquiries", req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var ack inquiry.Ack
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
	assert.Equal(t, uint(7), ack.ID)
	assert.Equal(t, "ref-7", ack.Reference)
}

func TestSubmit_NotificationFailureDoesNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	store.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(inquiry.Ack{ID: 1}, nil)
	notifier.EXPECT().NotifyInquiry(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	req := validRequest()
	req.PaintingID = "1"
	w := doJSON(newRouter(store, notifier), http.MethodPost, "/inquiries", req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSubmit_Rejections(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no calls expected on either mock
	r := newRouter(mocks.NewMockStore(ctrl), mocks.NewMockNotifier(ctrl))

	sold := validRequest()
	sold.PaintingID = "4"
	w := doJSON(r, http.MethodPost, "/inquiries", sold)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "déjà été vendue")

	unknown := validRequest()
	unknown.PaintingIDs = []string{"1", "99"}
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPost, "/inquiries", unknown).Code)

	badEmail := validRequest()
	badEmail.Email = "not-an-email"
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPost, "/inquiries", badEmail).Code)
}

func TestSubmit_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(inquiry.Ack{}, errors.New("db down"))

	w := doJSON(newRouter(store, mocks.NewMockNotifier(ctrl)), http.MethodPost, "/inquiries", validRequest())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().List(gomock.Any(), inquiry.StatusContacted).Return([]inquiry.ContactRequest{{ID: 3, Status: inquiry.StatusContacted}}, nil)
	store.EXPECT().List(gomock.Any(), inquiry.Status("")).Return(nil, nil)

	r := newRouter(store, inquiry.NopNotifier{})

	w := doJSON(r, http.MethodGet, "/admin/inquiries?status=contacted", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Inquiries []inquiry.ContactRequest `json:"inquiries"`
		Count     int                      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, uint(3), resp.Inquiries[0].ID)

	w = doJSON(r, http.MethodGet, "/admin/inquiries", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"inquiries":[],"count":0}`, w.Body.String())

	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodGet, "/admin/inquiries?status=archived", nil).Code)
}

func TestUpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().UpdateStatus(gomock.Any(), uint(2), inquiry.StatusCompleted).Return(nil)
	store.EXPECT().UpdateStatus(gomock.Any(), uint(9), inquiry.StatusCompleted).Return(inquiry.ErrNotFound)
	store.EXPECT().UpdateStatus(gomock.Any(), uint(2), inquiry.Status("lost")).Return(inquiry.ErrInvalidStatus)

	r := newRouter(store, inquiry.NopNotifier{})
	body := gin.H{"status": "completed"}

	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodPut, "/admin/inquiries/2/status", body).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodPut, "/admin/inquiries/9/status", body).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPut, "/admin/inquiries/2/status", gin.H{"status": "lost"}).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPut, "/admin/inquiries/abc/status", body).Code)
}

func TestGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	name := "Vue Montagnarde"
	store.EXPECT().Get(gomock.Any(), uint(4)).Return(inquiry.ContactRequest{ID: 4, Name: "Anne", PaintingName: &name, Status: inquiry.StatusNew}, nil)
	store.EXPECT().Get(gomock.Any(), uint(5)).Return(inquiry.ContactRequest{}, inquiry.ErrNotFound)
	store.EXPECT().Get(gomock.Any(), uint(6)).Return(inquiry.ContactRequest{}, errors.New("db down"))

	r := newRouter(store, inquiry.NopNotifier{})

	w := doJSON(r, http.MethodGet, "/admin/inquiries/4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cr inquiry.ContactRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cr))
	assert.Equal(t, uint(4), cr.ID)
	require.NotNil(t, cr.PaintingName)
	assert.Equal(t, name, *cr.PaintingName)

	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodGet, "/admin/inquiries/5", nil).Code)
	assert.Equal(t, http.StatusInternalServerError, doJSON(r, http.MethodGet, "/admin/inquiries/6", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodGet, "/admin/inquiries/x", nil).Code)
}
