package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tattoo-studio/internal/domains/tattoorequest/model"
	"tattoo-studio/internal/domains/tattoorequest/service"
	"tattoo-studio/internal/shared/middleware"
)

type stubService struct {
	gotClient uuid.UUID
	gotReq    model.CreateRequest
	gotUpload *model.Upload
	createErr error
	detail    *model.TattooRequestDetail
}

func (s *stubService) Create(_ context.Context, clientID uuid.UUID, req model.CreateRequest, upload *model.Upload) (*model.TattooRequestResponse, error) {
	s.gotClient, s.gotReq, s.gotUpload = clientID, req, upload
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &model.TattooRequestResponse{ID: uuid.New(), Title: req.Title, Status: model.StatusSubmitted}, nil
}

func (s *stubService) GetDetail(_ context.Context, clientID, id uuid.UUID) (*model.TattooRequestDetail, error) {
	if s.detail == nil || s.detail.ID != id || clientID != s.gotClient {
		return nil, model.ErrTattooRequestNotFound
	}
	return s.detail, nil
}

func (s *stubService) ListRecent(context.Context, uuid.UUID, int) ([]model.TattooRequestResponse, error) {
	return nil, nil
}
func (s *stubService) CountForClient(context.Context, uuid.UUID) (int, error) { return 0, nil }
func (s *stubService) ListApproved(context.Context, uuid.UUID) ([]model.TattooRequestResponse, error) {
	return nil, nil
}
func (s *stubService) GetApproved(context.Context, uuid.UUID, uuid.UUID) (*model.TattooRequestResponse, error) {
	return nil, model.ErrTattooRequestNotFound
}
func (s *stubService) ProcessReferenceImage(context.Context, uuid.UUID) error { return nil }
func (s *stubService) BackfillThumbnails(context.Context, int) (int, error)   { return 0, nil }

// compile-time check: stub phải theo kịp ServiceInterface
var _ service.ServiceInterface = (*stubService)(nil)

func setupRouter(svc *stubService, caller uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTattooRequestHandler(svc)
	authed := r.Group("/", func(c *gin.Context) {
		if caller != uuid.Nil {
			c.Set(middleware.UserIDKey, caller)
		}
		c.Next()
	})
	authed.POST("/requests/new/", h.Create)
	authed.GET("/requests/:id/", h.Detail)
	return r
}

func TestCreate_JSONIgnoresStatusField(t *testing.T) {
	caller := uuid.New()
	svc := &stubService{}
	r := setupRouter(svc, caller)

	body := `{"title":"Koi sleeve","description":"Full koi sleeve with waves and maple leaves","status":"approved"}`
	req := httptest.NewRequest(http.MethodPost, "/requests/new/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, caller, svc.gotClient)
	assert.Equal(t, "Koi sleeve", svc.gotReq.Title)
	assert.Nil(t, svc.gotUpload)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/requests/"))

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.MsgCreated, resp.Message)
	assert.Equal(t, "submitted", resp.Data.Status)
}

func TestCreate_MultipartPassesUpload(t *testing.T) {
	svc := &stubService{}
	r := setupRouter(svc, uuid.New())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Rose on wrist"))
	require.NoError(t, mw.WriteField("description", "Small fine-line rose on the inner wrist"))
	fw, err := mw.CreateFormFile("reference_image", "rose.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/requests/new/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.gotUpload)
	assert.Equal(t, "rose.png", svc.gotUpload.Filename)
	assert.Equal(t, []byte("fake-bytes"), svc.gotUpload.Data)
	assert.Equal(t, "Rose on wrist", svc.gotReq.Title)
}

func TestCreate_ValidationErrors(t *testing.T) {
	svc := &stubService{createErr: validation.Errors{"title": validation.NewError("x", "Title must be at least 5 characters long.")}}
	r := setupRouter(svc, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/requests/new/", strings.NewReader(`{"title":"Koi"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title must be at least 5 characters long.")
}

func TestCreate_Unauthenticated(t *testing.T) {
	r := setupRouter(&stubService{}, uuid.Nil)

	req := httptest.NewRequest(http.MethodPost, "/requests/new/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDetail_NotFoundCases(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()
	svc := &stubService{gotClient: owner, detail: &model.TattooRequestDetail{TattooRequestResponse: model.TattooRequestResponse{ID: id}}}

	cases := []struct {
		name   string
		caller uuid.UUID
		path   string
		want   int
	}{
		{"owner", owner, "/requests/" + id.String() + "/", http.StatusOK},
		{"other client", uuid.New(), "/requests/" + id.String() + "/", http.StatusNotFound},
		{"bad id", owner, "/requests/42/", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouter(svc, tc.caller)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
