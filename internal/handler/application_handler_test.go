package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealership/internal/model"
	"dealership/internal/service"
	"dealership/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubApplicationService lets each test pin the behavior of a single method.
type stubApplicationService struct {
	createFn       func(ctx context.Context, req service.CreateApplicationRequest, actorID string) (*model.Application, error)
	getByIDFn      func(ctx context.Context, id string) (*model.Application, error)
	updateStatusFn func(ctx context.Context, id string, req service.UpdateStatusRequest, actorID string) (*model.Application, error)
}

func (s *stubApplicationService) Create(ctx context.Context, req service.CreateApplicationRequest, actorID string) (*model.Application, error) {
	return s.createFn(ctx, req, actorID)
}

func (s *stubApplicationService) GetByID(ctx context.Context, id string) (*model.Application, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubApplicationService) GetByTrackingID(ctx context.Context, trackingID string) (*model.Application, error) {
	return nil, apperror.New(apperror.NotFound, "application not found")
}

func (s *stubApplicationService) List(ctx context.Context, skip, limit int) ([]model.Application, int64, error) {
	return []model.Application{}, 0, nil
}

func (s *stubApplicationService) StatusHistory(ctx context.Context, id string) ([]model.StatusUpdate, error) {
	return []model.StatusUpdate{}, nil
}

func (s *stubApplicationService) UpdateStatus(ctx context.Context, id string, req service.UpdateStatusRequest, actorID string) (*model.Application, error) {
	return s.updateStatusFn(ctx, id, req, actorID)
}

func newApplicationRouter(svc service.ApplicationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewApplicationHandler(svc).RegisterRoutes(router.Group(""))
	return router
}

func validApplicationBody() map[string]interface{} {
	return map[string]interface{}{
		"firstName":       "A",
		"lastName":        "B",
		"email":           "a@b.com",
		"phone":           "9999999999",
		"businessName":    "X",
		"businessType":    "retail",
		"panNumber":       "ABCDE1234F",
		"yearsInBusiness": 2,
		"address":         "12 MG Road",
		"city":            "C",
		"state":           "S",
		"pincode":         "000000",
		"area":            "Z",
	}
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateApplicationReturns201Envelope(t *testing.T) {
	svc := &stubApplicationService{
		createFn: func(ctx context.Context, req service.CreateApplicationRequest, actorID string) (*model.Application, error) {
			return &model.Application{ID: uuid.New(), TrackingID: "1A2B3C4D", Status: model.StatusSubmitted}, nil
		},
	}
	router := newApplicationRouter(svc)

	w := doJSON(router, http.MethodPost, "/applications", validApplicationBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Status string `json:"status"`
		Data   struct {
			TrackingID string `json:"trackingId"`
			Status     string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "success", envelope.Status)
	assert.Equal(t, "1A2B3C4D", envelope.Data.TrackingID)
	assert.Equal(t, model.StatusSubmitted, envelope.Data.Status)
}

func TestCreateApplicationRejectsMissingFields(t *testing.T) {
	svc := &stubApplicationService{
		createFn: func(ctx context.Context, req service.CreateApplicationRequest, actorID string) (*model.Application, error) {
			t.Fatal("service must not be called for an invalid payload")
			return nil, nil
		},
	}
	router := newApplicationRouter(svc)

	body := validApplicationBody()
	delete(body, "panNumber")
	w := doJSON(router, http.MethodPost, "/applications", body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetApplicationNotFoundMapsTo404(t *testing.T) {
	svc := &stubApplicationService{
		getByIDFn: func(ctx context.Context, id string) (*model.Application, error) {
			return nil, apperror.New(apperror.NotFound, "application not found")
		},
	}
	router := newApplicationRouter(svc)

	w := doJSON(router, http.MethodGet, "/applications/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var envelope struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.Contains(t, envelope.Error, "not found")
}

func TestUpdateStatusIllegalTransitionMapsTo400(t *testing.T) {
	svc := &stubApplicationService{
		updateStatusFn: func(ctx context.Context, id string, req service.UpdateStatusRequest, actorID string) (*model.Application, error) {
			return nil, apperror.New(apperror.PreconditionFailed, "cannot transition from SUBMITTED to APPROVED")
		},
	}
	router := newApplicationRouter(svc)

	w := doJSON(router, http.MethodPatch, "/applications/"+uuid.NewString(), map[string]interface{}{
		"status": model.StatusApproved,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusRequiresStatusField(t *testing.T) {
	svc := &stubApplicationService{
		updateStatusFn: func(ctx context.Context, id string, req service.UpdateStatusRequest, actorID string) (*model.Application, error) {
			t.Fatal("service must not be called for an invalid payload")
			return nil, nil
		},
	}
	router := newApplicationRouter(svc)

	w := doJSON(router, http.MethodPatch, "/applications/"+uuid.NewString(), map[string]interface{}{
		"adminNotes": "missing status",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
