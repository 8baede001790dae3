package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"commercial_agent/internal/adapter/http/handlers/mocks"
	"commercial_agent/internal/domain/entities"
	"commercial_agent/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestLeadHandler_CreateLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", h.CreateLead)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(`{"details":{"company":"Acme"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with criteria", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", h.CreateLead)

		uc.EXPECT().CreateLead(gomock.Any(), "webform", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, source string, details map[string]any, criteria *entities.LeadCriteria) (entities.Lead, error) {
				if criteria == nil || criteria.ICP != 90 {
					t.Fatalf("criteria not forwarded: %+v", criteria)
				}
				return entities.Lead{ID: "lead-a1b2c3", Source: source, Details: details, Status: entities.LeadStatusPreliminary}, nil
			})

		body := `{"source":"webform","details":{"company":"Acme"},"criteria":{"icp":90,"intent":80,"engagement":40}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "lead-a1b2c3" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestLeadHandler_QualifyLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads/:lead_id/qualify", h.QualifyLead)

		uc.EXPECT().QualifyLead(gomock.Any(), "lead-404").Return(entities.Lead{}, usecase.ErrLeadNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-404/qualify", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("qualified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads/:lead_id/qualify", h.QualifyLead)

		uc.EXPECT().QualifyLead(gomock.Any(), "lead-1").
			Return(entities.Lead{ID: "lead-1", Score: 81.0, Status: entities.LeadStatusMQL}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads/lead-1/qualify", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != string(entities.LeadStatusMQL) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestLeadHandler_GetLeadByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.GET("/v1/leads/:lead_id", h.GetLeadByID)

		uc.EXPECT().GetByID(gomock.Any(), "lead-1").
			Return(entities.Lead{ID: "lead-1", Source: "webform", Status: entities.LeadStatusPreliminary}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads/lead-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.GET("/v1/leads/:lead_id", h.GetLeadByID)

		uc.EXPECT().GetByID(gomock.Any(), "lead-404").Return(entities.Lead{}, usecase.ErrLeadNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/leads/lead-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
