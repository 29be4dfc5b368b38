package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ar_credit_service/internal/adapter/http/handlers/mocks"
	"ar_credit_service/internal/domain/entities"
	"ar_credit_service/internal/domain/workflow"
	"ar_credit_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestReviewHandler_SubmitDecision(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditWorkflowUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/review", h.SubmitDecision)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/review", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing rationale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditWorkflowUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/review", h.SubmitDecision)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/review", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditWorkflowUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/review", h.SubmitDecision)

		uc.EXPECT().SubmitHumanDecision(gomock.Any(), "ord-1", entities.DecisionStatus("deferred"), "later").
			Return(entities.Decision{}, usecase.ErrInvalidHumanStatus)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/review", bytes.NewBufferString(`{"status":"deferred","rationale":"later"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("run not awaiting input maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditWorkflowUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/review", h.SubmitDecision)

		uc.EXPECT().SubmitHumanDecision(gomock.Any(), "ord-1", entities.DecisionStatusApproved, "override").
			Return(entities.Decision{}, workflow.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/review", bytes.NewBufferString(`{"status":"approved","rationale":"override"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown order maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditWorkflowUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/review", h.SubmitDecision)

		uc.EXPECT().SubmitHumanDecision(gomock.Any(), "ord-404", entities.DecisionStatusApproved, "ok").
			Return(entities.Decision{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-404/review", bytes.NewBufferString(`{"status":"approved","rationale":"ok"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with reviewer note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditWorkflowUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:order_id/review", h.SubmitDecision)

		decision := entities.Decision{
			OrderID:   "ord-1",
			Status:    entities.DecisionStatusApproved,
			Origin:    entities.DecisionOriginHuman,
			Rationale: "manager override (reviewer: dana)",
			DecidedAt: time.Now().UTC(),
		}
		uc.EXPECT().SubmitHumanDecision(gomock.Any(), "ord-1", entities.DecisionStatusApproved, "manager override (reviewer: dana)").
			Return(decision, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/ord-1/review", bytes.NewBufferString(`{"status":"Approved","rationale":"manager override","reviewer":"dana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["origin"] != "human" {
			t.Fatalf("expected human origin, got %v", body["origin"])
		}
	})
}

func TestReviewHandler_ListPending(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditWorkflowUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.GET("/v1/reviews", h.ListPending)

		uc.EXPECT().ListAwaitingReview(gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reviews", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("pending runs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditWorkflowUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.GET("/v1/reviews", h.ListPending)

		runs := []entities.WorkflowRun{
			{
				ID: "run-1", OrderID: "ord-1", CustomerID: "cust-1",
				Amount: decimal.NewFromInt(5_000),
				State:  workflow.StateAwaitingHumanInput, PendingHumanInput: true,
			},
		}
		uc.EXPECT().ListAwaitingReview(gomock.Any()).Return(runs, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reviews", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 1 || body[0]["order_id"] != "ord-1" {
			t.Fatalf("expected one pending run, got %s", w.Body.String())
		}
	})
}
