package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ar_credit_service/internal/domain/entities"
	"ar_credit_service/internal/domain/workflow"

	"github.com/shopspring/decimal"
)

func TestWebhookNotifier_NotifyReviewRequired(t *testing.T) {
	t.Run("posts the review event", func(t *testing.T) {
		var got reviewRequiredEvent
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Errorf("invalid event body: %v", err)
			}
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		run := entities.WorkflowRun{
			OrderID:    "ord-1",
			CustomerID: "cust-1",
			Amount:     decimal.NewFromInt(5_000),
			State:      workflow.StateAwaitingHumanInput,
		}
		n := NewWebhookNotifier(srv.URL, "")
		if err := n.NotifyReviewRequired(context.Background(), run, []string{"warning status"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Event != "order_requires_review" || got.OrderID != "ord-1" || got.Amount != "5000" {
			t.Fatalf("unexpected event: %+v", got)
		}
	})

	t.Run("no url is log-only", func(t *testing.T) {
		n := NewWebhookNotifier("", "")
		if err := n.NotifyReviewRequired(context.Background(), entities.WorkflowRun{OrderID: "ord-1"}, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		n := NewWebhookNotifier(srv.URL, "")
		if err := n.NotifyReviewRequired(context.Background(), entities.WorkflowRun{OrderID: "ord-1"}, nil); err == nil {
			t.Fatalf("expected error on 503")
		}
	})
}

func TestWebhookNotifier_NotifyDecision(t *testing.T) {
	var got decisionEvent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("invalid event body: %v", err)
		}
	}))
	defer srv.Close()

	decision := entities.Decision{
		OrderID:   "ord-1",
		Status:    entities.DecisionStatusApproved,
		Origin:    entities.DecisionOriginHuman,
		Rationale: "manager override",
	}
	n := NewWebhookNotifier("", srv.URL)
	if err := n.NotifyDecision(context.Background(), decision); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Event != "order_decision" || got.Status != "approved" || got.Origin != "human" {
		t.Fatalf("unexpected event: %+v", got)
	}
	if got.Rationale != "manager override" {
		t.Fatalf("expected rationale, got %q", got.Rationale)
	}
}
