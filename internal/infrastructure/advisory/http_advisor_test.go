package advisory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ar_credit_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func advisorFixtures() (entities.Customer, entities.Order, entities.PolicyResult) {
	customer := entities.Customer{
		ID:          "cust-1",
		CreditScore: 720,
		Status:      entities.CustomerStatusNormal,
	}
	order := entities.Order{ID: "ord-1", CustomerID: "cust-1", Amount: decimal.NewFromInt(5_000)}
	result := entities.PolicyResult{
		Verdict:         entities.VerdictAutoApprove,
		AvailableCredit: decimal.NewFromInt(180_000),
		ExposureRatio:   decimal.RequireFromString("0.125"),
	}
	return customer, order, result
}

func TestNewHTTPAdvisor(t *testing.T) {
	t.Run("missing endpoint", func(t *testing.T) {
		t.Setenv("ADVISORY_MOCK", "")
		if _, err := NewHTTPAdvisor("", "key"); !errors.Is(err, ErrMissingAdvisoryEndpoint) {
			t.Fatalf("expected ErrMissingAdvisoryEndpoint, got %v", err)
		}
	})

	t.Run("mock mode needs no endpoint", func(t *testing.T) {
		t.Setenv("ADVISORY_MOCK", "true")
		advisor, err := NewHTTPAdvisor("", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		customer, order, result := advisorFixtures()
		opinion, err := advisor.Assess(context.Background(), customer, order, result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opinion.Note == "" || opinion.Confidence != 0.5 {
			t.Fatalf("expected mock opinion, got %+v", opinion)
		}
	})
}

func TestHTTPAdvisor_Assess(t *testing.T) {
	t.Setenv("ADVISORY_MOCK", "")

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer secret" {
				t.Errorf("expected bearer auth, got %q", r.Header.Get("Authorization"))
			}
			var payload map[string]any
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Errorf("invalid request body: %v", err)
			}
			if payload["order_id"] != "ord-1" || payload["provisional_verdict"] != "auto_approve" {
				t.Errorf("unexpected request payload: %v", payload)
			}
			_ = json.NewEncoder(w).Encode(assessResponse{Note: "solid payer", Confidence: 0.85})
		}))
		defer srv.Close()

		advisor, err := NewHTTPAdvisor(srv.URL, "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		customer, order, result := advisorFixtures()
		opinion, err := advisor.Assess(context.Background(), customer, order, result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opinion.Note != "solid payer" || opinion.Confidence != 0.85 {
			t.Fatalf("unexpected opinion: %+v", opinion)
		}
	})

	t.Run("non-200 is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		advisor, err := NewHTTPAdvisor(srv.URL, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		customer, order, result := advisorFixtures()
		if _, err := advisor.Assess(context.Background(), customer, order, result); !errors.Is(err, ErrUnavailable) {
			t.Fatalf("expected ErrUnavailable, got %v", err)
		}
	})

	t.Run("out-of-range confidence is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(assessResponse{Note: "??", Confidence: 1.7})
		}))
		defer srv.Close()

		advisor, err := NewHTTPAdvisor(srv.URL, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		customer, order, result := advisorFixtures()
		if _, err := advisor.Assess(context.Background(), customer, order, result); !errors.Is(err, ErrUnavailable) {
			t.Fatalf("expected ErrUnavailable, got %v", err)
		}
	})

	t.Run("unreachable endpoint is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		advisor, err := NewHTTPAdvisor(srv.URL, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		customer, order, result := advisorFixtures()
		if _, err := advisor.Assess(context.Background(), customer, order, result); !errors.Is(err, ErrUnavailable) {
			t.Fatalf("expected ErrUnavailable, got %v", err)
		}
	})
}
