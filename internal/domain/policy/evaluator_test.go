package policy

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"ar_credit_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func cleanCustomer() entities.Customer {
	return entities.Customer{
		ID:                 "cust-1",
		CreditLimit:        decimal.NewFromInt(200_000),
		OutstandingBalance: decimal.NewFromInt(20_000),
		CreditScore:        720,
		Status:             entities.CustomerStatusNormal,
	}
}

func orderFor(customer entities.Customer, amount int64) entities.Order {
	return entities.Order{
		ID:          "ord-1",
		CustomerID:  customer.ID,
		Amount:      decimal.NewFromInt(amount),
		SubmittedAt: time.Now().UTC(),
	}
}

func TestEvaluator_Scenarios(t *testing.T) {
	ev := NewEvaluator(DefaultLimits())

	t.Run("high exposure escalates", func(t *testing.T) {
		customer := cleanCustomer()
		customer.CreditLimit = decimal.NewFromInt(100_000)
		customer.OutstandingBalance = decimal.NewFromInt(85_000)

		result, err := ev.Evaluate(customer, orderFor(customer, 10_000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Verdict != entities.VerdictMustEscalate {
			t.Fatalf("expected must_escalate, got %s", result.Verdict)
		}
		if !result.AvailableCredit.Equal(decimal.NewFromInt(15_000)) {
			t.Fatalf("expected available credit 15000, got %s", result.AvailableCredit)
		}
		if !result.ExposureRatio.Equal(decimal.RequireFromString("0.95")) {
			t.Fatalf("expected exposure 0.95, got %s", result.ExposureRatio)
		}
		if !containsReason(result.Reasons, "exceeds 80% exposure") {
			t.Fatalf("expected exposure reason, got %v", result.Reasons)
		}
	})

	t.Run("insufficient credit rejects", func(t *testing.T) {
		customer := cleanCustomer()
		customer.CreditLimit = decimal.NewFromInt(50_000)
		customer.OutstandingBalance = decimal.NewFromInt(10_000)

		result, err := ev.Evaluate(customer, orderFor(customer, 60_000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Verdict != entities.VerdictAutoReject {
			t.Fatalf("expected auto_reject, got %s", result.Verdict)
		}
		if !containsReason(result.Reasons, "exceeds available credit") {
			t.Fatalf("expected credit reason, got %v", result.Reasons)
		}
	})

	t.Run("clean order approves", func(t *testing.T) {
		customer := cleanCustomer()

		result, err := ev.Evaluate(customer, orderFor(customer, 5_000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Verdict != entities.VerdictAutoApprove {
			t.Fatalf("expected auto_approve, got %s", result.Verdict)
		}
		if !result.ExposureRatio.Equal(decimal.RequireFromString("0.125")) {
			t.Fatalf("expected exposure 0.125, got %s", result.ExposureRatio)
		}
		if len(result.Reasons) != 0 {
			t.Fatalf("expected no reasons, got %v", result.Reasons)
		}
	})

	t.Run("new customer escalates even when clean", func(t *testing.T) {
		customer := cleanCustomer()
		customer.IsNew = true

		result, err := ev.Evaluate(customer, orderFor(customer, 1_000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Verdict != entities.VerdictMustEscalate {
			t.Fatalf("expected must_escalate, got %s", result.Verdict)
		}
		if !containsReason(result.Reasons, "new customer without credit history") {
			t.Fatalf("expected new-customer reason, got %v", result.Reasons)
		}
		if !result.HasFlag(entities.RiskFlagNewCustomer) {
			t.Fatalf("expected new_customer flag, got %v", result.RiskFlags)
		}
	})
}

func TestEvaluator_Precedence(t *testing.T) {
	ev := NewEvaluator(DefaultLimits())

	t.Run("rejection beats escalation rules", func(t *testing.T) {
		customer := cleanCustomer()
		customer.CreditLimit = decimal.NewFromInt(50_000)
		customer.OutstandingBalance = decimal.NewFromInt(45_000)
		customer.Status = entities.CustomerStatusWarning
		customer.HasLatePaymentHistory = true

		result, err := ev.Evaluate(customer, orderFor(customer, 30_000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Verdict != entities.VerdictAutoReject {
			t.Fatalf("expected auto_reject, got %s", result.Verdict)
		}
		// All triggered reasons recorded, in rule order.
		want := []string{"exceeds available credit", "warning status", "exceeds 80% exposure", "prior late payment"}
		if !reflect.DeepEqual(result.Reasons, want) {
			t.Fatalf("expected reasons %v, got %v", want, result.Reasons)
		}
	})

	t.Run("warning status never auto-approves", func(t *testing.T) {
		customer := cleanCustomer()
		customer.Status = entities.CustomerStatusWarning

		result, err := ev.Evaluate(customer, orderFor(customer, 1_000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Verdict != entities.VerdictMustEscalate {
			t.Fatalf("expected must_escalate, got %s", result.Verdict)
		}
		if !result.HasFlag(entities.RiskFlagWarningStatus) {
			t.Fatalf("expected warning_status flag, got %v", result.RiskFlags)
		}
	})

	t.Run("large order escalates", func(t *testing.T) {
		customer := cleanCustomer()
		customer.CreditLimit = decimal.NewFromInt(1_000_000)

		result, err := ev.Evaluate(customer, orderFor(customer, 150_000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Verdict != entities.VerdictMustEscalate {
			t.Fatalf("expected must_escalate, got %s", result.Verdict)
		}
		if !containsReason(result.Reasons, "large order value") {
			t.Fatalf("expected large-order reason, got %v", result.Reasons)
		}
	})
}

func TestEvaluator_CreditScore(t *testing.T) {
	ev := NewEvaluator(DefaultLimits())

	t.Run("below minimum escalates", func(t *testing.T) {
		customer := cleanCustomer()
		customer.CreditScore = 580

		result, err := ev.Evaluate(customer, orderFor(customer, 1_000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Verdict != entities.VerdictMustEscalate {
			t.Fatalf("expected must_escalate, got %s", result.Verdict)
		}
		if !containsReason(result.Reasons, "credit score below 600") {
			t.Fatalf("expected score reason, got %v", result.Reasons)
		}
	})

	t.Run("between minimum and review score flags without escalating", func(t *testing.T) {
		customer := cleanCustomer()
		customer.CreditScore = 620

		result, err := ev.Evaluate(customer, orderFor(customer, 1_000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Verdict != entities.VerdictAutoApprove {
			t.Fatalf("expected auto_approve, got %s", result.Verdict)
		}
		if !result.HasFlag(entities.RiskFlagLowScore) {
			t.Fatalf("expected low_score flag, got %v", result.RiskFlags)
		}
	})
}

func TestEvaluator_Determinism(t *testing.T) {
	ev := NewEvaluator(DefaultLimits())
	customer := cleanCustomer()
	customer.Status = entities.CustomerStatusWarning
	customer.CreditScore = 610
	order := orderFor(customer, 30_000)

	first, err := ev.Evaluate(customer, order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := ev.Evaluate(customer, order)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("expected identical results, got %+v vs %+v", first, again)
		}
	}
}

func TestEvaluator_Validation(t *testing.T) {
	ev := NewEvaluator(DefaultLimits())

	t.Run("non-positive credit limit", func(t *testing.T) {
		customer := cleanCustomer()
		customer.CreditLimit = decimal.Zero

		_, err := ev.Evaluate(customer, orderFor(customer, 1_000))
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		customer := cleanCustomer()
		order := orderFor(customer, 1_000)
		order.Amount = decimal.Zero

		_, err := ev.Evaluate(customer, order)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("customer mismatch", func(t *testing.T) {
		customer := cleanCustomer()
		order := orderFor(customer, 1_000)
		order.CustomerID = "cust-other"

		_, err := ev.Evaluate(customer, order)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func containsReason(reasons []string, want string) bool {
	for _, r := range reasons {
		if r == want {
			return true
		}
	}
	return false
}
