// Package policy implements the deterministic credit policy rules.
// Evaluation is a pure function of (customer, order, limits): no I/O,
// no clock, no randomness. The advisory collaborator never feeds into
// this package.
package policy

import (
	"errors"
	"fmt"

	"ar_credit_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks malformed customer/order data. Evaluation has
// no other failure mode.
var ErrInvalidInput = errors.New("invalid evaluation input")

// Evaluator applies the written credit policy.

type Evaluator struct {
	limits Limits
}

func NewEvaluator(limits Limits) *Evaluator {
	return &Evaluator{limits: limits}
}

// Evaluate runs the policy rules in precedence order:
//
//  1. amount above available credit        → auto_reject
//  2. customer in warning status           → must_escalate
//  3. exposure ratio above the limit       → must_escalate
//  4. credit score below the minimum       → must_escalate
//  5. prior late payment                   → must_escalate
//  6. order above large-order threshold    → must_escalate
//  7. new customer without history         → must_escalate
//  8. otherwise                            → auto_approve
//
// The first triggered rule decides the verdict, but every triggered
// rule's reason and flag are recorded. Exposure is computed against
// the post-order balance (outstanding + amount).
func (e *Evaluator) Evaluate(customer entities.Customer, order entities.Order) (entities.PolicyResult, error) {
	if err := validateInput(customer, order); err != nil {
		return entities.PolicyResult{}, err
	}

	available := customer.AvailableCredit()
	exposure := customer.OutstandingBalance.Add(order.Amount).Div(customer.CreditLimit)

	result := entities.PolicyResult{
		Verdict:         entities.VerdictAutoApprove,
		AvailableCredit: available,
		ExposureRatio:   exposure,
	}

	trigger := func(verdict entities.Verdict, reason string, flag entities.RiskFlag) {
		result.Reasons = append(result.Reasons, reason)
		if flag != "" {
			result.RiskFlags = append(result.RiskFlags, flag)
		}
		if result.Verdict == entities.VerdictAutoApprove {
			result.Verdict = verdict
		}
	}

	if order.Amount.GreaterThan(available) {
		trigger(entities.VerdictAutoReject, "exceeds available credit", "")
	}
	if customer.Status == entities.CustomerStatusWarning {
		trigger(entities.VerdictMustEscalate, "warning status", entities.RiskFlagWarningStatus)
	}
	if exposure.GreaterThan(e.limits.ExposureLimit) {
		reason := fmt.Sprintf("exceeds %s%% exposure", e.limits.ExposureLimit.Mul(decimal.NewFromInt(100)))
		trigger(entities.VerdictMustEscalate, reason, "")
	}
	if customer.CreditScore < e.limits.MinCreditScore {
		reason := fmt.Sprintf("credit score below %d", e.limits.MinCreditScore)
		trigger(entities.VerdictMustEscalate, reason, entities.RiskFlagLowScore)
	} else if customer.CreditScore < e.limits.ReviewScore {
		// Audit flag only; does not force escalation on its own.
		result.RiskFlags = append(result.RiskFlags, entities.RiskFlagLowScore)
	}
	if customer.HasLatePaymentHistory {
		trigger(entities.VerdictMustEscalate, "prior late payment", entities.RiskFlagLatePaymentHistory)
	}
	if order.Amount.GreaterThan(e.limits.LargeOrder) {
		trigger(entities.VerdictMustEscalate, "large order value", entities.RiskFlagLargeOrder)
	}
	if customer.IsNew {
		// Policy requires prepayment for customers without history.
		trigger(entities.VerdictMustEscalate, "new customer without credit history", entities.RiskFlagNewCustomer)
	}

	return result, nil
}

// ValidateInput checks customer/order data without running the rules.
// The orchestrator uses it before creating a workflow run so malformed
// input never leaves a half-built run behind.
func ValidateInput(customer entities.Customer, order entities.Order) error {
	return validateInput(customer, order)
}

func validateInput(customer entities.Customer, order entities.Order) error {
	switch {
	case customer.ID == "":
		return fmt.Errorf("%w: missing customer id", ErrInvalidInput)
	case order.ID == "":
		return fmt.Errorf("%w: missing order id", ErrInvalidInput)
	case order.CustomerID != customer.ID:
		return fmt.Errorf("%w: order customer %q does not match customer %q", ErrInvalidInput, order.CustomerID, customer.ID)
	case !customer.CreditLimit.IsPositive():
		return fmt.Errorf("%w: non-positive credit_limit", ErrInvalidInput)
	case customer.OutstandingBalance.IsNegative():
		return fmt.Errorf("%w: negative outstanding_balance", ErrInvalidInput)
	case !order.Amount.IsPositive():
		return fmt.Errorf("%w: non-positive order amount", ErrInvalidInput)
	}
	return nil
}
