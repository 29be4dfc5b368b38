package entities

import "github.com/shopspring/decimal"

// RiskFlag marks a policy condition observed during evaluation. Flags
// are recorded for audit even when they do not decide the verdict.

type RiskFlag string

const (
	RiskFlagLowScore           RiskFlag = "low_score"
	RiskFlagWarningStatus      RiskFlag = "warning_status"
	RiskFlagLatePaymentHistory RiskFlag = "late_payment_history"
	RiskFlagLargeOrder         RiskFlag = "large_order"
	RiskFlagNewCustomer        RiskFlag = "new_customer"
)

// Verdict is the provisional outcome of the deterministic policy rules.

type Verdict string

const (
	VerdictAutoApprove  Verdict = "auto_approve"
	VerdictAutoReject   Verdict = "auto_reject"
	VerdictMustEscalate Verdict = "must_escalate"
)

// PolicyResult is the deterministic part of an assessment. It is a pure
// function of (customer, order, policy limits) and carries every
// triggered rule name in precedence order, not only the one that
// decided the verdict.

type PolicyResult struct {
	Verdict         Verdict         `json:"verdict"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
	ExposureRatio   decimal.Decimal `json:"exposure_ratio"`
	RiskFlags       []RiskFlag      `json:"risk_flags"`
	Reasons         []string        `json:"reasons"`
}

// HasFlag reports whether the result carries the given risk flag.
func (r PolicyResult) HasFlag(f RiskFlag) bool {
	for _, have := range r.RiskFlags {
		if have == f {
			return true
		}
	}
	return false
}

// AdvisoryOpinion is the bounded, typed result of the external advisory
// collaborator. It is explanatory color only; it never carries a
// binding verdict.

type AdvisoryOpinion struct {
	Note              string  `json:"note"`
	Confidence        float64 `json:"confidence"`
	RecommendEscalate bool    `json:"recommend_escalate"`
}

// CreditAssessment combines the deterministic policy result with the
// advisory opinion for one order. Created once per evaluation,
// immutable after creation.
//
// Degraded is set when the advisory call exhausted its retries; the
// assessment then rests on the policy result alone.

type CreditAssessment struct {
	OrderID         string           `json:"order_id"`
	AvailableCredit decimal.Decimal  `json:"available_credit"`
	ExposureRatio   decimal.Decimal  `json:"exposure_ratio"`
	RiskFlags       []RiskFlag       `json:"risk_flags"`
	Verdict         Verdict          `json:"verdict"`
	Reasons         []string         `json:"reasons"`
	Advisory        *AdvisoryOpinion `json:"advisory,omitempty"`
	Degraded        bool             `json:"degraded"`
}
