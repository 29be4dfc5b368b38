package entities

import "time"

// DecisionStatus is the terminal outcome of an order evaluation.

type DecisionStatus string

const (
	DecisionStatusApproved DecisionStatus = "approved"
	DecisionStatusRejected DecisionStatus = "rejected"
)

// DecisionOrigin records who produced the terminal outcome.

type DecisionOrigin string

const (
	DecisionOriginPolicy DecisionOrigin = "policy"
	DecisionOriginHuman  DecisionOrigin = "human"
)

// Decision is the single terminal record for an order.
//
// Storage model (DynamoDB):
//   - PK: order_id
//
// At most one Decision exists per order; the repository enforces this
// with a conditional put, and re-evaluation returns the stored record.

type Decision struct {
	OrderID    string           `json:"order_id"`
	Status     DecisionStatus   `json:"status"`
	Reasons    []string         `json:"reasons"`
	Origin     DecisionOrigin   `json:"origin"`
	Rationale  string           `json:"rationale,omitempty"`
	Assessment CreditAssessment `json:"assessment"`
	DecidedAt  time.Time        `json:"decided_at"`
}
