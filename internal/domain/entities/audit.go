package entities

import (
	"time"

	"ar_credit_service/internal/domain/workflow"
)

// AuditRecord is one append-only entry of an order's decision trail.
//
// Storage model (DynamoDB):
//   - PK: order_id (string)
//   - SK: seq (number)
//
// Records are never updated or deleted. Besides state transitions, the
// trail carries advisory-call retries and degraded-mode notices, which
// use the same from/to state (no transition happened).

type AuditRecord struct {
	OrderID   string         `json:"order_id"`
	Seq       int            `json:"seq"`
	FromState workflow.State `json:"from_state"`
	ToState   workflow.State `json:"to_state"`
	Details   string         `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
