package entities

import (
	"time"

	"ar_credit_service/internal/domain/workflow"

	"github.com/shopspring/decimal"
)

// StepLog is one entry of a run's append-only history.

type StepLog struct {
	Seq       int            `json:"seq"`
	FromState workflow.State `json:"from_state"`
	ToState   workflow.State `json:"to_state"`
	Details   string         `json:"details,omitempty"`
	At        time.Time      `json:"at"`
}

// WorkflowRun tracks one order's evaluation lifecycle.
//
// Storage model (DynamoDB):
//   - PK: order_id (one run per order; conditional put on create)
//
// A run parked in AwaitingHumanInput is durable: it is persisted before
// the workflow suspends, so a process restart cannot lose a pending
// escalation.

type WorkflowRun struct {
	ID                string            `json:"id"`
	OrderID           string            `json:"order_id"`
	CustomerID        string            `json:"customer_id"`
	Amount            decimal.Decimal   `json:"amount"`
	State             workflow.State    `json:"state"`
	Assessment        *CreditAssessment `json:"assessment,omitempty"`
	History           []StepLog         `json:"history"`
	PendingHumanInput bool              `json:"pending_human_input"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// AppendStep records a transition in the run history and moves the run
// to the target state. It does not validate the transition; callers go
// through workflow.Transition first.
func (r *WorkflowRun) AppendStep(to workflow.State, details string, at time.Time) {
	r.History = append(r.History, StepLog{
		Seq:       len(r.History) + 1,
		FromState: r.State,
		ToState:   to,
		Details:   details,
		At:        at,
	})
	r.State = to
	r.PendingHumanInput = to == workflow.StateAwaitingHumanInput
	r.UpdatedAt = at
}
