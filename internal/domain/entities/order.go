package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a sales order submitted for credit evaluation.
// Immutable once submitted; the order id is the idempotency key for the
// whole evaluation pipeline.

type Order struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	Amount      decimal.Decimal `json:"amount"`
	SubmittedAt time.Time       `json:"submitted_at"`
}
