package request

import (
	"errors"
	"strings"
	"time"

	"ar_credit_service/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidOrderAmount = errors.New("invalid order amount")

// OrderRequest is the order-intake payload. order_id is optional: the
// caller supplies it to make resubmissions idempotent, otherwise one is
// generated.
type OrderRequest struct {
	OrderID     string          `json:"order_id"`
	CustomerID  string          `json:"customer_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

func (r OrderRequest) ResolveOrder() (entities.Order, error) {
	if !r.Amount.IsPositive() {
		return entities.Order{}, ErrInvalidOrderAmount
	}

	orderID := strings.TrimSpace(r.OrderID)
	if orderID == "" {
		orderID = uuid.NewString()
	}
	submittedAt := r.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = time.Now().UTC()
	}

	return entities.Order{
		ID:          orderID,
		CustomerID:  strings.TrimSpace(r.CustomerID),
		Amount:      r.Amount,
		SubmittedAt: submittedAt,
	}, nil
}
