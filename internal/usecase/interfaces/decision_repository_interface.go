package interfaces

import (
	"context"

	"ar_credit_service/internal/domain/entities"
)

//go:generate mockgen -source=decision_repository_interface.go -destination=mocks/decision_repository_interface.go

// IDecisionRepository persists terminal decisions.
//
// Create must be conditional on the order id not existing yet; writing
// a second decision for the same order is a storage-level failure, not
// an overwrite. A zero-value Decision with empty OrderID means "not
// found".
type IDecisionRepository interface {
	Create(ctx context.Context, d entities.Decision) (entities.Decision, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Decision, error)
}
