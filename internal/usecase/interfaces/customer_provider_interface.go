package interfaces

import (
	"context"

	"ar_credit_service/internal/domain/entities"
)

//go:generate mockgen -source=customer_provider_interface.go -destination=mocks/customer_provider_interface.go

// ICustomerProvider is the read-only customer-master capability.
//
// The provider is owned by an external system; this service only reads
// snapshots from it and never writes back. A zero-value Customer with
// empty ID means "not found".
type ICustomerProvider interface {
	GetByID(ctx context.Context, customerID string) (entities.Customer, error)
}
