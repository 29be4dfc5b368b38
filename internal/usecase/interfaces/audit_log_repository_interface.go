package interfaces

import (
	"context"

	"ar_credit_service/internal/domain/entities"
)

//go:generate mockgen -source=audit_log_repository_interface.go -destination=mocks/audit_log_repository_interface.go

// IAuditLogRepository is the append-only decision trail.
//
// Append never updates an existing record; ListByOrderID returns the
// trail in sequence order so the full decision history of an order can
// be reconstructed.
type IAuditLogRepository interface {
	Append(ctx context.Context, rec entities.AuditRecord) error
	ListByOrderID(ctx context.Context, orderID string) ([]entities.AuditRecord, error)
}
