package interfaces

import (
	"context"

	"ar_credit_service/internal/domain/entities"
)

//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_interface.go

// INotifier delivers outbound events to external collaborators: the
// human review channel and the downstream decision sink.
//
// Delivery is best-effort from the workflow's point of view; failures
// are logged and audited but never change a decision.
type INotifier interface {
	NotifyReviewRequired(ctx context.Context, run entities.WorkflowRun, reasons []string) error
	NotifyDecision(ctx context.Context, d entities.Decision) error
}
