package interfaces

import (
	"context"

	"ar_credit_service/internal/domain/entities"
)

//go:generate mockgen -source=workflow_run_repository_interface.go -destination=mocks/workflow_run_repository_interface.go

// IWorkflowRunRepository persists WorkflowRun state.
//
// The run must be durably saved before the workflow suspends in
// awaiting_human_input: a failed Save there is fatal to the run and is
// surfaced to the caller, never swallowed.
type IWorkflowRunRepository interface {
	Create(ctx context.Context, run entities.WorkflowRun) (entities.WorkflowRun, error)
	Save(ctx context.Context, run entities.WorkflowRun) (entities.WorkflowRun, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.WorkflowRun, error)
	ListAwaitingHumanInput(ctx context.Context) ([]entities.WorkflowRun, error)
}
