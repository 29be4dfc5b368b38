package interfaces

import (
	"context"

	"ar_credit_service/internal/domain/entities"
)

//go:generate mockgen -source=advisory_gateway_interface.go -destination=mocks/advisory_gateway_interface.go

// IAdvisoryGateway abstracts the external advisory reasoning
// collaborator (an LLM-backed analyst service in production).
//
// The call may be slow or unavailable; implementations must honor ctx
// cancellation. The opinion is advisory only: it never overrides the
// deterministic policy verdict.
type IAdvisoryGateway interface {
	Assess(ctx context.Context, customer entities.Customer, order entities.Order, result entities.PolicyResult) (entities.AdvisoryOpinion, error)
}
