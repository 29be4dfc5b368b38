package request

import (
	"strings"

	"ar_credit_service/internal/domain/entities"
)

// ReviewRequest is the human-review resume payload for an escalated
// order.
type ReviewRequest struct {
	Status    string `json:"status" binding:"required"`
	Rationale string `json:"rationale" binding:"required"`
	Reviewer  string `json:"reviewer"`
}

func (r ReviewRequest) ResolveStatus() entities.DecisionStatus {
	return entities.DecisionStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

func (r ReviewRequest) ResolveRationale() string {
	rationale := strings.TrimSpace(r.Rationale)
	if reviewer := strings.TrimSpace(r.Reviewer); reviewer != "" {
		return rationale + " (reviewer: " + reviewer + ")"
	}
	return rationale
}
