package response

import (
	"time"

	"ar_credit_service/internal/domain/entities"
)

type AdvisoryResponse struct {
	Note              string  `json:"note"`
	Confidence        float64 `json:"confidence"`
	RecommendEscalate bool    `json:"recommend_escalate"`
}

type AssessmentResponse struct {
	OrderID         string            `json:"order_id"`
	AvailableCredit string            `json:"available_credit"`
	ExposureRatio   string            `json:"exposure_ratio"`
	RiskFlags       []string          `json:"risk_flags"`
	Verdict         string            `json:"verdict"`
	Reasons         []string          `json:"reasons"`
	Advisory        *AdvisoryResponse `json:"advisory,omitempty"`
	Degraded        bool              `json:"degraded"`
}

type DecisionResponse struct {
	OrderID    string             `json:"order_id"`
	Status     string             `json:"status"`
	Reasons    []string           `json:"reasons"`
	Origin     string             `json:"origin"`
	Rationale  string             `json:"rationale,omitempty"`
	Assessment AssessmentResponse `json:"assessment"`
	DecidedAt  time.Time          `json:"decided_at"`
}

func FromAssessment(a entities.CreditAssessment) AssessmentResponse {
	flags := make([]string, 0, len(a.RiskFlags))
	for _, f := range a.RiskFlags {
		flags = append(flags, string(f))
	}
	resp := AssessmentResponse{
		OrderID:         a.OrderID,
		AvailableCredit: a.AvailableCredit.String(),
		ExposureRatio:   a.ExposureRatio.String(),
		RiskFlags:       flags,
		Verdict:         string(a.Verdict),
		Reasons:         a.Reasons,
		Degraded:        a.Degraded,
	}
	if a.Advisory != nil {
		resp.Advisory = &AdvisoryResponse{
			Note:              a.Advisory.Note,
			Confidence:        a.Advisory.Confidence,
			RecommendEscalate: a.Advisory.RecommendEscalate,
		}
	}
	return resp
}

func FromDecision(d entities.Decision) DecisionResponse {
	return DecisionResponse{
		OrderID:    d.OrderID,
		Status:     string(d.Status),
		Reasons:    d.Reasons,
		Origin:     string(d.Origin),
		Rationale:  d.Rationale,
		Assessment: FromAssessment(d.Assessment),
		DecidedAt:  d.DecidedAt,
	}
}
