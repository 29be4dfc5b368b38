package response

import (
	"time"

	"ar_credit_service/internal/domain/entities"
)

type StepLogResponse struct {
	Seq       int       `json:"seq"`
	FromState string    `json:"from_state"`
	ToState   string    `json:"to_state"`
	Details   string    `json:"details,omitempty"`
	At        time.Time `json:"at"`
}

type RunResponse struct {
	RunID             string              `json:"run_id"`
	OrderID           string              `json:"order_id"`
	CustomerID        string              `json:"customer_id"`
	Amount            string              `json:"amount"`
	State             string              `json:"state"`
	PendingHumanInput bool                `json:"pending_human_input"`
	Assessment        *AssessmentResponse `json:"assessment,omitempty"`
	History           []StepLogResponse   `json:"history"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// EvaluationResponse is the order-intake reply: the run state plus the
// decision when the evaluation already reached a terminal state.
type EvaluationResponse struct {
	OrderID           string            `json:"order_id"`
	State             string            `json:"state"`
	PendingHumanInput bool              `json:"pending_human_input"`
	Decision          *DecisionResponse `json:"decision,omitempty"`
}

func FromRun(run entities.WorkflowRun) RunResponse {
	history := make([]StepLogResponse, 0, len(run.History))
	for _, step := range run.History {
		history = append(history, StepLogResponse{
			Seq:       step.Seq,
			FromState: string(step.FromState),
			ToState:   string(step.ToState),
			Details:   step.Details,
			At:        step.At,
		})
	}
	resp := RunResponse{
		RunID:             run.ID,
		OrderID:           run.OrderID,
		CustomerID:        run.CustomerID,
		Amount:            run.Amount.String(),
		State:             string(run.State),
		PendingHumanInput: run.PendingHumanInput,
		History:           history,
		CreatedAt:         run.CreatedAt,
		UpdatedAt:         run.UpdatedAt,
	}
	if run.Assessment != nil {
		assessment := FromAssessment(*run.Assessment)
		resp.Assessment = &assessment
	}
	return resp
}

func FromEvaluation(run entities.WorkflowRun, decision *entities.Decision) EvaluationResponse {
	resp := EvaluationResponse{
		OrderID:           run.OrderID,
		State:             string(run.State),
		PendingHumanInput: run.PendingHumanInput,
	}
	if decision != nil {
		d := FromDecision(*decision)
		resp.Decision = &d
	}
	return resp
}
