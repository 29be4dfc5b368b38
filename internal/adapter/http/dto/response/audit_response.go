package response

import (
	"time"

	"ar_credit_service/internal/domain/entities"
)

type AuditRecordResponse struct {
	OrderID   string    `json:"order_id"`
	Seq       int       `json:"seq"`
	FromState string    `json:"from_state"`
	ToState   string    `json:"to_state"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func FromAuditRecords(records []entities.AuditRecord) []AuditRecordResponse {
	out := make([]AuditRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, AuditRecordResponse{
			OrderID:   rec.OrderID,
			Seq:       rec.Seq,
			FromState: string(rec.FromState),
			ToState:   string(rec.ToState),
			Details:   rec.Details,
			Timestamp: rec.Timestamp,
		})
	}
	return out
}
