// Package notifications delivers outbound events to external
// collaborators: the human review channel and the downstream decision
// sink. Transport is a fire-and-forget JSON webhook; the workflow
// treats delivery as best-effort.
package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"ar_credit_service/internal/domain/entities"
	"ar_credit_service/internal/usecase/interfaces"
)

const defaultNotifyTimeout = 5 * time.Second

type reviewRequiredEvent struct {
	Event      string    `json:"event"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Amount     string    `json:"amount"`
	Reasons    []string  `json:"reasons"`
	SentAt     time.Time `json:"sent_at"`
}

type decisionEvent struct {
	Event     string    `json:"event"`
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	Origin    string    `json:"origin"`
	Reasons   []string  `json:"reasons"`
	Rationale string    `json:"rationale,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

// WebhookNotifier posts events to the configured review-channel and
// decision-sink URLs. An empty URL disables that event kind; the
// notifier then only logs.

type WebhookNotifier struct {
	client      *http.Client
	reviewURL   string
	decisionURL string
}

var _ interfaces.INotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(reviewURL, decisionURL string) *WebhookNotifier {
	if reviewURL == "" {
		log.Printf("[notify][gateway] review webhook not configured; review notices will be log-only")
	}
	if decisionURL == "" {
		log.Printf("[notify][gateway] decision webhook not configured; decision notices will be log-only")
	}
	return &WebhookNotifier{
		client:      &http.Client{Timeout: defaultNotifyTimeout},
		reviewURL:   reviewURL,
		decisionURL: decisionURL,
	}
}

func (n *WebhookNotifier) NotifyReviewRequired(ctx context.Context, run entities.WorkflowRun, reasons []string) error {
	log.Printf("[notify][gateway] review required order_id=%s customer_id=%s reasons=%q", run.OrderID, run.CustomerID, reasons)
	if n.reviewURL == "" {
		return nil
	}
	return n.post(ctx, n.reviewURL, reviewRequiredEvent{
		Event:      "order_requires_review",
		OrderID:    run.OrderID,
		CustomerID: run.CustomerID,
		Amount:     run.Amount.String(),
		Reasons:    reasons,
		SentAt:     time.Now().UTC(),
	})
}

func (n *WebhookNotifier) NotifyDecision(ctx context.Context, d entities.Decision) error {
	log.Printf("[notify][gateway] decision order_id=%s status=%s origin=%s", d.OrderID, d.Status, d.Origin)
	if n.decisionURL == "" {
		return nil
	}
	return n.post(ctx, n.decisionURL, decisionEvent{
		Event:     "order_decision",
		OrderID:   d.OrderID,
		Status:    string(d.Status),
		Origin:    string(d.Origin),
		Reasons:   d.Reasons,
		Rationale: d.Rationale,
		SentAt:    time.Now().UTC(),
	})
}

func (n *WebhookNotifier) post(ctx context.Context, url string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
