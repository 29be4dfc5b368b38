// Package advisory talks to the external advisory reasoning service:
// an LLM-backed analyst that writes a qualitative note about a
// customer's creditworthiness. The note is advisory only; binding
// verdicts come from the policy evaluator.
package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"ar_credit_service/internal/domain/entities"
	"ar_credit_service/internal/usecase/interfaces"
)

var (
	ErrMissingAdvisoryEndpoint = errors.New("missing ADVISORY_ENDPOINT")
	// ErrUnavailable marks a failed or timed-out advisory call.
	ErrUnavailable = errors.New("advisory service unavailable")
)

type assessRequest struct {
	CustomerID         string   `json:"customer_id"`
	CreditScore        int      `json:"credit_score"`
	Status             string   `json:"status"`
	AvailableCredit    string   `json:"available_credit"`
	ExposureRatio      string   `json:"exposure_ratio"`
	OrderID            string   `json:"order_id"`
	OrderAmount        string   `json:"order_amount"`
	ProvisionalVerdict string   `json:"provisional_verdict"`
	TriggeredReasons   []string `json:"triggered_reasons"`
}

type assessResponse struct {
	Note              string  `json:"note"`
	Confidence        float64 `json:"confidence"`
	RecommendEscalate bool    `json:"recommend_escalate"`
}

// HTTPAdvisor calls the advisory service over plain HTTP/JSON.

type HTTPAdvisor struct {
	client   *http.Client
	endpoint string
	apiKey   string
	mockMode bool
}

var _ interfaces.IAdvisoryGateway = (*HTTPAdvisor)(nil)

func NewHTTPAdvisor(endpoint, apiKey string) (*HTTPAdvisor, error) {
	if isAdvisoryMockEnabled() {
		log.Printf("[advisory][gateway] mock mode enabled")
		return &HTTPAdvisor{mockMode: true}, nil
	}

	if endpoint == "" {
		log.Printf("[advisory][gateway] missing ADVISORY_ENDPOINT")
		return nil, ErrMissingAdvisoryEndpoint
	}

	log.Printf("[advisory][gateway] advisory client initialized endpoint=%s", endpoint)
	return &HTTPAdvisor{
		client:   &http.Client{},
		endpoint: endpoint,
		apiKey:   apiKey,
	}, nil
}

func (a *HTTPAdvisor) Assess(ctx context.Context, customer entities.Customer, order entities.Order, result entities.PolicyResult) (entities.AdvisoryOpinion, error) {
	if a != nil && a.mockMode {
		return mockOpinion(customer, result), nil
	}

	body, err := json.Marshal(assessRequest{
		CustomerID:         customer.ID,
		CreditScore:        customer.CreditScore,
		Status:             string(customer.Status),
		AvailableCredit:    result.AvailableCredit.String(),
		ExposureRatio:      result.ExposureRatio.String(),
		OrderID:            order.ID,
		OrderAmount:        order.Amount.String(),
		ProvisionalVerdict: string(result.Verdict),
		TriggeredReasons:   result.Reasons,
	})
	if err != nil {
		return entities.AdvisoryOpinion{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return entities.AdvisoryOpinion{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	start := time.Now()
	resp, err := a.client.Do(req)
	if err != nil {
		log.Printf("[advisory][gateway] assess failed order_id=%s elapsed=%s err=%v", order.ID, time.Since(start), err)
		return entities.AdvisoryOpinion{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("[advisory][gateway] assess non-200 order_id=%s status=%d body=%q", order.ID, resp.StatusCode, raw)
		return entities.AdvisoryOpinion{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var parsed assessResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return entities.AdvisoryOpinion{}, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	if parsed.Confidence < 0 || parsed.Confidence > 1 {
		return entities.AdvisoryOpinion{}, fmt.Errorf("%w: confidence %v out of range", ErrUnavailable, parsed.Confidence)
	}

	log.Printf("[advisory][gateway] assess success order_id=%s confidence=%.2f elapsed=%s", order.ID, parsed.Confidence, time.Since(start))
	return entities.AdvisoryOpinion{
		Note:              parsed.Note,
		Confidence:        parsed.Confidence,
		RecommendEscalate: parsed.RecommendEscalate,
	}, nil
}

func mockOpinion(customer entities.Customer, result entities.PolicyResult) entities.AdvisoryOpinion {
	note := fmt.Sprintf("mock analysis: customer %s, provisional verdict %s", customer.ID, result.Verdict)
	return entities.AdvisoryOpinion{Note: note, Confidence: 0.5}
}

func isAdvisoryMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ADVISORY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
