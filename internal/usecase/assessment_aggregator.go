package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ar_credit_service/internal/domain/entities"
	"ar_credit_service/internal/usecase/interfaces"
)

// ErrAdvisoryUnavailable marks an advisory call that exhausted its
// retries. It is recovered locally: the assessment proceeds in
// degraded mode and the error never fails a decision.
var ErrAdvisoryUnavailable = errors.New("advisory capability unavailable")

const (
	defaultAdvisoryAttempts    = 3
	defaultAdvisoryBaseBackoff = 500 * time.Millisecond
	defaultAdvisoryCallTimeout = 10 * time.Second
)

// AssessmentAggregator combines a deterministic policy result with the
// external advisory opinion into one CreditAssessment.
//
// The advisory opinion is explanatory only. It never overrides an
// auto_reject or a triggered escalation rule; on auto_approve it may at
// most add a soft-escalation recommendation that stays informational.

type AssessmentAggregator struct {
	gateway     interfaces.IAdvisoryGateway
	attempts    int
	baseBackoff time.Duration
	callTimeout time.Duration
}

func NewAssessmentAggregator(gateway interfaces.IAdvisoryGateway) *AssessmentAggregator {
	return &AssessmentAggregator{
		gateway:     gateway,
		attempts:    defaultAdvisoryAttempts,
		baseBackoff: defaultAdvisoryBaseBackoff,
		callTimeout: defaultAdvisoryCallTimeout,
	}
}

// WithRetryPolicy overrides the advisory retry knobs. Zero values keep
// the current setting.
func (a *AssessmentAggregator) WithRetryPolicy(attempts int, baseBackoff, callTimeout time.Duration) *AssessmentAggregator {
	if attempts > 0 {
		a.attempts = attempts
	}
	if baseBackoff > 0 {
		a.baseBackoff = baseBackoff
	}
	if callTimeout > 0 {
		a.callTimeout = callTimeout
	}
	return a
}

// Aggregate produces the CreditAssessment for one order. The returned
// notes are audit-trail lines for advisory retries, degraded mode and
// informational recommendations; the caller appends them to the
// order's audit log.
func (a *AssessmentAggregator) Aggregate(ctx context.Context, customer entities.Customer, order entities.Order, result entities.PolicyResult) (entities.CreditAssessment, []string) {
	assessment := entities.CreditAssessment{
		OrderID:         order.ID,
		AvailableCredit: result.AvailableCredit,
		ExposureRatio:   result.ExposureRatio,
		RiskFlags:       result.RiskFlags,
		Verdict:         result.Verdict,
		Reasons:         result.Reasons,
	}

	if a.gateway == nil {
		assessment.Degraded = true
		return assessment, []string{"advisory gateway not configured; proceeding in degraded mode"}
	}

	var notes []string
	opinion, err := a.callWithRetries(ctx, customer, order, result, &notes)
	if err != nil {
		log.Printf("[assessment][usecase] advisory exhausted order_id=%s err=%v", order.ID, err)
		assessment.Degraded = true
		notes = append(notes, fmt.Sprintf("advisory unavailable after %d attempts; proceeding in degraded mode", a.attempts))
		return assessment, notes
	}

	assessment.Advisory = &opinion
	if opinion.RecommendEscalate && result.Verdict == entities.VerdictAutoApprove {
		// Informational only: the deterministic verdict stands.
		notes = append(notes, fmt.Sprintf("advisory recommends escalation (informational, confidence=%.2f)", opinion.Confidence))
	}
	return assessment, notes
}

func (a *AssessmentAggregator) callWithRetries(ctx context.Context, customer entities.Customer, order entities.Order, result entities.PolicyResult, notes *[]string) (entities.AdvisoryOpinion, error) {
	var lastErr error
	for attempt := 1; attempt <= a.attempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, a.callTimeout)
		opinion, err := a.gateway.Assess(callCtx, customer, order, result)
		cancel()
		if err == nil {
			return opinion, nil
		}
		lastErr = err
		log.Printf("[assessment][usecase] advisory attempt failed order_id=%s attempt=%d err=%v", order.ID, attempt, err)
		*notes = append(*notes, fmt.Sprintf("advisory attempt %d/%d failed: %v", attempt, a.attempts, err))

		if attempt == a.attempts {
			break
		}
		// Bounded exponential backoff between attempts.
		backoff := a.baseBackoff << (attempt - 1)
		select {
		case <-ctx.Done():
			return entities.AdvisoryOpinion{}, fmt.Errorf("%w: %v", ErrAdvisoryUnavailable, ctx.Err())
		case <-time.After(backoff):
		}
	}
	return entities.AdvisoryOpinion{}, fmt.Errorf("%w: %v", ErrAdvisoryUnavailable, lastErr)
}
