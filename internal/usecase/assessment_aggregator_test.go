package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ar_credit_service/internal/domain/entities"
	mock_interfaces "ar_credit_service/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func aggregatorFixtures() (entities.Customer, entities.Order, entities.PolicyResult) {
	customer := entities.Customer{
		ID:                 "cust-1",
		CreditLimit:        decimal.NewFromInt(200_000),
		OutstandingBalance: decimal.NewFromInt(20_000),
		CreditScore:        720,
		Status:             entities.CustomerStatusNormal,
	}
	order := entities.Order{
		ID:          "ord-1",
		CustomerID:  customer.ID,
		Amount:      decimal.NewFromInt(5_000),
		SubmittedAt: time.Now().UTC(),
	}
	result := entities.PolicyResult{
		Verdict:         entities.VerdictAutoApprove,
		AvailableCredit: decimal.NewFromInt(180_000),
		ExposureRatio:   decimal.RequireFromString("0.125"),
	}
	return customer, order, result
}

func TestAssessmentAggregator_Aggregate(t *testing.T) {
	t.Run("attaches the advisory opinion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		customer, order, result := aggregatorFixtures()
		opinion := entities.AdvisoryOpinion{Note: "low risk", Confidence: 0.9}

		gateway := mock_interfaces.NewMockIAdvisoryGateway(ctrl)
		gateway.EXPECT().Assess(gomock.Any(), customer, order, result).Return(opinion, nil)

		assessment, notes := NewAssessmentAggregator(gateway).Aggregate(context.Background(), customer, order, result)

		if assessment.Degraded {
			t.Fatalf("expected non-degraded assessment")
		}
		if assessment.Advisory == nil || assessment.Advisory.Note != "low risk" {
			t.Fatalf("expected advisory opinion attached, got %+v", assessment.Advisory)
		}
		if assessment.Verdict != entities.VerdictAutoApprove {
			t.Fatalf("expected verdict preserved, got %s", assessment.Verdict)
		}
		if len(notes) != 0 {
			t.Fatalf("expected no notes, got %v", notes)
		}
	})

	t.Run("retries before succeeding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		customer, order, result := aggregatorFixtures()
		opinion := entities.AdvisoryOpinion{Note: "ok", Confidence: 0.7}

		gateway := mock_interfaces.NewMockIAdvisoryGateway(ctrl)
		gomock.InOrder(
			gateway.EXPECT().Assess(gomock.Any(), customer, order, result).Return(entities.AdvisoryOpinion{}, errors.New("timeout")),
			gateway.EXPECT().Assess(gomock.Any(), customer, order, result).Return(opinion, nil),
		)

		aggregator := NewAssessmentAggregator(gateway).WithRetryPolicy(3, time.Millisecond, time.Second)
		assessment, notes := aggregator.Aggregate(context.Background(), customer, order, result)

		if assessment.Degraded {
			t.Fatalf("expected non-degraded assessment")
		}
		if assessment.Advisory == nil || assessment.Advisory.Note != "ok" {
			t.Fatalf("expected advisory opinion attached, got %+v", assessment.Advisory)
		}
		if len(notes) != 1 || !strings.Contains(notes[0], "attempt 1/3 failed") {
			t.Fatalf("expected one retry note, got %v", notes)
		}
	})

	t.Run("degrades after exhausting retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		customer, order, result := aggregatorFixtures()

		gateway := mock_interfaces.NewMockIAdvisoryGateway(ctrl)
		gateway.EXPECT().Assess(gomock.Any(), customer, order, result).
			Return(entities.AdvisoryOpinion{}, errors.New("unreachable")).Times(3)

		aggregator := NewAssessmentAggregator(gateway).WithRetryPolicy(3, time.Millisecond, time.Second)
		assessment, notes := aggregator.Aggregate(context.Background(), customer, order, result)

		if !assessment.Degraded {
			t.Fatalf("expected degraded assessment")
		}
		if assessment.Advisory != nil {
			t.Fatalf("expected no advisory opinion, got %+v", assessment.Advisory)
		}
		if assessment.Verdict != entities.VerdictAutoApprove {
			t.Fatalf("expected deterministic verdict preserved, got %s", assessment.Verdict)
		}
		if len(notes) != 4 || !strings.Contains(notes[3], "degraded mode") {
			t.Fatalf("expected retry notes plus degraded note, got %v", notes)
		}
	})

	t.Run("soft escalation stays informational", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		customer, order, result := aggregatorFixtures()
		opinion := entities.AdvisoryOpinion{Note: "unusual pattern", Confidence: 0.55, RecommendEscalate: true}

		gateway := mock_interfaces.NewMockIAdvisoryGateway(ctrl)
		gateway.EXPECT().Assess(gomock.Any(), customer, order, result).Return(opinion, nil)

		assessment, notes := NewAssessmentAggregator(gateway).Aggregate(context.Background(), customer, order, result)

		if assessment.Verdict != entities.VerdictAutoApprove {
			t.Fatalf("expected advisory not to override the verdict, got %s", assessment.Verdict)
		}
		if len(notes) != 1 || !strings.Contains(notes[0], "informational") {
			t.Fatalf("expected informational note, got %v", notes)
		}
	})

	t.Run("nil gateway runs degraded", func(t *testing.T) {
		customer, order, result := aggregatorFixtures()

		assessment, notes := NewAssessmentAggregator(nil).Aggregate(context.Background(), customer, order, result)

		if !assessment.Degraded {
			t.Fatalf("expected degraded assessment")
		}
		if len(notes) != 1 || !strings.Contains(notes[0], "not configured") {
			t.Fatalf("expected configuration note, got %v", notes)
		}
	})
}
