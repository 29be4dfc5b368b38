package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"ar_credit_service/internal/domain/entities"
	"ar_credit_service/internal/domain/policy"
	"ar_credit_service/internal/domain/workflow"
	"ar_credit_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidCustomerID  = errors.New("invalid customer_id")
	ErrInvalidOrderAmount = errors.New("invalid order amount")
	ErrInvalidRationale   = errors.New("invalid review rationale")
	ErrInvalidHumanStatus = errors.New("invalid review status")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrDecisionNotFound   = errors.New("decision not found")
)

// EvaluationOutcome is what one EvaluateOrder call produced. Decision
// is nil while the run is still open (assessing or parked awaiting
// human input).

type EvaluationOutcome struct {
	Run      entities.WorkflowRun
	Decision *entities.Decision
}

// ICreditWorkflowUseCase exposes the credit decision workflow.
//
// Operations map to the accounts-receivable flow:
//   - order intake + automated credit check => EvaluateOrder()
//   - management review of an escalation   => SubmitHumanDecision()
//   - decision/audit trail lookups         => GetDecision()/GetAuditTrail()

type ICreditWorkflowUseCase interface {
	EvaluateOrder(ctx context.Context, order entities.Order) (EvaluationOutcome, error)
	SubmitHumanDecision(ctx context.Context, orderID string, status entities.DecisionStatus, rationale string) (entities.Decision, error)
	GetDecision(ctx context.Context, orderID string) (entities.Decision, error)
	GetRun(ctx context.Context, orderID string) (entities.WorkflowRun, error)
	GetAuditTrail(ctx context.Context, orderID string) ([]entities.AuditRecord, error)
	ListAwaitingReview(ctx context.Context) ([]entities.WorkflowRun, error)
	RemindReview(ctx context.Context, run entities.WorkflowRun) error
}

const defaultReservationTTL = 15 * time.Minute

// reservation is headroom claimed for one approved order until the
// customer master absorbs it. Entries expire: the master is expected
// to reflect an approval well inside the TTL, and counting the amount
// in both places past that point would reject valid orders.

type reservation struct {
	amount  decimal.Decimal
	expires time.Time
}

// CreditWorkflowUseCase drives one workflow run per order through the
// state machine.
//
// Concurrency model: runs for different orders proceed independently,
// while submissions for the same order serialize on that order's lock,
// so a concurrent duplicate waits and then takes the idempotent path.
// The balance snapshot, policy evaluation and headroom reservation for
// one customer happen under that customer's lock; the advisory call
// runs outside any lock so a hung advisory endpoint cannot stall other
// orders of the same customer.

type CreditWorkflowUseCase struct {
	customers    interfaces.ICustomerProvider
	runRepo      interfaces.IWorkflowRunRepository
	decisionRepo interfaces.IDecisionRepository
	auditRepo    interfaces.IAuditLogRepository
	notifier     interfaces.INotifier
	evaluator    *policy.Evaluator
	aggregator   *AssessmentAggregator

	// Per-customer serialization of balance read + reservation.
	customerLocks keyedMutex
	// Per-order serialization of submissions and resumes.
	orderLocks keyedMutex

	// reserved is headroom claimed by orders approved in this process
	// that the customer master has not absorbed yet.
	reservedMu     sync.Mutex
	reserved       map[string][]reservation
	reservationTTL time.Duration
}

var _ ICreditWorkflowUseCase = (*CreditWorkflowUseCase)(nil)

func NewCreditWorkflowUseCase(
	customers interfaces.ICustomerProvider,
	runRepo interfaces.IWorkflowRunRepository,
	decisionRepo interfaces.IDecisionRepository,
	auditRepo interfaces.IAuditLogRepository,
	notifier interfaces.INotifier,
	evaluator *policy.Evaluator,
	aggregator *AssessmentAggregator,
) *CreditWorkflowUseCase {
	return &CreditWorkflowUseCase{
		customers:      customers,
		runRepo:        runRepo,
		decisionRepo:   decisionRepo,
		auditRepo:      auditRepo,
		notifier:       notifier,
		evaluator:      evaluator,
		aggregator:     aggregator,
		reserved:       map[string][]reservation{},
		reservationTTL: defaultReservationTTL,
	}
}

// WithReservationTTL overrides how long approved amounts stay on the
// in-process ledger before the customer master is trusted to carry
// them. Zero keeps the current setting.
func (u *CreditWorkflowUseCase) WithReservationTTL(ttl time.Duration) *CreditWorkflowUseCase {
	if ttl > 0 {
		u.reservationTTL = ttl
	}
	return u
}

func (u *CreditWorkflowUseCase) EvaluateOrder(ctx context.Context, order entities.Order) (EvaluationOutcome, error) {
	order.ID = strings.TrimSpace(order.ID)
	order.CustomerID = strings.TrimSpace(order.CustomerID)
	log.Printf("[workflow][usecase] evaluate start order_id=%s customer_id=%s amount=%s", order.ID, order.CustomerID, order.Amount)

	if order.ID == "" {
		return EvaluationOutcome{}, ErrInvalidOrderID
	}
	if order.CustomerID == "" {
		return EvaluationOutcome{}, ErrInvalidCustomerID
	}
	if !order.Amount.IsPositive() {
		return EvaluationOutcome{}, ErrInvalidOrderAmount
	}
	if order.SubmittedAt.IsZero() {
		order.SubmittedAt = time.Now().UTC()
	}

	// One submission per order at a time: a concurrent duplicate waits
	// here and then takes the idempotent path below.
	unlock := u.orderLocks.lock(order.ID)
	defer unlock()

	// Idempotency: a decided order returns its stored decision.
	stored, err := u.decisionRepo.GetByOrderID(ctx, order.ID)
	if err != nil {
		return EvaluationOutcome{}, err
	}
	if stored.OrderID != "" {
		run, err := u.runRepo.GetByOrderID(ctx, order.ID)
		if err != nil {
			return EvaluationOutcome{}, err
		}
		if run.OrderID != "" && !workflow.Terminal(run.State) {
			// The decision exists but an earlier attempt failed before
			// the run reached its terminal state. Finish that move now.
			u.completeRun(ctx, &run, stored)
		}
		log.Printf("[workflow][usecase] evaluate idempotent-hit order_id=%s state=%s", order.ID, run.State)
		return EvaluationOutcome{Run: run, Decision: &stored}, nil
	}

	run, err := u.runRepo.GetByOrderID(ctx, order.ID)
	if err != nil {
		return EvaluationOutcome{}, err
	}
	switch {
	case run.OrderID == "":
		// New order.
	case run.State == workflow.StateAwaitingHumanInput:
		log.Printf("[workflow][usecase] evaluate idempotent-hit order_id=%s state=%s", order.ID, run.State)
		return EvaluationOutcome{Run: run}, nil
	default:
		// An earlier attempt failed mid-assessment. The retry re-drives
		// the run from its persisted state; the stored amount and
		// customer are the source of truth, not the resubmitted payload.
		log.Printf("[workflow][usecase] resuming interrupted run order_id=%s state=%s", order.ID, run.State)
		order.CustomerID = run.CustomerID
		order.Amount = run.Amount
	}

	customer, err := u.customers.GetByID(ctx, order.CustomerID)
	if err != nil {
		return EvaluationOutcome{}, err
	}
	if customer.ID == "" {
		log.Printf("[workflow][usecase] customer not found order_id=%s customer_id=%s", order.ID, order.CustomerID)
		return EvaluationOutcome{}, ErrCustomerNotFound
	}
	if err := policy.ValidateInput(customer, order); err != nil {
		return EvaluationOutcome{}, err
	}

	if run.OrderID == "" {
		run, err = u.openRun(ctx, order)
		if err != nil {
			return EvaluationOutcome{}, err
		}
		if run.State != workflow.StateReceived && run.State != workflow.StateAssessing {
			// The conditional create lost against another process that
			// already drove this order past assessment.
			stored, err := u.decisionRepo.GetByOrderID(ctx, order.ID)
			if err != nil {
				return EvaluationOutcome{}, err
			}
			outcome := EvaluationOutcome{Run: run}
			if stored.OrderID != "" {
				outcome.Decision = &stored
			}
			return outcome, nil
		}
	}
	if run.State == workflow.StateReceived {
		if err := u.transition(ctx, &run, workflow.StateAssessing, "automated credit assessment started"); err != nil {
			return EvaluationOutcome{}, err
		}
	}

	result, reserved, err := u.evaluateUnderCustomerLock(customer, order)
	if err != nil {
		return EvaluationOutcome{}, err
	}

	assessment, notes := u.aggregator.Aggregate(ctx, customer, order, result)
	for _, note := range notes {
		u.audit(ctx, &run, run.State, run.State, note)
	}
	run.Assessment = &assessment

	outcome, err := u.settle(ctx, run, order, assessment, reserved)
	if err != nil {
		// Keep the reservation when the decision itself was recorded:
		// the approval durably exists, only the run move is behind and
		// the retry path completes it.
		if reserved && !u.decisionRecorded(ctx, order.ID) {
			u.release(order.CustomerID, order.Amount)
		}
		return EvaluationOutcome{}, err
	}
	return outcome, nil
}

// openRun persists the run record before any evaluation work so a
// crash cannot orphan an in-flight order silently.
func (u *CreditWorkflowUseCase) openRun(ctx context.Context, order entities.Order) (entities.WorkflowRun, error) {
	now := time.Now().UTC()
	run := entities.WorkflowRun{
		ID:         uuid.NewString(),
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Amount:     order.Amount,
		State:      workflow.StateReceived,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.runRepo.Create(ctx, run)
	if err != nil {
		return entities.WorkflowRun{}, fmt.Errorf("create workflow run: %w", err)
	}
	if created.OrderID == "" {
		// Conditional put lost against a concurrent submission.
		return u.runRepo.GetByOrderID(ctx, order.ID)
	}
	run = created
	u.audit(ctx, &run, workflow.StateReceived, workflow.StateReceived, "order received")
	return run, nil
}

// completeRun finishes an interrupted finalize: the decision is stored
// but the run never reached its terminal state. Failures are logged,
// not fatal; the decision stands either way and the next retry tries
// the move again.
func (u *CreditWorkflowUseCase) completeRun(ctx context.Context, run *entities.WorkflowRun, decision entities.Decision) {
	if run.State == workflow.StateReceived {
		if err := u.transition(ctx, run, workflow.StateAssessing, "automated credit assessment started"); err != nil {
			log.Printf("[workflow][usecase] complete run failed order_id=%s err=%v", run.OrderID, err)
			return
		}
	}
	target := workflow.StateApproved
	if decision.Status == entities.DecisionStatusRejected {
		target = workflow.StateRejected
	}
	details := fmt.Sprintf("decision %s (%s): %s", decision.Status, decision.Origin, strings.Join(decision.Reasons, "; "))
	if err := u.transition(ctx, run, target, details); err != nil {
		log.Printf("[workflow][usecase] complete run failed order_id=%s err=%v", run.OrderID, err)
	}
}

// decisionRecorded reports whether a terminal decision for the order
// is durably stored. On a lookup failure the reservation is kept; the
// retry path reconciles.
func (u *CreditWorkflowUseCase) decisionRecorded(ctx context.Context, orderID string) bool {
	stored, err := u.decisionRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return true
	}
	return stored.OrderID != ""
}

// evaluateUnderCustomerLock takes the customer's lock, overlays the
// in-process reservations on the master balance, runs the policy rules
// and, for a provisional approval, reserves the order amount before the
// lock is released. reserved tells the caller it must release on a
// later failure.
func (u *CreditWorkflowUseCase) evaluateUnderCustomerLock(customer entities.Customer, order entities.Order) (entities.PolicyResult, bool, error) {
	unlock := u.customerLocks.lock(customer.ID)
	defer unlock()

	effective := customer
	effective.OutstandingBalance = customer.OutstandingBalance.Add(u.reservedFor(customer.ID))

	result, err := u.evaluator.Evaluate(effective, order)
	if err != nil {
		return entities.PolicyResult{}, false, err
	}
	if result.Verdict == entities.VerdictAutoApprove {
		u.reserve(customer.ID, order.Amount)
		return result, true, nil
	}
	return result, false, nil
}

// settle finishes the run after assessment: terminal decision for
// auto verdicts, durable suspension for escalations.
func (u *CreditWorkflowUseCase) settle(ctx context.Context, run entities.WorkflowRun, order entities.Order, assessment entities.CreditAssessment, reserved bool) (EvaluationOutcome, error) {
	switch assessment.Verdict {
	case entities.VerdictAutoApprove:
		decision, updated, err := u.finalize(ctx, run, workflow.StateApproved, entities.Decision{
			OrderID:    order.ID,
			Status:     entities.DecisionStatusApproved,
			Reasons:    []string{"within credit policy"},
			Origin:     entities.DecisionOriginPolicy,
			Assessment: assessment,
		})
		if err != nil {
			return EvaluationOutcome{}, err
		}
		return EvaluationOutcome{Run: updated, Decision: &decision}, nil

	case entities.VerdictAutoReject:
		decision, updated, err := u.finalize(ctx, run, workflow.StateRejected, entities.Decision{
			OrderID:    order.ID,
			Status:     entities.DecisionStatusRejected,
			Reasons:    assessment.Reasons,
			Origin:     entities.DecisionOriginPolicy,
			Assessment: assessment,
		})
		if err != nil {
			return EvaluationOutcome{}, err
		}
		return EvaluationOutcome{Run: updated, Decision: &decision}, nil

	default: // must_escalate
		details := "escalated for review: " + strings.Join(assessment.Reasons, "; ")
		if err := u.transition(ctx, &run, workflow.StateAwaitingHumanInput, details); err != nil {
			// A run we cannot park durably is fatal: the caller must
			// retry, a pending escalation is never dropped silently.
			return EvaluationOutcome{}, err
		}
		log.Printf("[workflow][usecase] awaiting human input order_id=%s reasons=%q", run.OrderID, assessment.Reasons)
		if u.notifier != nil {
			if err := u.notifier.NotifyReviewRequired(ctx, run, assessment.Reasons); err != nil {
				log.Printf("[workflow][usecase] review notification failed order_id=%s err=%v", run.OrderID, err)
			}
		}
		return EvaluationOutcome{Run: run}, nil
	}
}

// finalize writes the terminal Decision (exactly once) and then moves
// the run into its terminal state.
func (u *CreditWorkflowUseCase) finalize(ctx context.Context, run entities.WorkflowRun, state workflow.State, decision entities.Decision) (entities.Decision, entities.WorkflowRun, error) {
	decision.DecidedAt = time.Now().UTC()
	created, err := u.decisionRepo.Create(ctx, decision)
	if err != nil {
		return entities.Decision{}, entities.WorkflowRun{}, fmt.Errorf("persist decision: %w", err)
	}
	if created.OrderID == "" {
		// A decision already exists; keep it, never write a second one.
		stored, err := u.decisionRepo.GetByOrderID(ctx, decision.OrderID)
		if err != nil {
			return entities.Decision{}, entities.WorkflowRun{}, err
		}
		created = stored
	}

	details := fmt.Sprintf("decision %s (%s): %s", created.Status, created.Origin, strings.Join(created.Reasons, "; "))
	if err := u.transition(ctx, &run, state, details); err != nil {
		return entities.Decision{}, entities.WorkflowRun{}, err
	}
	log.Printf("[workflow][usecase] decision recorded order_id=%s status=%s origin=%s", created.OrderID, created.Status, created.Origin)

	if u.notifier != nil {
		if err := u.notifier.NotifyDecision(ctx, created); err != nil {
			log.Printf("[workflow][usecase] decision notification failed order_id=%s err=%v", created.OrderID, err)
		}
	}
	return created, run, nil
}

func (u *CreditWorkflowUseCase) SubmitHumanDecision(ctx context.Context, orderID string, status entities.DecisionStatus, rationale string) (entities.Decision, error) {
	orderID = strings.TrimSpace(orderID)
	rationale = strings.TrimSpace(rationale)
	log.Printf("[review][usecase] human decision start order_id=%s status=%s", orderID, status)

	if orderID == "" {
		return entities.Decision{}, ErrInvalidOrderID
	}
	if status != entities.DecisionStatusApproved && status != entities.DecisionStatusRejected {
		return entities.Decision{}, ErrInvalidHumanStatus
	}
	if rationale == "" {
		return entities.Decision{}, ErrInvalidRationale
	}

	unlock := u.orderLocks.lock(orderID)
	defer unlock()

	run, err := u.runRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Decision{}, err
	}
	if run.OrderID == "" {
		return entities.Decision{}, ErrOrderNotFound
	}

	target := workflow.StateApproved
	if status == entities.DecisionStatusRejected {
		target = workflow.StateRejected
	}
	if err := workflow.Transition(run.State, target); err != nil {
		log.Printf("[review][usecase] invalid resume order_id=%s state=%s err=%v", orderID, run.State, err)
		return entities.Decision{}, err
	}

	var assessment entities.CreditAssessment
	var reasons []string
	if run.Assessment != nil {
		assessment = *run.Assessment
		reasons = assessment.Reasons
	}

	decision := entities.Decision{
		OrderID:    orderID,
		Status:     status,
		Reasons:    reasons,
		Origin:     entities.DecisionOriginHuman,
		Rationale:  rationale,
		Assessment: assessment,
	}

	if status == entities.DecisionStatusApproved {
		// The reviewer extended credit: claim the headroom so
		// concurrent evaluations see it.
		unlockCustomer := u.customerLocks.lock(run.CustomerID)
		u.reserve(run.CustomerID, run.Amount)
		unlockCustomer()
	}

	created, _, err := u.finalize(ctx, run, target, decision)
	if err != nil {
		if status == entities.DecisionStatusApproved && !u.decisionRecorded(ctx, orderID) {
			u.release(run.CustomerID, run.Amount)
		}
		return entities.Decision{}, err
	}
	return created, nil
}

func (u *CreditWorkflowUseCase) GetDecision(ctx context.Context, orderID string) (entities.Decision, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Decision{}, ErrInvalidOrderID
	}
	d, err := u.decisionRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Decision{}, err
	}
	if d.OrderID == "" {
		return entities.Decision{}, ErrDecisionNotFound
	}
	return d, nil
}

func (u *CreditWorkflowUseCase) GetRun(ctx context.Context, orderID string) (entities.WorkflowRun, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.WorkflowRun{}, ErrInvalidOrderID
	}
	run, err := u.runRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.WorkflowRun{}, err
	}
	if run.OrderID == "" {
		return entities.WorkflowRun{}, ErrOrderNotFound
	}
	return run, nil
}

func (u *CreditWorkflowUseCase) GetAuditTrail(ctx context.Context, orderID string) ([]entities.AuditRecord, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.auditRepo.ListByOrderID(ctx, orderID)
}

func (u *CreditWorkflowUseCase) ListAwaitingReview(ctx context.Context) ([]entities.WorkflowRun, error) {
	return u.runRepo.ListAwaitingHumanInput(ctx)
}

// RemindReview re-sends the review-required notification for a run
// still parked awaiting input. Used by the reminder sweep.
func (u *CreditWorkflowUseCase) RemindReview(ctx context.Context, run entities.WorkflowRun) error {
	if run.State != workflow.StateAwaitingHumanInput {
		return fmt.Errorf("%w: remind on state %s", workflow.ErrInvalidTransition, run.State)
	}
	if u.notifier == nil {
		return nil
	}
	var reasons []string
	if run.Assessment != nil {
		reasons = run.Assessment.Reasons
	}
	return u.notifier.NotifyReviewRequired(ctx, run, reasons)
}

// transition validates, records and persists one state change. Storage
// failures leave the in-memory run untouched and are surfaced to the
// caller.
func (u *CreditWorkflowUseCase) transition(ctx context.Context, run *entities.WorkflowRun, to workflow.State, details string) error {
	if err := workflow.Transition(run.State, to); err != nil {
		return err
	}
	from := run.State
	updated := *run
	updated.AppendStep(to, details, time.Now().UTC())

	saved, err := u.runRepo.Save(ctx, updated)
	if err != nil {
		return fmt.Errorf("persist workflow run %s -> %s: %w", from, to, err)
	}
	*run = saved
	u.audit(ctx, run, from, to, details)
	return nil
}

// audit appends to the order's trail. Audit failures are logged, not
// fatal: the run history carries the same information.
func (u *CreditWorkflowUseCase) audit(ctx context.Context, run *entities.WorkflowRun, from, to workflow.State, details string) {
	rec := entities.AuditRecord{
		OrderID:   run.OrderID,
		FromState: from,
		ToState:   to,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
	if err := u.auditRepo.Append(ctx, rec); err != nil {
		log.Printf("[audit][usecase] append failed order_id=%s details=%q err=%v", run.OrderID, details, err)
	}
}

func (u *CreditWorkflowUseCase) reservedFor(customerID string) decimal.Decimal {
	u.reservedMu.Lock()
	defer u.reservedMu.Unlock()

	now := time.Now()
	kept := u.reserved[customerID][:0]
	total := decimal.Zero
	for _, r := range u.reserved[customerID] {
		if now.After(r.expires) {
			continue
		}
		kept = append(kept, r)
		total = total.Add(r.amount)
	}
	if len(kept) == 0 {
		delete(u.reserved, customerID)
	} else {
		u.reserved[customerID] = kept
	}
	return total
}

func (u *CreditWorkflowUseCase) reserve(customerID string, amount decimal.Decimal) {
	u.reservedMu.Lock()
	defer u.reservedMu.Unlock()
	u.reserved[customerID] = append(u.reserved[customerID], reservation{
		amount:  amount,
		expires: time.Now().Add(u.reservationTTL),
	})
}

func (u *CreditWorkflowUseCase) release(customerID string, amount decimal.Decimal) {
	u.reservedMu.Lock()
	defer u.reservedMu.Unlock()
	entries := u.reserved[customerID]
	for i, r := range entries {
		if r.amount.Equal(amount) {
			u.reserved[customerID] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// keyedMutex hands out one mutex per key (customer or order id).

type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = map[string]*sync.Mutex{}
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
