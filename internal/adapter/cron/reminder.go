// Package cron hosts the background jobs of the credit service. The
// only job today is the review reminder: escalated orders have no
// timeout, so reviewers get nudged about runs that sit awaiting input
// for too long.
package cron

import (
	"context"
	"log"
	"time"

	"ar_credit_service/internal/usecase"

	"github.com/robfig/cron/v3"
)

const (
	defaultReminderSchedule = "@every 1h"
	defaultReminderMinAge   = time.Hour
)

// ReviewReminder periodically re-notifies the review channel about
// runs parked in awaiting_human_input.

type ReviewReminder struct {
	cron     *cron.Cron
	workflow usecase.ICreditWorkflowUseCase
	schedule string
	minAge   time.Duration
	baseCtx  context.Context
}

func NewReviewReminder(workflow usecase.ICreditWorkflowUseCase, schedule string, minAge time.Duration, baseCtx context.Context) *ReviewReminder {
	if schedule == "" {
		schedule = defaultReminderSchedule
	}
	if minAge <= 0 {
		minAge = defaultReminderMinAge
	}
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &ReviewReminder{
		cron:     cron.New(),
		workflow: workflow,
		schedule: schedule,
		minAge:   minAge,
		baseCtx:  baseCtx,
	}
}

func (r *ReviewReminder) Start() error {
	if _, err := r.cron.AddFunc(r.schedule, func() { r.Sweep(r.baseCtx) }); err != nil {
		return err
	}
	r.cron.Start()
	log.Printf("[reminder][cron] started schedule=%q min_age=%s", r.schedule, r.minAge)
	return nil
}

func (r *ReviewReminder) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	log.Printf("[reminder][cron] stopped")
}

// Sweep re-sends the review-required notification for every run that
// has been awaiting input longer than the configured age.
func (r *ReviewReminder) Sweep(ctx context.Context) {
	runs, err := r.workflow.ListAwaitingReview(ctx)
	if err != nil {
		log.Printf("[reminder][cron] sweep failed err=%v", err)
		return
	}

	cutoff := time.Now().UTC().Add(-r.minAge)
	nudged := 0
	for _, run := range runs {
		if run.UpdatedAt.After(cutoff) {
			continue
		}
		if err := r.workflow.RemindReview(ctx, run); err != nil {
			log.Printf("[reminder][cron] remind failed order_id=%s err=%v", run.OrderID, err)
			continue
		}
		nudged++
	}
	if nudged > 0 {
		log.Printf("[reminder][cron] sweep complete pending=%d nudged=%d", len(runs), nudged)
	}
}
