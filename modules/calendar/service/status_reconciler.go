package service

import (
	"context"

	"internhub/core/logger"
	"internhub/core/scheduler"
	"internhub/modules/calendar/entity"
	"internhub/modules/calendar/repository"

	"github.com/google/uuid"
)

// StatusReconciler re-derives event lifecycle status from the clock on each
// tick. "completed" is user-set and sticky; only "upcoming" and "past" are
// recomputed.
type StatusReconciler struct {
	userID uuid.UUID
	repo   repository.CalendarRepositoryInterface
	clock  scheduler.Clock
}

func NewStatusReconciler(userID uuid.UUID, repo repository.CalendarRepositoryInterface, clock scheduler.Clock) *StatusReconciler {
	return &StatusReconciler{
		userID: userID,
		repo:   repo,
		clock:  clock,
	}
}

// Reconcile performs one tick over all of the user's events. A failing
// update is logged and skipped; it does not stop the pass.
func (r *StatusReconciler) Reconcile(ctx context.Context) error {
	events, err := r.repo.ListByUserID(ctx, r.userID)
	if err != nil {
		logger.Error("StatusReconciler:Reconcile:List:Error:", err, "user_id", r.userID)
		return err
	}

	now := r.clock.Now()

	for i := range events {
		event := events[i]

		if event.Malformed() {
			logger.Warn("StatusReconciler:Reconcile:SkipMalformedEvent", "event_id", event.ID)
			continue
		}
		if event.Status == entity.EventStatusCompleted {
			continue
		}

		newStatus := event.Status
		if event.End.Before(now) {
			newStatus = entity.EventStatusPast
		} else if event.Start.After(now) {
			newStatus = entity.EventStatusUpcoming
		}

		if newStatus == event.Status {
			continue
		}

		event.Status = newStatus
		if err := r.repo.Update(ctx, &event); err != nil {
			logger.Error("StatusReconciler:Reconcile:Update:Error:", err, "event_id", event.ID)
			continue
		}
	}

	return nil
}
