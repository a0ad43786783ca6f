package service

import (
	"context"

	"internhub/core/logger"
	"internhub/core/scheduler"
	"internhub/modules/calendar/entity"
	"internhub/modules/calendar/repository"

	"github.com/google/uuid"
)

// Presenter receives a due reminder together with its event. It must not be
// invoked more than once for the same reminder ID; the scanner enforces that
// by persisting the triggered flag before calling it.
type Presenter interface {
	Present(ctx context.Context, event entity.CalendarEvent, reminder entity.Reminder) error
}

// ReminderScanner delivers at most one due reminder per tick for one user.
// Events are walked in store order and the first untriggered due reminder
// wins; remaining due reminders wait for later ticks.
type ReminderScanner struct {
	userID    uuid.UUID
	repo      repository.CalendarRepositoryInterface
	presenter Presenter
	clock     scheduler.Clock
}

func NewReminderScanner(userID uuid.UUID, repo repository.CalendarRepositoryInterface, presenter Presenter, clock scheduler.Clock) *ReminderScanner {
	return &ReminderScanner{
		userID:    userID,
		repo:      repo,
		presenter: presenter,
		clock:     clock,
	}
}

// Scan performs one tick. A failed triggered-write leaves the reminder
// pending for the next tick and the presenter is not invoked.
func (s *ReminderScanner) Scan(ctx context.Context) error {
	events, err := s.repo.ListByUserID(ctx, s.userID)
	if err != nil {
		logger.Error("ReminderScanner:Scan:List:Error:", err, "user_id", s.userID)
		return err
	}

	now := s.clock.Now()

	for i := range events {
		event := events[i]

		if event.Malformed() {
			logger.Warn("ReminderScanner:Scan:SkipMalformedEvent", "event_id", event.ID)
			continue
		}

		due, ok := event.FirstDueReminder(now)
		if !ok {
			continue
		}

		updated, found := event.WithReminderTriggered(due.ID)
		if !found {
			continue
		}

		// Persist first. Presenting before the write lands would risk a
		// repeat delivery if the write fails.
		if err := s.repo.Update(ctx, &updated); err != nil {
			logger.Error("ReminderScanner:Scan:Update:Error:", err, "event_id", event.ID, "reminder_id", due.ID)
			return err
		}

		if err := s.presenter.Present(ctx, updated, due); err != nil {
			// Triggered is already durable; the presenter owns its own retries.
			logger.Error("ReminderScanner:Scan:Present:Error:", err, "event_id", event.ID, "reminder_id", due.ID)
		}

		// One notification per tick.
		return nil
	}

	return nil
}
