package service

import (
	"time"

	"internhub/core/scheduler"
	"internhub/core/utils"
	"internhub/modules/calendar/entity"
)

// ReminderGenerator computes the reminder schedule for an event from its
// type and start time. Generation is total: a start in the past simply
// yields fewer (possibly zero) reminders.
type ReminderGenerator struct {
	clock scheduler.Clock
}

func NewReminderGenerator(clock scheduler.Clock) *ReminderGenerator {
	return &ReminderGenerator{clock: clock}
}

// Generate returns the reminders for an event starting at start. Candidates
// that are not strictly in the future at generation time are dropped, so a
// fresh event can never carry an immediately-due reminder.
//
// Schedule per type, relative to start:
//   - drive:     2 days before at 09:00, 1 day before at 09:00, day-of at 07:00
//   - interview: 1 day before at 18:00, 1 hour before
//   - others:    1 day before at 09:00
//   - all types: 30 minutes before
func (g *ReminderGenerator) Generate(eventType entity.EventType, start time.Time) entity.ReminderList {
	now := g.clock.Now()
	reminders := entity.ReminderList{}

	appendIfFuture := func(t time.Time) {
		if t.After(now) {
			reminders = append(reminders, entity.Reminder{
				ID:        utils.GenerateReminderID(),
				Time:      t,
				Triggered: false,
			})
		}
	}

	switch eventType {
	case entity.EventTypeDrive:
		appendIfFuture(atHour(start.AddDate(0, 0, -2), 9))
		appendIfFuture(atHour(start.AddDate(0, 0, -1), 9))
		appendIfFuture(atHour(start, 7))
	case entity.EventTypeInterview:
		appendIfFuture(atHour(start.AddDate(0, 0, -1), 18))
		appendIfFuture(start.Add(-time.Hour))
	default:
		appendIfFuture(atHour(start.AddDate(0, 0, -1), 9))
	}

	appendIfFuture(start.Add(-30 * time.Minute))

	return reminders
}

// atHour pins t to the given hour of its calendar day, in t's location.
func atHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}
