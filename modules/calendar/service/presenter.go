package service

import (
	"context"

	"internhub/core/queue"
	"internhub/modules/calendar/entity"
)

// QueuePresenter hands due reminders to the notification worker through the
// task queue. Delivery is keyed by reminder ID, so a task for an already
// delivered reminder is dropped by the queue rather than duplicated.
type QueuePresenter struct {
	queue queue.IQueue
}

func NewQueuePresenter(q queue.IQueue) *QueuePresenter {
	return &QueuePresenter{queue: q}
}

func (p *QueuePresenter) Present(ctx context.Context, event entity.CalendarEvent, reminder entity.Reminder) error {
	return p.queue.EnqueueReminderDeliver(queue.ReminderDeliverPayload{
		UserID:       event.UserID,
		EventID:      event.ID,
		EventTitle:   event.Title,
		EventType:    string(event.Type),
		Description:  event.Description,
		URL:          event.URL,
		EventStart:   event.Start,
		ReminderID:   reminder.ID,
		ReminderTime: reminder.Time,
	})
}
