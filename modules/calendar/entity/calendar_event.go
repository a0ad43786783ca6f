package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"internhub/core/entity"

	"github.com/google/uuid"
)

// EventType determines which reminder schedule an event gets.
type EventType string

const (
	EventTypeInterview EventType = "interview"
	EventTypeDrive     EventType = "drive"
	EventTypeDeadline  EventType = "deadline"
	EventTypeReminder  EventType = "reminder"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeInterview, EventTypeDrive, EventTypeDeadline, EventTypeReminder:
		return true
	}
	return false
}

// EventStatus is the lifecycle state of an event. "completed" is set by the
// user and is terminal; "upcoming" and "past" are re-derived from the clock.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusCompleted EventStatus = "completed"
	EventStatusPast      EventStatus = "past"
)

// Reminder is a single scheduled notification owned by one event. Triggered
// moves false -> true exactly once and never back.
type Reminder struct {
	ID        string    `json:"id"`
	Time      time.Time `json:"time"`
	Triggered bool      `json:"triggered"`
}

// ReminderList is stored as a JSONB column on the event row, so an event and
// its reminders are always written together in one statement.
type ReminderList []Reminder

func (l ReminderList) Value() (driver.Value, error) {
	if l == nil {
		l = ReminderList{}
	}
	return json.Marshal(l)
}

func (l *ReminderList) Scan(value any) error {
	if value == nil {
		*l = ReminderList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, l)
}

type CalendarEvent struct {
	UserID      uuid.UUID    `db:"user_id" json:"user_id"`
	Title       string       `db:"title" json:"title"`
	Description string       `db:"description" json:"description"`
	URL         string       `db:"url" json:"url"`
	Start       time.Time    `db:"start_time" json:"start"`
	End         time.Time    `db:"end_time" json:"end"`
	Type        EventType    `db:"type" json:"type"`
	Status      EventStatus  `db:"status" json:"status"`
	Reminders   ReminderList `db:"reminders" json:"reminders"`
	entity.BaseEntity
}

// Malformed reports an event the scan and reconcile loops must skip
// instead of acting on.
func (e *CalendarEvent) Malformed() bool {
	return e.Start.IsZero() || e.End.IsZero()
}

// FirstDueReminder returns the first reminder in list order that is due at
// now and not yet triggered.
func (e *CalendarEvent) FirstDueReminder(now time.Time) (Reminder, bool) {
	for _, r := range e.Reminders {
		if !r.Triggered && !r.Time.After(now) {
			return r, true
		}
	}
	return Reminder{}, false
}

// WithReminderTriggered returns a copy of the event with the given reminder
// marked triggered. Reports whether the reminder was found.
func (e *CalendarEvent) WithReminderTriggered(reminderID string) (CalendarEvent, bool) {
	updated := *e
	updated.Reminders = make(ReminderList, len(e.Reminders))
	copy(updated.Reminders, e.Reminders)

	for i := range updated.Reminders {
		if updated.Reminders[i].ID == reminderID {
			updated.Reminders[i].Triggered = true
			return updated, true
		}
	}
	return updated, false
}
