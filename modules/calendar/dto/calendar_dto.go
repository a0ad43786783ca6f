package dto

import (
	"time"

	"internhub/modules/calendar/entity"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Start       time.Time `json:"start" validate:"required"`
	End         time.Time `json:"end" validate:"required"`
	Type        string    `json:"type" validate:"required"`
}

type UpdateEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Type        string    `json:"type"`
}

type ReminderResponse struct {
	ID        string    `json:"id"`
	Time      time.Time `json:"time"`
	Triggered bool      `json:"triggered"`
}

type EventResponse struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	URL         string             `json:"url,omitempty"`
	Start       time.Time          `json:"start"`
	End         time.Time          `json:"end"`
	Type        string             `json:"type"`
	Status      string             `json:"status"`
	Reminders   []ReminderResponse `json:"reminders"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func ToEventResponse(event *entity.CalendarEvent) *EventResponse {
	reminders := make([]ReminderResponse, 0, len(event.Reminders))
	for _, r := range event.Reminders {
		reminders = append(reminders, ReminderResponse{
			ID:        r.ID,
			Time:      r.Time,
			Triggered: r.Triggered,
		})
	}

	return &EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		URL:         event.URL,
		Start:       event.Start,
		End:         event.End,
		Type:        string(event.Type),
		Status:      string(event.Status),
		Reminders:   reminders,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}

func ToEventResponses(events []entity.CalendarEvent) []EventResponse {
	result := make([]EventResponse, 0, len(events))
	for i := range events {
		result = append(result, *ToEventResponse(&events[i]))
	}
	return result
}
