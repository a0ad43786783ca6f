package service

import (
	"context"

	"internhub/core/errors"
	"internhub/core/scheduler"
	"internhub/modules/calendar/dto"
	"internhub/modules/calendar/entity"
	"internhub/modules/calendar/repository"

	"github.com/google/uuid"
)

// CalendarServiceInterface defines the service contract
type CalendarServiceInterface interface {
	CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	GetMyEvents(ctx context.Context, userID uuid.UUID) ([]dto.EventResponse, *errors.AppError)
	GetEventByID(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*dto.EventResponse, *errors.AppError)
	UpdateEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError)
	DeleteEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) *errors.AppError
	MarkCompleted(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*dto.EventResponse, *errors.AppError)
}

// CalendarService handles calendar event business logic. Reminder schedules
// are computed server-side on create and on every edit of the event's
// title, times or type.
type CalendarService struct {
	repo      repository.CalendarRepositoryInterface
	generator *ReminderGenerator
}

func NewCalendarService(repo repository.CalendarRepositoryInterface, clock scheduler.Clock) CalendarServiceInterface {
	return &CalendarService{
		repo:      repo,
		generator: NewReminderGenerator(clock),
	}
}

func (s *CalendarService) CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	eventType := entity.EventType(req.Type)
	if !eventType.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown event type", nil)
	}
	if req.Title == "" || req.Start.IsZero() || req.End.IsZero() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "title, start and end are required", nil)
	}

	event := &entity.CalendarEvent{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Start:       req.Start,
		End:         req.End,
		Type:        eventType,
		Status:      entity.EventStatusUpcoming,
		Reminders:   s.generator.Generate(eventType, req.Start),
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create event", err)
	}

	return dto.ToEventResponse(created), nil
}

func (s *CalendarService) GetMyEvents(ctx context.Context, userID uuid.UUID) ([]dto.EventResponse, *errors.AppError) {
	events, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get events", err)
	}
	return dto.ToEventResponses(events), nil
}

func (s *CalendarService) GetEventByID(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, userID, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return dto.ToEventResponse(event), nil
}

// UpdateEvent applies an edit and regenerates the full reminder sequence,
// replacing the old one. Status resets to upcoming; the reconciler re-derives
// it on its next tick.
func (s *CalendarService) UpdateEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, userID, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.URL != "" {
		event.URL = req.URL
	}
	if !req.Start.IsZero() {
		event.Start = req.Start
	}
	if !req.End.IsZero() {
		event.End = req.End
	}
	if req.Type != "" {
		eventType := entity.EventType(req.Type)
		if !eventType.Valid() {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown event type", nil)
		}
		event.Type = eventType
	}

	event.Status = entity.EventStatusUpcoming
	event.Reminders = s.generator.Generate(event.Type, event.Start)

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to update event", err)
	}

	return dto.ToEventResponse(event), nil
}

func (s *CalendarService) DeleteEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) *errors.AppError {
	event, err := s.repo.GetByID(ctx, userID, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "Failed to get event", err)
	}
	if event == nil {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	// Reminders live on the event row, so they are gone with it.
	if err := s.repo.Delete(ctx, userID, eventID); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "Failed to delete event", err)
	}
	return nil
}

// MarkCompleted sets the terminal completed status. Allowed from both
// upcoming and past; the reconciler never touches a completed event again.
func (s *CalendarService) MarkCompleted(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, userID, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	event.Status = entity.EventStatusCompleted
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to update event", err)
	}

	return dto.ToEventResponse(event), nil
}
