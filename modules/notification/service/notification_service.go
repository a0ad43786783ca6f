package service

import (
	"context"
	"fmt"

	"internhub/core/errors"
	"internhub/core/logger"
	"internhub/core/params"
	"internhub/core/queue"
	"internhub/modules/notification/dto"
	"internhub/modules/notification/entity"
	"internhub/modules/notification/repository"

	"github.com/google/uuid"
)

type NotificationServiceInterface interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedNotificationResponse, *errors.AppError)
	UnreadCount(ctx context.Context, userID uuid.UUID) (*dto.UnreadCountResponse, *errors.AppError)
	MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) *errors.AppError
	MarkAllRead(ctx context.Context, userID uuid.UUID) *errors.AppError
	DeliverReminder(ctx context.Context, payload queue.ReminderDeliverPayload) error
}

type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) ListNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*dto.PaginatedNotificationResponse, *errors.AppError) {
	page, err := s.repo.ListByUserID(ctx, userID, queryParams)
	if err != nil {
		logger.Error("NotificationService:ListNotifications:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list notifications", err)
	}
	return dto.ToPaginatedNotificationResponse(page), nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (*dto.UnreadCountResponse, *errors.AppError) {
	count, err := s.repo.UnreadCount(ctx, userID)
	if err != nil {
		logger.Error("NotificationService:UnreadCount:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get unread count", err)
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) *errors.AppError {
	if err := s.repo.MarkRead(ctx, id, userID); err != nil {
		logger.Error("NotificationService:MarkRead:Error:", err)
		return errors.NewAppError(errors.ErrUpdateFailed, "Failed to mark notification read", err)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) *errors.AppError {
	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		logger.Error("NotificationService:MarkAllRead:Error:", err)
		return errors.NewAppError(errors.ErrUpdateFailed, "Failed to mark notifications read", err)
	}
	return nil
}

// DeliverReminder turns a due reminder into a stored notification. Called by
// the queue worker; returning an error makes asynq retry the task, and the
// insert is idempotent on the reminder ID.
func (s *NotificationService) DeliverReminder(ctx context.Context, payload queue.ReminderDeliverPayload) error {
	notification := &entity.Notification{
		UserID:  payload.UserID,
		Title:   "Reminder: " + payload.EventTitle,
		Message: reminderMessage(payload),
		Type:    entity.NotificationTypeReminder,
		Data: entity.NotificationData{
			"event_id":    payload.EventID.String(),
			"reminder_id": payload.ReminderID,
			"url":         payload.URL,
			"event_type":  payload.EventType,
		},
	}

	if err := s.repo.CreateReminderNotification(ctx, notification, payload.ReminderID); err != nil {
		logger.Error("NotificationService:DeliverReminder:Error:", err, "reminder_id", payload.ReminderID)
		return err
	}
	return nil
}

func reminderMessage(payload queue.ReminderDeliverPayload) string {
	message := fmt.Sprintf("Your %s starts at %s",
		payload.EventType, payload.EventStart.Format("Mon, 02 Jan 2006 15:04"))
	if payload.Description != "" {
		message += ". " + payload.Description
	}
	return message
}
