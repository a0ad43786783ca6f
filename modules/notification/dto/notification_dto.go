package dto

import (
	"time"

	"internhub/modules/notification/entity"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID               `json:"id"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Type      string                  `json:"type"`
	Data      entity.NotificationData `json:"data"`
	IsRead    bool                    `json:"is_read"`
	CreatedAt time.Time               `json:"created_at"`
}

type PaginatedNotificationResponse struct {
	Items      []NotificationResponse `json:"items"`
	TotalItems int                    `json:"total_items"`
	PageNumber int                    `json:"page_number"`
	PageSize   int                    `json:"page_size"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

func ToNotificationResponse(notification *entity.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        notification.ID,
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      string(notification.Type),
		Data:      notification.Data,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}

func ToPaginatedNotificationResponse(page *entity.PaginatedNotificationEntity) *PaginatedNotificationResponse {
	items := make([]NotificationResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *ToNotificationResponse(&page.Items[i]))
	}
	return &PaginatedNotificationResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}
