package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"internhub/core/entity"

	"github.com/google/uuid"
)

// NotificationType tags a notification so clients can route it.
type NotificationType string

const (
	NotificationTypeReminder NotificationType = "reminder"
	NotificationTypeSystem   NotificationType = "system"
)

// NotificationData is the free-form payload stored as JSONB alongside a
// notification. Reminder notifications carry event_id, reminder_id, url and
// event_type.
type NotificationData map[string]any

func (d NotificationData) Value() (driver.Value, error) {
	if d == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d)
}

func (d *NotificationData) Scan(src any) error {
	if src == nil {
		*d = NotificationData{}
		return nil
	}
	bytes, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unsupported notification data type %T", src)
	}
	return json.Unmarshal(bytes, d)
}

type Notification struct {
	UserID  uuid.UUID        `db:"user_id" json:"user_id"`
	Title   string           `db:"title" json:"title"`
	Message string           `db:"message" json:"message"`
	Type    NotificationType `db:"type" json:"type"`
	Data    NotificationData `db:"data" json:"data"`
	IsRead  bool             `db:"is_read" json:"is_read"`
	entity.BaseEntity
}

type PaginatedNotificationEntity = entity.Pagination[Notification]
