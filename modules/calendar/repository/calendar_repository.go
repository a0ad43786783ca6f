package repository

import (
	"context"
	"database/sql"

	"internhub/core/database"
	"internhub/core/logger"
	"internhub/modules/calendar/entity"

	"github.com/google/uuid"
)

// CalendarRepositoryInterface is the event store contract the reminder
// engine runs against: list, create, update, delete with read-your-writes.
type CalendarRepositoryInterface interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.CalendarEvent, error)
	GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*entity.CalendarEvent, error)
	Create(ctx context.Context, event *entity.CalendarEvent) (*entity.CalendarEvent, error)
	Update(ctx context.Context, event *entity.CalendarEvent) error
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type CalendarRepository struct {
	db database.IDatabase
}

func NewCalendarRepository(db database.IDatabase) *CalendarRepository {
	return &CalendarRepository{db: db}
}

func (r *CalendarRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.CalendarEvent, error) {
	query := `
		SELECT id, user_id, title, description, url, start_time, end_time, type, status, reminders, created_at, updated_at
		FROM calendar_events
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var events []entity.CalendarEvent
	err := r.db.SelectContext(ctx, &events, query, userID)
	if err != nil {
		logger.Error("CalendarRepository:ListByUserID:Error:", err)
		return nil, err
	}
	return events, nil
}

func (r *CalendarRepository) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*entity.CalendarEvent, error) {
	query := `
		SELECT id, user_id, title, description, url, start_time, end_time, type, status, reminders, created_at, updated_at
		FROM calendar_events
		WHERE id = $1 AND user_id = $2
	`

	var event entity.CalendarEvent
	err := r.db.GetContext(ctx, &event, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CalendarRepository:GetByID:Error:", err)
		return nil, err
	}
	return &event, nil
}

func (r *CalendarRepository) Create(ctx context.Context, event *entity.CalendarEvent) (*entity.CalendarEvent, error) {
	query := `
		INSERT INTO calendar_events (user_id, title, description, url, start_time, end_time, type, status, reminders)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, user_id, title, description, url, start_time, end_time, type, status, reminders, created_at, updated_at
	`

	var created entity.CalendarEvent
	err := r.db.GetContext(ctx, &created, query,
		event.UserID, event.Title, event.Description, event.URL,
		event.Start, event.End, event.Type, event.Status, event.Reminders)
	if err != nil {
		logger.Error("CalendarRepository:Create:Error:", err)
		return nil, err
	}
	return &created, nil
}

// Update writes the whole event row, reminders included, in one statement.
// The reminder engine relies on this being the only write path.
func (r *CalendarRepository) Update(ctx context.Context, event *entity.CalendarEvent) error {
	query := `
		UPDATE calendar_events
		SET title = $3, description = $4, url = $5, start_time = $6, end_time = $7,
		    type = $8, status = $9, reminders = $10, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	err := r.db.ExecContext(ctx, query,
		event.ID, event.UserID, event.Title, event.Description, event.URL,
		event.Start, event.End, event.Type, event.Status, event.Reminders)
	if err != nil {
		logger.Error("CalendarRepository:Update:Error:", err)
		return err
	}
	return nil
}

func (r *CalendarRepository) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	query := `DELETE FROM calendar_events WHERE id = $1 AND user_id = $2`

	err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		logger.Error("CalendarRepository:Delete:Error:", err)
		return err
	}
	return nil
}
