package queue

import (
	"encoding/json"
	"time"

	"internhub/core/config"
	"internhub/core/constants"
	"internhub/core/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// ReminderDeliverPayload is the task payload carried from the reminder
// scanner to the notification worker.
type ReminderDeliverPayload struct {
	UserID       uuid.UUID `json:"user_id"`
	EventID      uuid.UUID `json:"event_id"`
	EventTitle   string    `json:"event_title"`
	EventType    string    `json:"event_type"`
	Description  string    `json:"description"`
	URL          string    `json:"url"`
	EventStart   time.Time `json:"event_start"`
	ReminderID   string    `json:"reminder_id"`
	ReminderTime time.Time `json:"reminder_time"`
}

type IQueue interface {
	EnqueueReminderDeliver(payload ReminderDeliverPayload) error
	Close() error
}

type Queue struct {
	client *asynq.Client
}

func InitQueue(cfg config.RedisConfig) *Queue {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	logger.Info("Task queue initialized", "addr", cfg.Addr)
	return &Queue{client: client}
}

func (q *Queue) EnqueueReminderDeliver(payload ReminderDeliverPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	// TaskID pins the task to the reminder so a re-enqueue of the same
	// reminder is rejected by asynq instead of delivered twice.
	_, err = q.client.Enqueue(
		asynq.NewTask(constants.TaskReminderDeliver, data),
		asynq.TaskID("reminder-"+payload.ReminderID),
		asynq.MaxRetry(5),
		asynq.Timeout(constants.DefaultRequestTimeout),
	)
	if err != nil {
		logger.Error("Queue:EnqueueReminderDeliver:Error:", err, "reminder_id", payload.ReminderID)
		return err
	}
	return nil
}

func (q *Queue) Close() error {
	return q.client.Close()
}
