package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"internhub/core/config"
	"internhub/core/constants"
	"internhub/core/logger"
	"internhub/core/queue"
	"internhub/modules/notification/service"

	"github.com/hibiken/asynq"
)

// Worker consumes queued tasks and writes their results through the
// notification service.
type Worker struct {
	server  *asynq.Server
	service service.NotificationServiceInterface
}

func NewWorker(cfg config.RedisConfig, svc service.NotificationServiceInterface) *Worker {
	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{
			Concurrency: 5,
			Logger:      asynqLogger{},
		},
	)
	return &Worker{server: server, service: svc}
}

// Start runs the worker in the background. Fatal worker errors are logged,
// not propagated, so a Redis outage does not take the HTTP server down.
func (w *Worker) Start() {
	mux := asynq.NewServeMux()
	mux.HandleFunc(constants.TaskReminderDeliver, w.handleReminderDeliver)

	go func() {
		if err := w.server.Run(mux); err != nil {
			logger.Error("Worker:Start:Error:", err)
		}
	}()
}

func (w *Worker) Stop() {
	w.server.Shutdown()
}

func (w *Worker) handleReminderDeliver(ctx context.Context, task *asynq.Task) error {
	var payload queue.ReminderDeliverPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("Worker:handleReminderDeliver:Unmarshal:Error:", err)
		// Malformed payloads never become valid, skip retries.
		return fmt.Errorf("unmarshal reminder payload: %w: %w", err, asynq.SkipRetry)
	}

	return w.service.DeliverReminder(ctx, payload)
}

// asynqLogger adapts the asynq logging interface onto the app logger.
type asynqLogger struct{}

func (asynqLogger) Debug(args ...any) { logger.Debug(fmt.Sprint(args...)) }
func (asynqLogger) Info(args ...any)  { logger.Info(fmt.Sprint(args...)) }
func (asynqLogger) Warn(args ...any)  { logger.Warn(fmt.Sprint(args...)) }
func (asynqLogger) Error(args ...any) { logger.Error(fmt.Sprint(args...)) }
func (asynqLogger) Fatal(args ...any) { logger.Error(fmt.Sprint(args...)) }
