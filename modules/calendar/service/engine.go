package service

import (
	"context"
	"sync"
	"time"

	"internhub/core/logger"
	"internhub/core/scheduler"
	"internhub/modules/calendar/repository"

	"github.com/google/uuid"
)

// Engine is the per-session reminder machinery for one user: a reminder
// scanner and a status reconciler, each on its own periodic task. It is
// constructed at login and must be stopped at logout so a stale session
// never keeps scanning another timeline's events.
type Engine struct {
	userID    uuid.UUID
	scanTask  *scheduler.PeriodicTask
	reconTask *scheduler.PeriodicTask
}

func NewEngine(
	userID uuid.UUID,
	repo repository.CalendarRepositoryInterface,
	presenter Presenter,
	clock scheduler.Clock,
	scanInterval time.Duration,
	reconcileInterval time.Duration,
) *Engine {
	scanner := NewReminderScanner(userID, repo, presenter, clock)
	reconciler := NewStatusReconciler(userID, repo, clock)

	return &Engine{
		userID: userID,
		scanTask: scheduler.NewPeriodicTask("reminder-scan", scanInterval, func(ctx context.Context) {
			// Errors already logged; the next tick retries.
			_ = scanner.Scan(ctx)
		}),
		reconTask: scheduler.NewPeriodicTask("status-reconcile", reconcileInterval, func(ctx context.Context) {
			_ = reconciler.Reconcile(ctx)
		}),
	}
}

func (e *Engine) Start(ctx context.Context) {
	e.scanTask.Start(ctx)
	e.reconTask.Start(ctx)
}

func (e *Engine) Stop() {
	e.scanTask.Stop()
	e.reconTask.Stop()
}

// EngineManager owns one Engine per logged-in user.
type EngineManager struct {
	repo      repository.CalendarRepositoryInterface
	presenter Presenter
	clock     scheduler.Clock

	scanInterval      time.Duration
	reconcileInterval time.Duration

	mu      sync.Mutex
	engines map[uuid.UUID]*Engine
}

func NewEngineManager(
	repo repository.CalendarRepositoryInterface,
	presenter Presenter,
	clock scheduler.Clock,
	scanInterval time.Duration,
	reconcileInterval time.Duration,
) *EngineManager {
	return &EngineManager{
		repo:              repo,
		presenter:         presenter,
		clock:             clock,
		scanInterval:      scanInterval,
		reconcileInterval: reconcileInterval,
		engines:           make(map[uuid.UUID]*Engine),
	}
}

// StartSession starts the reminder engine for a user. Idempotent: a second
// login reuses the running engine.
func (m *EngineManager) StartSession(ctx context.Context, userID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.engines[userID]; ok {
		return
	}

	engine := NewEngine(userID, m.repo, m.presenter, m.clock, m.scanInterval, m.reconcileInterval)
	engine.Start(ctx)
	m.engines[userID] = engine

	logger.Info("EngineManager:SessionStarted", "user_id", userID)
}

// StopSession tears down the user's engine on logout.
func (m *EngineManager) StopSession(userID uuid.UUID) {
	m.mu.Lock()
	engine, ok := m.engines[userID]
	if ok {
		delete(m.engines, userID)
	}
	m.mu.Unlock()

	if ok {
		engine.Stop()
		logger.Info("EngineManager:SessionStopped", "user_id", userID)
	}
}

// StopAll stops every engine; called on server shutdown.
func (m *EngineManager) StopAll() {
	m.mu.Lock()
	engines := make([]*Engine, 0, len(m.engines))
	for id, e := range m.engines {
		engines = append(engines, e)
		delete(m.engines, id)
	}
	m.mu.Unlock()

	for _, e := range engines {
		e.Stop()
	}
}
