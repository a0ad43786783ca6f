package calendar

import (
	"time"

	"internhub/core/config"
	"internhub/core/database"
	"internhub/core/middleware"
	"internhub/core/queue"
	"internhub/core/scheduler"
	"internhub/modules/calendar/controller"
	"internhub/modules/calendar/repository"
	"internhub/modules/calendar/router"
	"internhub/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

// Init wires the calendar module and returns the engine manager so the auth
// module can start and stop per-user reminder sessions.
func Init(e *echo.Group, db database.IDatabase, mw *middleware.Middleware, q queue.IQueue) *service.EngineManager {
	cfg := config.Get()
	clock := scheduler.NewRealClock()

	repo := repository.NewCalendarRepository(db)
	svc := service.NewCalendarService(repo, clock)
	ctrl := controller.NewCalendarController(svc)

	router.NewCalendarRouter(ctrl).Register(e, mw)

	presenter := service.NewQueuePresenter(q)
	return service.NewEngineManager(
		repo,
		presenter,
		clock,
		time.Duration(cfg.Scheduler.ReminderScanSeconds)*time.Second,
		time.Duration(cfg.Scheduler.StatusReconcileSeconds)*time.Second,
	)
}
