package notification

import (
	"internhub/core/config"
	"internhub/core/database"
	"internhub/core/middleware"
	"internhub/modules/notification/controller"
	"internhub/modules/notification/repository"
	"internhub/modules/notification/router"
	"internhub/modules/notification/service"
	"internhub/modules/notification/worker"

	"github.com/labstack/echo/v4"
)

// Init wires the notification module and returns the queue worker so the
// server can manage its lifecycle.
func Init(private *echo.Group, db database.IDatabase, mw *middleware.Middleware) *worker.Worker {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Register(private, mw)

	return worker.NewWorker(config.Get().Redis, svc)
}
