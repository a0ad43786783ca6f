package job

import (
	"internhub/core/database"
	"internhub/core/middleware"
	"internhub/modules/job/controller"
	"internhub/modules/job/repository"
	"internhub/modules/job/router"
	"internhub/modules/job/service"

	"github.com/labstack/echo/v4"
)

func Init(public *echo.Group, private *echo.Group, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewJobRepository(db)
	svc := service.NewJobService(repo)
	ctrl := controller.NewJobController(svc)

	router.NewJobRouter(ctrl).Register(public, private, mw)
}
