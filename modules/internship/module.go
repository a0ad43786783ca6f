package internship

import (
	"internhub/core/database"
	"internhub/core/middleware"
	"internhub/modules/internship/controller"
	"internhub/modules/internship/repository"
	"internhub/modules/internship/router"
	"internhub/modules/internship/service"

	"github.com/labstack/echo/v4"
)

func Init(public *echo.Group, private *echo.Group, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewInternshipRepository(db)
	svc := service.NewInternshipService(repo)
	ctrl := controller.NewInternshipController(svc)

	router.NewInternshipRouter(ctrl).Register(public, private, mw)
}
