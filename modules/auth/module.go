package auth

import (
	"internhub/core/cache"
	"internhub/core/database"
	"internhub/core/middleware"
	"internhub/modules/auth/controller"
	"internhub/modules/auth/repository"
	"internhub/modules/auth/router"
	"internhub/modules/auth/service"

	"github.com/labstack/echo/v4"
)

func Init(public *echo.Group, private *echo.Group, db database.IDatabase, c cache.ICache, mw *middleware.Middleware, sessions service.SessionManager) service.AuthServiceInterface {
	repo := repository.NewAuthRepository(db)
	svc := service.NewAuthService(repo, c, sessions)
	ctrl := controller.NewAuthController(svc)

	router.NewAuthRouter(ctrl).Register(public, private, mw)

	return svc
}
