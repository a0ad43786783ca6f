package router

import (
	"internhub/core/middleware"
	"internhub/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: controller}
}

func (r *AuthRouter) Register(public *echo.Group, private *echo.Group, mw *middleware.Middleware) {
	auth := public.Group("/auth")
	auth.POST("/signup", r.controller.Signup)
	auth.POST("/login", r.controller.Login)
	auth.GET("/google", r.controller.GoogleLoginURL)
	auth.POST("/google/callback", r.controller.GoogleCallback)

	me := private.Group("/auth", mw.AuthMiddleware())
	me.POST("/logout", r.controller.Logout)
	me.GET("/me", r.controller.Me)
}
