package router

import (
	"internhub/core/middleware"
	"internhub/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

type NotificationRouter struct {
	controller *controller.NotificationController
}

func NewNotificationRouter(controller *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{controller: controller}
}

func (r *NotificationRouter) Register(private *echo.Group, mw *middleware.Middleware) {
	group := private.Group("/notifications", mw.AuthMiddleware())
	group.GET("", r.controller.ListNotifications)
	group.GET("/unread-count", r.controller.UnreadCount)
	group.PUT("/:id/read", r.controller.MarkRead)
	group.PUT("/read-all", r.controller.MarkAllRead)
}
