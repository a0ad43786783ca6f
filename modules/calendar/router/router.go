package router

import (
	"internhub/core/middleware"
	"internhub/modules/calendar/controller"

	"github.com/labstack/echo/v4"
)

type CalendarRouter struct {
	controller *controller.CalendarController
}

func NewCalendarRouter(controller *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{controller: controller}
}

func (r *CalendarRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	group := e.Group("/calendar/events", mw.AuthMiddleware())
	group.POST("", r.controller.CreateEvent)
	group.GET("", r.controller.GetMyEvents)
	group.GET("/:id", r.controller.GetEventByID)
	group.PUT("/:id", r.controller.UpdateEvent)
	group.DELETE("/:id", r.controller.DeleteEvent)
	group.PUT("/:id/complete", r.controller.MarkCompleted)
}
