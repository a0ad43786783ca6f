package router

import (
	"internhub/core/middleware"
	"internhub/modules/internship/controller"

	"github.com/labstack/echo/v4"
)

type InternshipRouter struct {
	controller *controller.InternshipController
}

func NewInternshipRouter(controller *controller.InternshipController) *InternshipRouter {
	return &InternshipRouter{controller: controller}
}

func (r *InternshipRouter) Register(public *echo.Group, private *echo.Group, mw *middleware.Middleware) {
	public.GET("/internships", r.controller.ListInternships)
	public.GET("/internships/:id", r.controller.GetInternshipByID)

	group := private.Group("/internships", mw.AuthMiddleware())
	group.GET("/saved", r.controller.ListSavedInternships)
	group.POST("/:id/save", r.controller.SaveInternship)
	group.DELETE("/:id/save", r.controller.UnsaveInternship)
}
