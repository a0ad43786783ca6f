package router

import (
	"internhub/core/middleware"
	"internhub/modules/job/controller"

	"github.com/labstack/echo/v4"
)

type JobRouter struct {
	controller *controller.JobController
}

func NewJobRouter(controller *controller.JobController) *JobRouter {
	return &JobRouter{controller: controller}
}

func (r *JobRouter) Register(public *echo.Group, private *echo.Group, mw *middleware.Middleware) {
	public.GET("/jobs", r.controller.ListJobs)
	public.GET("/jobs/:id", r.controller.GetJobByID)

	group := private.Group("/jobs", mw.AuthMiddleware())
	group.GET("/saved", r.controller.ListSavedJobs)
	group.POST("/:id/save", r.controller.SaveJob)
	group.DELETE("/:id/save", r.controller.UnsaveJob)
}
