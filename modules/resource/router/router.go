package router

import (
	"internhub/core/middleware"
	"internhub/modules/resource/controller"

	"github.com/labstack/echo/v4"
)

type ResourceRouter struct {
	controller *controller.ResourceController
}

func NewResourceRouter(controller *controller.ResourceController) *ResourceRouter {
	return &ResourceRouter{controller: controller}
}

func (r *ResourceRouter) Register(public *echo.Group, private *echo.Group, mw *middleware.Middleware) {
	public.GET("/resources", r.controller.ListResources)

	group := private.Group("/resources", mw.AuthMiddleware())
	group.GET("/quiz", r.controller.GenerateQuiz)
	group.POST("/quiz/grade", r.controller.GradeQuiz)
	group.GET("/materials", r.controller.ListMaterials)
}
