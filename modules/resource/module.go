package resource

import (
	"internhub/core/middleware"
	"internhub/core/storage"
	"internhub/modules/resource/controller"
	"internhub/modules/resource/router"
	"internhub/modules/resource/service"

	"github.com/labstack/echo/v4"
)

func Init(public *echo.Group, private *echo.Group, st storage.IStorage, mw *middleware.Middleware) {
	svc := service.NewResourceService(st)
	ctrl := controller.NewResourceController(svc)

	router.NewResourceRouter(ctrl).Register(public, private, mw)
}
