package community

import (
	"internhub/core/database"
	"internhub/core/middleware"
	"internhub/modules/community/controller"
	"internhub/modules/community/repository"
	"internhub/modules/community/router"
	"internhub/modules/community/service"

	"github.com/labstack/echo/v4"
)

func Init(public *echo.Group, private *echo.Group, db database.IDatabase, mw *middleware.Middleware) {
	reviewRepo := repository.NewReviewRepository(db)
	discussionRepo := repository.NewDiscussionRepository(db)

	reviewSvc := service.NewReviewService(reviewRepo)
	discussionSvc := service.NewDiscussionService(discussionRepo)

	reviewCtrl := controller.NewReviewController(reviewSvc)
	discussionCtrl := controller.NewDiscussionController(discussionSvc)

	router.NewCommunityRouter(reviewCtrl, discussionCtrl).Register(public, private, mw)
}
