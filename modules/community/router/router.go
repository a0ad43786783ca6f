package router

import (
	"internhub/core/middleware"
	"internhub/modules/community/controller"

	"github.com/labstack/echo/v4"
)

type CommunityRouter struct {
	reviews     *controller.ReviewController
	discussions *controller.DiscussionController
}

func NewCommunityRouter(reviews *controller.ReviewController, discussions *controller.DiscussionController) *CommunityRouter {
	return &CommunityRouter{reviews: reviews, discussions: discussions}
}

func (r *CommunityRouter) Register(public *echo.Group, private *echo.Group, mw *middleware.Middleware) {
	pub := public.Group("/community")
	pub.GET("/reviews", r.reviews.ListReviews)
	pub.GET("/reviews/:id", r.reviews.GetReviewByID)
	pub.GET("/discussions", r.discussions.ListPosts)
	pub.GET("/discussions/:slug", r.discussions.GetPostBySlug)

	priv := private.Group("/community", mw.AuthMiddleware())
	priv.POST("/reviews", r.reviews.CreateReview)
	priv.DELETE("/reviews/:id", r.reviews.DeleteReview)
	priv.POST("/reviews/:id/like", r.reviews.LikeReview)
	priv.POST("/reviews/:id/dislike", r.reviews.DislikeReview)
	priv.POST("/discussions", r.discussions.CreatePost)
	priv.DELETE("/discussions/:id", r.discussions.DeletePost)
	priv.POST("/discussions/:id/replies", r.discussions.CreateReply)
	priv.POST("/discussions/:id/like", r.discussions.LikePost)
	priv.POST("/replies/:id/like", r.discussions.LikeReply)
}
