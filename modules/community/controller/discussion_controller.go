package controller

import (
	"internhub/core/controller"
	"internhub/core/errors"
	"internhub/core/middleware"
	"internhub/core/params"
	"internhub/modules/community/dto"
	"internhub/modules/community/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type DiscussionController struct {
	service service.DiscussionServiceInterface
	controller.BaseController
}

func NewDiscussionController(service service.DiscussionServiceInterface) *DiscussionController {
	return &DiscussionController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// ListPosts lists discussion posts with pagination and search
// @Summary List discussion posts
// @Tags Community
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search by title"
// @Success 200 {object} dto.PaginatedPostResponse
// @Router /public/community/discussions [get]
func (c *DiscussionController) ListPosts(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)

	result, appErr := c.service.ListPosts(ctx.Request().Context(), *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Posts retrieved successfully")
}

// GetPostBySlug returns a post with its replies
// @Summary Get discussion post
// @Tags Community
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} dto.PostDetailResponse
// @Failure 404 {object} errors.AppError
// @Router /public/community/discussions/{slug} [get]
func (c *DiscussionController) GetPostBySlug(ctx echo.Context) error {
	slug := ctx.Param("slug")
	if slug == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid post slug", nil)
	}

	result, appErr := c.service.GetPostBySlug(ctx.Request().Context(), slug)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Post retrieved successfully")
}

// CreatePost starts a discussion thread
// @Summary Create discussion post
// @Tags Community
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Post data"
// @Success 200 {object} dto.PostResponse
// @Failure 400 {object} errors.AppError
// @Router /private/community/discussions [post]
func (c *DiscussionController) CreatePost(ctx echo.Context) error {
	userID, err := middleware.UserID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	req := new(dto.CreatePostRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.CreatePost(ctx.Request().Context(), userID, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Post created successfully")
}

// DeletePost removes the caller's post
// @Summary Delete discussion post
// @Tags Community
// @Security BearerAuth
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]string
// @Router /private/community/discussions/{id} [delete]
func (c *DiscussionController) DeletePost(ctx echo.Context) error {
	userID, err := middleware.UserID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid post id", nil)
	}

	if appErr := c.service.DeletePost(ctx.Request().Context(), id, userID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Post deleted successfully")
}

// CreateReply replies to a discussion post
// @Summary Create reply
// @Tags Community
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.CreateReplyRequest true "Reply data"
// @Success 200 {object} dto.ReplyResponse
// @Failure 400 {object} errors.AppError
// @Router /private/community/discussions/{id}/replies [post]
func (c *DiscussionController) CreateReply(ctx echo.Context) error {
	userID, err := middleware.UserID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	postID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid post id", nil)
	}

	req := new(dto.CreateReplyRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.CreateReply(ctx.Request().Context(), postID, userID, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Reply created successfully")
}

// LikePost toggles the caller's like on a post
// @Summary Toggle post like
// @Tags Community
// @Security BearerAuth
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.LikeResponse
// @Router /private/community/discussions/{id}/like [post]
func (c *DiscussionController) LikePost(ctx echo.Context) error {
	userID, err := middleware.UserID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	postID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid post id", nil)
	}

	result, appErr := c.service.ToggleLikePost(ctx.Request().Context(), postID, userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Like updated successfully")
}

// LikeReply toggles the caller's like on a reply
// @Summary Toggle reply like
// @Tags Community
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reply ID"
// @Success 200 {object} dto.LikeResponse
// @Router /private/community/replies/{id}/like [post]
func (c *DiscussionController) LikeReply(ctx echo.Context) error {
	userID, err := middleware.UserID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	replyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid reply id", nil)
	}

	result, appErr := c.service.ToggleLikeReply(ctx.Request().Context(), replyID, userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Like updated successfully")
}
