package controller

import (
	"internhub/core/controller"
	"internhub/core/errors"
	"internhub/core/middleware"
	"internhub/core/params"
	"internhub/modules/community/dto"
	"internhub/modules/community/entity"
	"internhub/modules/community/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ReviewController struct {
	service service.ReviewServiceInterface
	controller.BaseController
}

func NewReviewController(service service.ReviewServiceInterface) *ReviewController {
	return &ReviewController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// ListReviews lists company reviews with pagination and search
// @Summary List reviews
// @Tags Community
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search by company or position"
// @Success 200 {object} dto.PaginatedReviewResponse
// @Router /public/community/reviews [get]
func (c *ReviewController) ListReviews(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)

	result, appErr := c.service.ListReviews(ctx.Request().Context(), *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Reviews retrieved successfully")
}

// GetReviewByID returns one review with its vote counts
// @Summary Get review
// @Tags Community
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} dto.ReviewResponse
// @Failure 404 {object} errors.AppError
// @Router /public/community/reviews/{id} [get]
func (c *ReviewController) GetReviewByID(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid review id", nil)
	}

	result, appErr := c.service.GetReviewByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Review retrieved successfully")
}

// CreateReview posts a company review
// @Summary Create review
// @Tags Community
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Review data"
// @Success 200 {object} dto.ReviewResponse
// @Failure 400 {object} errors.AppError
// @Router /private/community/reviews [post]
func (c *ReviewController) CreateReview(ctx echo.Context) error {
	userID, err := middleware.UserID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	req := new(dto.CreateReviewRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.CreateReview(ctx.Request().Context(), userID, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Review created successfully")
}

// DeleteReview removes the caller's review
// @Summary Delete review
// @Tags Community
// @Security BearerAuth
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} map[string]string
// @Router /private/community/reviews/{id} [delete]
func (c *ReviewController) DeleteReview(ctx echo.Context) error {
	userID, err := middleware.UserID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid review id", nil)
	}

	if appErr := c.service.DeleteReview(ctx.Request().Context(), id, userID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Review deleted successfully")
}

// LikeReview toggles the caller's like on a review
// @Summary Toggle review like
// @Tags Community
// @Security BearerAuth
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} dto.ReactionResponse
// @Router /private/community/reviews/{id}/like [post]
func (c *ReviewController) LikeReview(ctx echo.Context) error {
	return c.toggleReaction(ctx, entity.ReactionLike)
}

// DislikeReview toggles the caller's dislike on a review
// @Summary Toggle review dislike
// @Tags Community
// @Security BearerAuth
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} dto.ReactionResponse
// @Router /private/community/reviews/{id}/dislike [post]
func (c *ReviewController) DislikeReview(ctx echo.Context) error {
	return c.toggleReaction(ctx, entity.ReactionDislike)
}

func (c *ReviewController) toggleReaction(ctx echo.Context, reaction entity.ReactionType) error {
	userID, err := middleware.UserID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid review id", nil)
	}

	result, appErr := c.service.ToggleReaction(ctx.Request().Context(), id, userID, reaction)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Reaction updated successfully")
}
