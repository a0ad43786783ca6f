package controller

import (
	"internhub/core/controller"
	"internhub/core/errors"
	"internhub/core/middleware"
	"internhub/core/params"
	"internhub/modules/internship/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type InternshipController struct {
	service service.InternshipServiceInterface
	controller.BaseController
}

func NewInternshipController(service service.InternshipServiceInterface) *InternshipController {
	return &InternshipController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// ListInternships lists internships with pagination and search
// @Summary List internships
// @Tags Internship
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search by company or role"
// @Success 200 {object} dto.PaginatedInternshipResponse
// @Router /public/internships [get]
func (c *InternshipController) ListInternships(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)

	result, appErr := c.service.ListInternships(ctx.Request().Context(), *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Internships retrieved successfully")
}

// GetInternshipByID returns one internship posting
// @Summary Get internship
// @Tags Internship
// @Produce json
// @Param id path string true "Internship ID"
// @Success 200 {object} dto.InternshipResponse
// @Failure 404 {object} errors.AppError
// @Router /public/internships/{id} [get]
func (c *InternshipController) GetInternshipByID(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid internship id", nil)
	}

	result, appErr := c.service.GetInternshipByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Internship retrieved successfully")
}

// SaveInternship bookmarks an internship for the current user
// @Summary Save internship
// @Tags Internship
// @Security BearerAuth
// @Produce json
// @Param id path string true "Internship ID"
// @Success 200 {object} map[string]string
// @Router /private/internships/{id}/save [post]
func (c *InternshipController) SaveInternship(ctx echo.Context) error {
	userID, err := middleware.UserID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid internship id", nil)
	}

	if appErr := c.service.SaveInternship(ctx.Request().Context(), userID, id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Internship saved successfully")
}

// UnsaveInternship removes an internship bookmark
// @Summary Unsave internship
// @Tags Internship
// @Security BearerAuth
// @Produce json
// @Param id path string true "Internship ID"
// @Success 200 {object} map[string]string
// @Router /private/internships/{id}/save [delete]
func (c *InternshipController) UnsaveInternship(ctx echo.Context) error {
	userID, err := middleware.UserID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid internship id", nil)
	}

	if appErr := c.service.UnsaveInternship(ctx.Request().Context(), userID, id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Internship unsaved successfully")
}

// ListSavedInternships lists the current user's saved internships
// @Summary List saved internships
// @Tags Internship
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.InternshipResponse
// @Router /private/internships/saved [get]
func (c *InternshipController) ListSavedInternships(ctx echo.Context) error {
	userID, err := middleware.UserID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	result, appErr := c.service.ListSavedInternships(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Saved internships retrieved successfully")
}
