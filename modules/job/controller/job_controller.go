package controller

import (
	"internhub/core/controller"
	"internhub/core/errors"
	"internhub/core/middleware"
	"internhub/core/params"
	"internhub/modules/job/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type JobController struct {
	service service.JobServiceInterface
	controller.BaseController
}

func NewJobController(service service.JobServiceInterface) *JobController {
	return &JobController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// ListJobs lists jobs with pagination and search
// @Summary List jobs
// @Tags Job
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search by company or role"
// @Success 200 {object} dto.PaginatedJobResponse
// @Router /public/jobs [get]
func (c *JobController) ListJobs(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)

	result, appErr := c.service.ListJobs(ctx.Request().Context(), *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Jobs retrieved successfully")
}

// GetJobByID returns one job posting
// @Summary Get job
// @Tags Job
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} errors.AppError
// @Router /public/jobs/{id} [get]
func (c *JobController) GetJobByID(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid job id", nil)
	}

	result, appErr := c.service.GetJobByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Job retrieved successfully")
}

// SaveJob bookmarks a job for the current user
// @Summary Save job
// @Tags Job
// @Security BearerAuth
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]string
// @Router /private/jobs/{id}/save [post]
func (c *JobController) SaveJob(ctx echo.Context) error {
	userID, err := middleware.UserID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid job id", nil)
	}

	if appErr := c.service.SaveJob(ctx.Request().Context(), userID, id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Job saved successfully")
}

// UnsaveJob removes a job bookmark
// @Summary Unsave job
// @Tags Job
// @Security BearerAuth
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]string
// @Router /private/jobs/{id}/save [delete]
func (c *JobController) UnsaveJob(ctx echo.Context) error {
	userID, err := middleware.UserID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid job id", nil)
	}

	if appErr := c.service.UnsaveJob(ctx.Request().Context(), userID, id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Job unsaved successfully")
}

// ListSavedJobs lists the current user's saved jobs
// @Summary List saved jobs
// @Tags Job
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.JobResponse
// @Router /private/jobs/saved [get]
func (c *JobController) ListSavedJobs(ctx echo.Context) error {
	userID, err := middleware.UserID(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	result, appErr := c.service.ListSavedJobs(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Saved jobs retrieved successfully")
}
