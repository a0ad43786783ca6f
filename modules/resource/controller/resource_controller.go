package controller

import (
	"strconv"

	"internhub/core/controller"
	"internhub/core/errors"
	"internhub/modules/resource/dto"
	"internhub/modules/resource/service"

	"github.com/labstack/echo/v4"
)

const defaultQuizSize = 5

type ResourceController struct {
	service service.ResourceServiceInterface
	controller.BaseController
}

func NewResourceController(service service.ResourceServiceInterface) *ResourceController {
	return &ResourceController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// ListResources lists the preparation resources
// @Summary List resources
// @Tags Resource
// @Produce json
// @Success 200 {array} entity.Resource
// @Router /public/resources [get]
func (c *ResourceController) ListResources(ctx echo.Context) error {
	result, appErr := c.service.ListResources(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Resources retrieved successfully")
}

// GenerateQuiz returns a random quiz with answers withheld
// @Summary Generate quiz
// @Tags Resource
// @Security BearerAuth
// @Produce json
// @Param count query int false "Number of questions"
// @Success 200 {array} dto.QuizQuestionResponse
// @Router /private/resources/quiz [get]
func (c *ResourceController) GenerateQuiz(ctx echo.Context) error {
	count, _ := strconv.Atoi(ctx.QueryParam("count"))
	if count == 0 {
		count = defaultQuizSize
	}

	result, appErr := c.service.GenerateQuiz(ctx.Request().Context(), count)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Quiz generated successfully")
}

// GradeQuiz scores a quiz submission
// @Summary Grade quiz
// @Tags Resource
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.GradeQuizRequest true "Quiz answers"
// @Success 200 {object} dto.QuizResultResponse
// @Failure 400 {object} errors.AppError
// @Router /private/resources/quiz/grade [post]
func (c *ResourceController) GradeQuiz(ctx echo.Context) error {
	req := new(dto.GradeQuizRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, appErr := c.service.GradeQuiz(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Quiz graded successfully")
}

// ListMaterials lists downloadable materials with presigned URLs
// @Summary List materials
// @Tags Resource
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.MaterialResponse
// @Router /private/resources/materials [get]
func (c *ResourceController) ListMaterials(ctx echo.Context) error {
	result, appErr := c.service.ListMaterials(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Materials retrieved successfully")
}
