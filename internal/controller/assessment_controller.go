package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"margadarsaka-be/internal/dto"
	"margadarsaka-be/internal/pkg/serverutils"
	"margadarsaka-be/internal/service"
)

type IAssessmentController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	GetQuestions(ctx *fiber.Ctx) error
	SelectAnswer(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type assessmentController struct {
	assessmentService service.IAssessmentService
}

func NewAssessmentController(assessmentService service.IAssessmentService) IAssessmentController {
	return &assessmentController{
		assessmentService: assessmentService,
	}
}

func (c *assessmentController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/assessment/v1")
	h.Use(jwtMiddleware)
	h.Get("questions", c.GetQuestions)
	h.Post("answer", c.SelectAnswer)
	h.Post("submit", c.Submit)
	h.Get("history", c.History)
}

func (c *assessmentController) GetQuestions(ctx *fiber.Ctx) error {
	res := c.assessmentService.GetQuestions(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Question list", res))
}

func (c *assessmentController) SelectAnswer(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SelectAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assessmentService.SelectAnswer(ctx.Context(), userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Answer recorded", res))
}

func (c *assessmentController) Submit(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.assessmentService.Submit(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Career suggestions ready", res))
}

func (c *assessmentController) History(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.assessmentService.GetHistory(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Assessment history", res))
}
