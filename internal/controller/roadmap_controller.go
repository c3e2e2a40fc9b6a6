package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"margadarsaka-be/internal/dto"
	"margadarsaka-be/internal/pkg/serverutils"
	"margadarsaka-be/internal/service"
)

type IRoadmapController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	Generate(ctx *fiber.Ctx) error
	Download(ctx *fiber.Ctx) error
	SendEmail(ctx *fiber.Ctx) error
}

type roadmapController struct {
	roadmapService service.IRoadmapService
}

func NewRoadmapController(roadmapService service.IRoadmapService) IRoadmapController {
	return &roadmapController{
		roadmapService: roadmapService,
	}
}

func (c *roadmapController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/roadmap/v1")
	h.Use(jwtMiddleware)
	h.Post("generate", c.Generate)
	h.Post("download", c.Download)
	h.Post("email", c.SendEmail)
}

func (c *roadmapController) Generate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateRoadmapRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.roadmapService.Generate(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Roadmap generated", res))
}

func (c *roadmapController) Download(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateRoadmapRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	pdfBytes, err := c.roadmapService.GeneratePDF(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	ctx.Set("Content-Type", "application/pdf")
	ctx.Set("Content-Disposition", `attachment; filename="career-roadmap.pdf"`)
	return ctx.Send(pdfBytes)
}

func (c *roadmapController) SendEmail(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.EmailRoadmapRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.roadmapService.SendByEmail(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Roadmap emailed", res))
}
