package controller

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"margadarsaka-be/internal/dto"
	"margadarsaka-be/internal/pkg/serverutils"
	"margadarsaka-be/internal/service"
	"margadarsaka-be/pkg/document"
)

type IAdvisorController interface {
	RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler)
	CreateSession(ctx *fiber.Ctx) error
	GetAllSessions(ctx *fiber.Ctx) error
	GetChatHistory(ctx *fiber.Ctx) error
	SendChat(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
}

type advisorController struct {
	advisorService service.IAdvisorService
}

func NewAdvisorController(advisorService service.IAdvisorService) IAdvisorController {
	return &advisorController{
		advisorService: advisorService,
	}
}

func (c *advisorController) RegisterRoutes(r fiber.Router, jwtMiddleware fiber.Handler) {
	h := r.Group("/advisor/v1")
	h.Use(jwtMiddleware)
	h.Post("session", c.CreateSession)
	h.Get("sessions", c.GetAllSessions)
	h.Get("session/:id/history", c.GetChatHistory)
	h.Post("chat", c.SendChat)
	h.Delete("session", c.DeleteSession)
}

func (c *advisorController) CreateSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.advisorService.CreateSession(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session created", res))
}

func (c *advisorController) GetAllSessions(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.advisorService.GetAllSessions(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session list", res))
}

func (c *advisorController) GetChatHistory(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid session ID"))
	}

	res, err := c.advisorService.GetChatHistory(ctx.Context(), userId, sessionId)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat history", res))
}

// SendChat accepts either a JSON body or a multipart form. The multipart
// variant carries the optional resume under the "resume" field.
func (c *advisorController) SendChat(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SendChatRequest
	var upload *service.ResumeUpload

	contentType := ctx.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		sessionId, err := uuid.Parse(ctx.FormValue("chat_session_id"))
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid session ID"))
		}
		req.ChatSessionId = sessionId
		req.Chat = ctx.FormValue("chat")

		fileHeader, err := ctx.FormFile("resume")
		if err == nil && fileHeader != nil {
			file, err := fileHeader.Open()
			if err != nil {
				return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Failed to open file"))
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Failed to read file"))
			}

			mimeType := fileHeader.Header.Get("Content-Type")
			if mimeType == "" {
				mimeType = document.MIMEPDF
			}
			upload = &service.ResumeUpload{
				Filename: fileHeader.Filename,
				MIMEType: mimeType,
				Data:     data,
			}
		}
	} else {
		if err := ctx.BodyParser(&req); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
		}
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.advisorService.SendChat(ctx.Context(), userId, &req, upload)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Advisor reply", res))
}

func (c *advisorController) DeleteSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.DeleteSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.advisorService.DeleteSession(ctx.Context(), userId, &req); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Session deleted", nil))
}
