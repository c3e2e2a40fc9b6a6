package controller

import (
	"github.com/gofiber/fiber/v2"

	"margadarsaka-be/internal/dto"
	"margadarsaka-be/internal/pkg/serverutils"
	"margadarsaka-be/pkg/rating"
)

type IRatingController interface {
	RegisterRoutes(r fiber.Router)
	Render(ctx *fiber.Ctx) error
}

// ratingController serves the star widget rendering. Ratings are a pure
// display concern; nothing is persisted.
type ratingController struct {
	renderer rating.Renderer
}

func NewRatingController(renderer rating.Renderer) IRatingController {
	return &ratingController{
		renderer: renderer,
	}
}

func (c *ratingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/rating/v1")
	h.Post("render", c.Render)
}

func (c *ratingController) Render(ctx *fiber.Ctx) error {
	var req dto.RenderRatingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	maxStars := req.MaxStars
	if maxStars == 0 {
		maxStars = 5
	}

	r := rating.Rate(req.Value, maxStars)

	return ctx.JSON(serverutils.SuccessResponse("Rating rendered", dto.RenderRatingResponse{
		Value:    r.Value,
		MaxStars: r.MaxStars,
		Filled:   r.Filled,
		Label:    r.Label,
		Rendered: c.renderer.Render(r),
	}))
}
