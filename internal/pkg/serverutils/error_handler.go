package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"margadarsaka-be/pkg/llm"
	"margadarsaka-be/pkg/prompt"
)

// ErrorHandlerMiddleware turns errors bubbled up from controllers into
// the JSON envelope everything else uses. Upstream model failures never
// leak provider detail to the client.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var verr *ValidationError
		if errors.As(err, &verr) {
			return ctx.Status(fiber.StatusBadRequest).
				JSON(ErrorResponseWithDetails(400, "Invalid request", verr.Fields))
		}

		var incomplete *prompt.IncompleteAnswersError
		if errors.As(err, &incomplete) {
			return ctx.Status(fiber.StatusBadRequest).
				JSON(ErrorResponseWithDetails(400, "Please answer all questions before submitting", fiber.Map{
					"missing_questions": incomplete.Missing,
				}))
		}

		if errors.Is(err, llm.ErrProviderUnavailable) {
			return ctx.Status(fiber.StatusBadGateway).
				JSON(ErrorResponse(502, "The advisor is temporarily unavailable, please try again"))
		}

		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			return ctx.Status(ferr.Code).JSON(ErrorResponse(ferr.Code, ferr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(500, "Internal server error"))
	}
}
