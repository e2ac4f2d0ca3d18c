package serverutils

import (
	"errors"

	"docintel-be/internal/pkg/logger"
	"docintel-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps domain errors to HTTP status codes.
func StatusFor(err error) int {
	var ferr *fiber.Error
	var verr *ValidationError
	switch {
	case errors.As(err, &ferr):
		return ferr.Code
	case errors.As(err, &verr):
		return fiber.StatusBadRequest
	case errors.Is(err, store.ErrAuthentication), errors.Is(err, store.ErrInvalidToken):
		return fiber.StatusUnauthorized
	case store.IsNotFound(err):
		return fiber.StatusNotFound
	case errors.Is(err, store.ErrApprovalDecided), errors.Is(err, store.ErrInvalidStatusTransition):
		return fiber.StatusConflict
	case errors.Is(err, store.ErrUnknownUsageKind),
		errors.Is(err, store.ErrInvalidUsageDelta),
		errors.Is(err, store.ErrInvalidApprovalDecision):
		return fiber.StatusBadRequest
	case errors.Is(err, store.ErrStoreClosed):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, store.ErrSuperseded):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

// ErrorHandlerMiddleware renders errors returned by downstream handlers in
// the common response envelope.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := StatusFor(err)
		var verr *ValidationError
		if errors.As(err, &verr) {
			return ctx.Status(code).JSON(ValidationErrorResponse("Validation failed", verr.Fields))
		}

		message := err.Error()
		if code == fiber.StatusInternalServerError {
			log.Error("HTTP", "Unhandled error", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
			message = "internal server error"
		} else if errors.Is(err, store.ErrAuthentication) {
			message = store.ErrAuthentication.Error()
		}
		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
