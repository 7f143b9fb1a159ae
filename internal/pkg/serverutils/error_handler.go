package serverutils

import (
	"errors"
	"fmt"

	"sample-be/internal/apperror"
	"sample-be/internal/constant"
	"sample-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the problem body returned for every failed request.
type ErrorResponse struct {
	Status      int                   `json:"status"`
	Message     string                `json:"message"`
	EntityName  string                `json:"entityName,omitempty"`
	ErrorKey    string                `json:"errorKey,omitempty"`
	FieldErrors []apperror.FieldError `json:"fieldErrors,omitempty"`
}

// NewErrorHandler is the fiber ErrorHandler. Caller mistakes (*apperror.Error)
// become 4xx problem bodies with alert headers; unknown errors are logged and
// hidden behind a 500.
func NewErrorHandler(appName string, log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			SetFailureAlert(ctx, appName, appErr.EntityName, appErr.ErrorKey)
			return ctx.Status(appErr.StatusCode()).JSON(ErrorResponse{
				Status:      appErr.StatusCode(),
				Message:     appErr.Message,
				EntityName:  appErr.EntityName,
				ErrorKey:    appErr.ErrorKey,
				FieldErrors: appErr.FieldErrors,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse{
				Status:  fiberErr.Code,
				Message: fiberErr.Message,
			})
		}

		log.Error("Server", "Unhandled error", map[string]interface{}{
			"error":      err,
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"request_id": ctx.Locals(constant.LocalsRequestId),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

// BadRequest wraps a body decoding failure.
func BadRequest(err error) error {
	return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
}
