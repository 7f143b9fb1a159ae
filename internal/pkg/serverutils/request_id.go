package serverutils

import (
	"sample-be/internal/constant"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIdMiddleware reuses an incoming X-Request-Id or assigns a new one and
// echoes it on the response.
func RequestIdMiddleware(ctx *fiber.Ctx) error {
	requestId := ctx.Get(constant.HeaderRequestId)
	if _, err := uuid.Parse(requestId); err != nil {
		requestId = uuid.NewString()
	}
	ctx.Locals(constant.LocalsRequestId, requestId)
	ctx.Set(constant.HeaderRequestId, requestId)
	return ctx.Next()
}

// GetRequestId returns the id assigned by RequestIdMiddleware.
func GetRequestId(ctx *fiber.Ctx) string {
	requestId, _ := ctx.Locals(constant.LocalsRequestId).(string)
	return requestId
}
