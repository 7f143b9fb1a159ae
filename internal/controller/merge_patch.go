package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const MIMEApplicationMergePatchJSON = "application/merge-patch+json"

// requireMergePatch accepts application/json and application/merge-patch+json.
func requireMergePatch(ctx *fiber.Ctx) error {
	contentType := strings.ToLower(strings.TrimSpace(strings.SplitN(ctx.Get(fiber.HeaderContentType), ";", 2)[0]))
	switch contentType {
	case fiber.MIMEApplicationJSON, MIMEApplicationMergePatchJSON:
		return nil
	default:
		return fiber.NewError(fiber.StatusUnsupportedMediaType, "PATCH expects application/json or application/merge-patch+json")
	}
}
