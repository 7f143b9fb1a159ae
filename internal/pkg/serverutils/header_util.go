package serverutils

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// Alert headers let clients show a message without parsing the body.

func SetEntityCreationAlert(ctx *fiber.Ctx, appName, entityName, id string) {
	setAlert(ctx, appName, fmt.Sprintf("%s.%s.created", appName, entityName), id)
}

func SetEntityUpdateAlert(ctx *fiber.Ctx, appName, entityName, id string) {
	setAlert(ctx, appName, fmt.Sprintf("%s.%s.updated", appName, entityName), id)
}

func SetEntityDeletionAlert(ctx *fiber.Ctx, appName, entityName, id string) {
	setAlert(ctx, appName, fmt.Sprintf("%s.%s.deleted", appName, entityName), id)
}

func SetFailureAlert(ctx *fiber.Ctx, appName, entityName, errorKey string) {
	if entityName == "" {
		return
	}
	ctx.Set(fmt.Sprintf("X-%s-error", appName), "error."+errorKey)
	ctx.Set(fmt.Sprintf("X-%s-params", appName), url.QueryEscape(entityName))
}

func setAlert(ctx *fiber.Ctx, appName, message, param string) {
	ctx.Set(fmt.Sprintf("X-%s-alert", appName), message)
	ctx.Set(fmt.Sprintf("X-%s-params", appName), url.QueryEscape(param))
}
