package serverutils

import (
	"strings"

	"sample-be/internal/constant"
	"sample-be/internal/pkg/tokenrelay"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// NewJwtMiddleware validates "Authorization: Bearer <jwt>" signed with secret.
// The user_id and login claims go to fiber locals; the raw token goes to the
// request context so outbound calls can relay it.
func NewJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
			return unauthorized(ctx, "Missing token")
		}
		tokenStr := strings.TrimSpace(authHeader[7:])

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
		if err != nil || !token.Valid {
			return unauthorized(ctx, "Invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorized(ctx, "Invalid claims")
		}
		userId, _ := claims[constant.LocalsUserId].(string)
		if userId == "" {
			return unauthorized(ctx, "Invalid claims")
		}
		login, _ := claims[constant.LocalsLogin].(string)

		ctx.Locals(constant.LocalsUserId, userId)
		ctx.Locals(constant.LocalsLogin, login)
		ctx.SetUserContext(tokenrelay.WithToken(ctx.UserContext(), &oauth2.Token{
			AccessToken: tokenStr,
			TokenType:   "Bearer",
		}))
		return ctx.Next()
	}
}

func unauthorized(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Status:  fiber.StatusUnauthorized,
		Message: message,
	})
}

// GetUserId returns the authenticated user id, empty outside protected routes.
func GetUserId(ctx *fiber.Ctx) string {
	userId, _ := ctx.Locals(constant.LocalsUserId).(string)
	return userId
}
