package serverutils

import (
	"crypto/subtle"
	"strings"

	"docintel-be/internal/entity"

	"github.com/gofiber/fiber/v2"
)

// SessionReader is the read side of the session store the middleware needs.
type SessionReader interface {
	Token() string
	CurrentUser() *entity.User
}

// TokenMiddleware admits requests carrying the token of the current session,
// either as a bearer header or as a ?token= query parameter (websocket
// clients cannot set headers).
func TokenMiddleware(sessions SessionReader) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		presented := ""
		if authHeader := ctx.Get(fiber.HeaderAuthorization); strings.HasPrefix(authHeader, "Bearer ") {
			presented = strings.TrimSpace(authHeader[7:])
		} else {
			presented = ctx.Query("token")
		}
		if presented == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
		}

		user := sessions.CurrentUser()
		current := sessions.Token()
		if user == nil || current == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(current)) != 1 {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token"))
		}

		ctx.Locals("user_id", user.Id)
		ctx.Locals("user", user)
		return ctx.Next()
	}
}

// CurrentUser returns the user stored by TokenMiddleware.
func CurrentUser(ctx *fiber.Ctx) *entity.User {
	user, _ := ctx.Locals("user").(*entity.User)
	return user
}
