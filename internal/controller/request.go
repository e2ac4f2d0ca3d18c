package controller

import (
	"docintel-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// bindBody parses and validates a JSON request body into req.
func bindBody(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return serverutils.ValidateRequest(req)
}

// bindQuery parses and validates query parameters into req.
func bindQuery(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.QueryParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}
	return serverutils.ValidateRequest(req)
}

func actorId(ctx *fiber.Ctx) string {
	if user := serverutils.CurrentUser(ctx); user != nil {
		return user.Id
	}
	return ""
}
