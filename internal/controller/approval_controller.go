package controller

import (
	"docintel-be/internal/dto"
	"docintel-be/internal/pkg/serverutils"
	"docintel-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IApprovalController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Approve(ctx *fiber.Ctx) error
	Reject(ctx *fiber.Ctx) error
}

type approvalController struct {
	approvalService service.IApprovalService
	auth            fiber.Handler
}

func NewApprovalController(approvalService service.IApprovalService, auth fiber.Handler) IApprovalController {
	return &approvalController{
		approvalService: approvalService,
		auth:            auth,
	}
}

func (c *approvalController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/approvals")
	h.Use(c.auth)
	h.Get("", c.List)
	h.Post(":id/approve", c.Approve)
	h.Post(":id/reject", c.Reject)
}

func (c *approvalController) List(ctx *fiber.Ctx) error {
	var req dto.ListApprovalsRequest
	if err := bindQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.approvalService.List(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list approvals", res))
}

func (c *approvalController) Approve(ctx *fiber.Ctx) error {
	res, err := c.approvalService.Approve(ctx.UserContext(), ctx.Params("id"), actorId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Approval approved", res))
}

func (c *approvalController) Reject(ctx *fiber.Ctx) error {
	res, err := c.approvalService.Reject(ctx.UserContext(), ctx.Params("id"), actorId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Approval rejected", res))
}
