package controller

import (
	"docintel-be/internal/dto"
	"docintel-be/internal/pkg/serverutils"
	"docintel-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFolderController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Tree(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type folderController struct {
	folderService service.IFolderService
	auth          fiber.Handler
}

func NewFolderController(folderService service.IFolderService, auth fiber.Handler) IFolderController {
	return &folderController{
		folderService: folderService,
		auth:          auth,
	}
}

func (c *folderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/folders")
	h.Use(c.auth)
	h.Get("", c.List)
	h.Get("tree", c.Tree)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
}

func (c *folderController) List(ctx *fiber.Ctx) error {
	res, err := c.folderService.List(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list folders", res))
}

func (c *folderController) Tree(ctx *fiber.Ctx) error {
	res, err := c.folderService.Tree(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get folder tree", res))
}

func (c *folderController) Show(ctx *fiber.Ctx) error {
	res, err := c.folderService.Show(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show folder", res))
}

func (c *folderController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateFolderRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.folderService.Create(ctx.UserContext(), &req, actorId(ctx))
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Folder created", res))
}
