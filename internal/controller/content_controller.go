package controller

import (
	"guru-ai-be/internal/dto"
	"guru-ai-be/internal/pkg/serverutils"
	"guru-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	CreateDocument(ctx *fiber.Ctx) error
	CreateFigure(ctx *fiber.Ctx) error
}

type contentController struct {
	service service.IContentService
}

func NewContentController(service service.IContentService) IContentController {
	return &contentController{service: service}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/content/v1")
	h.Post("documents", c.CreateDocument)
	h.Post("figures", c.CreateFigure)
}

func (c *contentController) CreateDocument(ctx *fiber.Ctx) error {
	var req dto.CreateDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateDocument(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create document", res))
}

func (c *contentController) CreateFigure(ctx *fiber.Ctx) error {
	var req dto.CreateFigureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateFigure(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create figure", res))
}
