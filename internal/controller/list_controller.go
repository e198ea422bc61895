package controller

import (
	"grocery-ai-be/internal/dto"
	"grocery-ai-be/internal/pkg/serverutils"
	"grocery-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IListController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	AddItem(ctx *fiber.Ctx) error
	RemoveItem(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
}

type listController struct {
	listService service.IListService
}

func NewListController(listService service.IListService) IListController {
	return &listController{
		listService: listService,
	}
}

func (c *listController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/list/v1")
	h.Post("", c.Create)
	h.Get("", c.Show)
	h.Post("items", c.AddItem)
	h.Delete("items/:id", c.RemoveItem)
	h.Post("complete", c.Complete)
}

func (c *listController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateListRequest
	// Empty body is fine: the list name defaults to the current date.
	_ = ctx.BodyParser(&req)

	res := c.listService.CreateNewList(ctx.Context(), req.Name)
	return ctx.JSON(serverutils.SuccessResponse("Success create list", res))
}

func (c *listController) Show(ctx *fiber.Ctx) error {
	res := c.listService.GetActiveList(ctx.Context())
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).
			JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "No active list"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show list", res))
}

func (c *listController) AddItem(ctx *fiber.Ctx) error {
	var req dto.AddItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.listService.AddItem(ctx.Context(), &req)
	if res == nil {
		// Store policy: adding without an active list is a silent no-op.
		return ctx.JSON(serverutils.SuccessResponse[any]("No active list, item not added", nil))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success add item", res))
}

func (c *listController) RemoveItem(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewValidationError("invalid item id")
	}

	res := c.listService.RemoveItem(ctx.Context(), id)
	if res == nil {
		return ctx.JSON(serverutils.SuccessResponse[any]("No active list, nothing removed", nil))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success remove item", res))
}

func (c *listController) Complete(ctx *fiber.Ctx) error {
	res := c.listService.CompleteList(ctx.Context())
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).
			JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "No active list"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success complete list", res))
}
