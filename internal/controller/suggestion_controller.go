package controller

import (
	"grocery-ai-be/internal/dto"
	"grocery-ai-be/internal/pkg/serverutils"
	"grocery-ai-be/internal/service"
	"grocery-ai-be/pkg/suggester"

	"github.com/gofiber/fiber/v2"
)

type ISuggestionController interface {
	RegisterRoutes(r fiber.Router)
	SmartSuggestions(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	Snapshot(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type suggestionController struct {
	suggester         suggester.ISuggester
	suggestionService service.ISuggestionService
	listService       service.IListService
}

func NewSuggestionController(
	sug suggester.ISuggester,
	suggestionService service.ISuggestionService,
	listService service.IListService,
) ISuggestionController {
	return &suggestionController{
		suggester:         sug,
		suggestionService: suggestionService,
		listService:       listService,
	}
}

func (c *suggestionController) RegisterRoutes(r fiber.Router) {
	r.Post("/smart-suggestions", c.SmartSuggestions)

	h := r.Group("/suggestion/v1")
	h.Post("generate", c.Generate)
	h.Get("", c.Snapshot)
	h.Delete("", c.Clear)
}

// SmartSuggestions is the synchronous pass-through to the generative
// collaborator. Its wire contract is fixed: 200 with a bare JSON array,
// 400 {error} on a malformed body, 500 {error, message} on upstream failure.
func (c *suggestionController) SmartSuggestions(ctx *fiber.Ctx) error {
	var req dto.SmartSuggestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).
			JSON(dto.ClientError{Error: "items must be an array"})
	}
	if req.Items == nil {
		return ctx.Status(fiber.StatusBadRequest).
			JSON(dto.ClientError{Error: "items must be an array"})
	}

	names := make([]string, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Name != "" {
			names = append(names, it.Name)
		}
	}

	raw, err := c.suggester.Suggest(ctx.Context(), names)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.ServerError{
			Error:   "Failed to generate suggestions",
			Message: err.Error(),
		})
	}

	suggestions := suggester.Normalize(raw)
	result := make([]dto.SmartSuggestionResponse, 0, len(suggestions))
	for _, sg := range suggestions {
		result = append(result, dto.SmartSuggestionResponse{
			Item: dto.GroceryItemResponse{
				Id:        sg.Item.Id,
				Name:      sg.Item.Name,
				Category:  string(sg.Item.Category),
				Quantity:  sg.Item.Quantity,
				Unit:      sg.Item.Unit,
				CreatedAt: sg.Item.CreatedAt,
			},
			Reason:   sg.Reason,
			Priority: string(sg.Priority),
		})
	}
	return ctx.JSON(result)
}

// Generate pushes the active list's items into the coordinator and returns
// immediately; the request settles in the background.
func (c *suggestionController) Generate(ctx *fiber.Ctx) error {
	names := c.listService.ItemNames(ctx.Context())
	c.suggestionService.Generate(names)
	return ctx.Status(fiber.StatusAccepted).
		JSON(serverutils.SuccessResponse[any]("Suggestion generation started", nil))
}

func (c *suggestionController) Snapshot(ctx *fiber.Ctx) error {
	res := c.suggestionService.Snapshot()
	return ctx.JSON(serverutils.SuccessResponse("Success get suggestion state", res))
}

func (c *suggestionController) Clear(ctx *fiber.Ctx) error {
	c.suggestionService.Clear()
	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear suggestions", nil))
}
