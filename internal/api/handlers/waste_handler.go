package handlers

import (
	"foodcycle-backend/domain"
	"foodcycle-backend/internal/api/presenters"
	"foodcycle-backend/pkg/waste"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WasteHandler interface {
		AddWastedFood(c *fiber.Ctx) error
		GetWastedFoods(c *fiber.Ctx) error
		GetUndistributedWastedFoods(c *fiber.Ctx) error
		GetWastedFoodDetails(c *fiber.Ctx) error
	}

	wasteHandler struct {
		wasteService waste.WasteService
		validator    *validator.Validate
	}
)

func NewWasteHandler(wasteService waste.WasteService, validator *validator.Validate) WasteHandler {
	return &wasteHandler{
		wasteService: wasteService,
		validator:    validator,
	}
}

func (h *wasteHandler) AddWastedFood(c *fiber.Ctx) error {
	businessID := c.Locals("business_id").(uint)
	req := new(domain.AddWastedFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddWastedFood, err)
	}

	res, err := h.wasteService.AddWastedFood(c.Context(), *req, businessID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddWastedFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddWastedFood)
}

func (h *wasteHandler) GetWastedFoods(c *fiber.Ctx) error {
	businessID := c.Locals("business_id").(uint)
	page, limit := parsePagination(c)

	items, count, err := h.wasteService.GetWastedFoods(c.Context(), businessID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWastedFoods, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items":      items,
		"pagination": domain.NewPagination(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetWastedFoods)
}

func (h *wasteHandler) GetUndistributedWastedFoods(c *fiber.Ctx) error {
	businessID := c.Locals("business_id").(uint)
	page, limit := parsePagination(c)

	items, count, err := h.wasteService.GetUndistributedWastedFoods(c.Context(), businessID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWastedFoods, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items":      items,
		"pagination": domain.NewPagination(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetWastedFoods)
}

func (h *wasteHandler) GetWastedFoodDetails(c *fiber.Ctx) error {
	businessID := c.Locals("business_id").(uint)

	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWastedFoods, err)
	}

	item, err := h.wasteService.GetWastedFoodByID(c.Context(), id, businessID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetWastedFoods, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetWastedFoods)
}
