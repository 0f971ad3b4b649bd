package handlers

import (
	"foodcycle-backend/domain"
	"foodcycle-backend/internal/api/presenters"
	"foodcycle-backend/pkg/recipient"

	"github.com/gofiber/fiber/v2"
)

type (
	RecipientHandler interface {
		GetRecipients(c *fiber.Ctx) error
	}

	recipientHandler struct {
		recipientService recipient.RecipientService
	}
)

func NewRecipientHandler(recipientService recipient.RecipientService) RecipientHandler {
	return &recipientHandler{recipientService: recipientService}
}

func (h *recipientHandler) GetRecipients(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	recipientType := c.Query("type", "")

	items, count, err := h.recipientService.GetRecipients(c.Context(), recipientType, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipients, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items":      items,
		"pagination": domain.NewPagination(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetRecipients)
}
