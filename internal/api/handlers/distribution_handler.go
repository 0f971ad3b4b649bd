package handlers

import (
	"foodcycle-backend/domain"
	"foodcycle-backend/internal/api/presenters"
	"foodcycle-backend/pkg/distribution"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DistributionHandler interface {
		CreateDistribution(c *fiber.Ctx) error
		GetDistributions(c *fiber.Ctx) error
		UpdateDistributionStatus(c *fiber.Ctx) error
	}

	distributionHandler struct {
		distributionService distribution.DistributionService
		validator           *validator.Validate
	}
)

func NewDistributionHandler(distributionService distribution.DistributionService, validator *validator.Validate) DistributionHandler {
	return &distributionHandler{
		distributionService: distributionService,
		validator:           validator,
	}
}

func (h *distributionHandler) CreateDistribution(c *fiber.Ctx) error {
	businessID := c.Locals("business_id").(uint)
	req := new(domain.CreateDistributionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDistribution, err)
	}

	res, err := h.distributionService.CreateDistribution(c.Context(), *req, businessID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDistribution, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDistribution)
}

func (h *distributionHandler) GetDistributions(c *fiber.Ctx) error {
	businessID := c.Locals("business_id").(uint)
	page, limit := parsePagination(c)

	items, count, err := h.distributionService.GetDistributions(c.Context(), businessID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDistributions, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items":      items,
		"pagination": domain.NewPagination(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetDistributions)
}

func (h *distributionHandler) UpdateDistributionStatus(c *fiber.Ctx) error {
	businessID := c.Locals("business_id").(uint)

	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDistributionStatus, err)
	}

	req := new(domain.UpdateDistributionStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDistributionStatus, err)
	}

	if err := h.distributionService.UpdateDistributionStatus(c.Context(), id, *req, businessID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDistributionStatus, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateDistributionStatus)
}
