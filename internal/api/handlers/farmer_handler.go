package handlers

import (
	"agrifusion/domain"
	"agrifusion/entities"
	"agrifusion/internal/api/presenters"
	"agrifusion/pkg/farmer"

	"github.com/gofiber/fiber/v2"
)

type (
	FarmerHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		GetFarmers(c *fiber.Ctx) error
		DeleteFarmer(c *fiber.Ctx) error
		ToggleStatus(c *fiber.Ctx) error
		UpdateFarmer(c *fiber.Ctx) error
	}

	farmerHandler struct {
		farmerService farmer.FarmerService
	}
)

func NewFarmerHandler(farmerService farmer.FarmerService) FarmerHandler {
	return &farmerHandler{
		farmerService: farmerService,
	}
}

func (h *farmerHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.farmerService.Register(c.Context(), *req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *farmerHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.farmerService.Login(c.Context(), *req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedLogin, err)
	}

	message := domain.MessageSuccessLogin
	if res.Role == entities.RoleAdmin {
		message = domain.MessageSuccessAdminLogin
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, message)
}

func (h *farmerHandler) GetFarmers(c *fiber.Ctx) error {
	res, err := h.farmerService.GetFarmers(c.Context())
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetFarmers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFarmers)
}

func (h *farmerHandler) DeleteFarmer(c *fiber.Ctx) error {
	if err := h.farmerService.DeleteFarmer(c.Context(), c.Params("id")); err != nil {
		return presenters.Fail(c, domain.MessageFailedDeleteFarmer, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFarmer)
}

func (h *farmerHandler) ToggleStatus(c *fiber.Ctx) error {
	res, err := h.farmerService.ToggleStatus(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedToggleStatus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleStatus)
}

func (h *farmerHandler) UpdateFarmer(c *fiber.Ctx) error {
	req := new(domain.UpdateFarmerRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.farmerService.UpdateFarmer(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedUpdateFarmer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFarmer)
}
