package handlers

import (
	"agrifusion/domain"
	"agrifusion/internal/api/presenters"
	"agrifusion/pkg/soil"

	"github.com/gofiber/fiber/v2"
)

type (
	SoilTestHandler interface {
		GetSoilTests(c *fiber.Ctx) error
		SaveSoilTest(c *fiber.Ctx) error
		DeleteSoilTest(c *fiber.Ctx) error
	}

	soilTestHandler struct {
		soilTestService soil.SoilTestService
	}
)

func NewSoilTestHandler(soilTestService soil.SoilTestService) SoilTestHandler {
	return &soilTestHandler{
		soilTestService: soilTestService,
	}
}

func (h *soilTestHandler) GetSoilTests(c *fiber.Ctx) error {
	res, err := h.soilTestService.GetSoilTests(c.Context(), c.Params("username"))
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetSoilTests, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSoilTests)
}

func (h *soilTestHandler) SaveSoilTest(c *fiber.Ctx) error {
	req := new(domain.SaveSoilTestRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.soilTestService.SaveSoilTest(c.Context(), *req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedSaveSoilTest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveSoilTest)
}

func (h *soilTestHandler) DeleteSoilTest(c *fiber.Ctx) error {
	if err := h.soilTestService.DeleteSoilTest(c.Context(), c.Params("id")); err != nil {
		return presenters.Fail(c, domain.MessageFailedDeleteSoilTest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteSoilTest)
}
