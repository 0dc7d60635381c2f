package handlers

import (
	"agrifusion/domain"
	"agrifusion/internal/api/presenters"
	"agrifusion/pkg/crop"

	"github.com/gofiber/fiber/v2"
)

type (
	CropHandler interface {
		PredictCrop(c *fiber.Ctx) error
	}

	cropHandler struct {
		cropService crop.CropService
	}
)

func NewCropHandler(cropService crop.CropService) CropHandler {
	return &cropHandler{
		cropService: cropService,
	}
}

func (h *cropHandler) PredictCrop(c *fiber.Ctx) error {
	req := new(domain.PredictCropRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.cropService.PredictCrop(c.Context(), *req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedPredictCrop, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPredictCrop)
}
