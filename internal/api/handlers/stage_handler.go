package handlers

import (
	"agrifusion/domain"
	"agrifusion/internal/api/presenters"
	"agrifusion/pkg/stage"

	"github.com/gofiber/fiber/v2"
)

type (
	StageHandler interface {
		GetStages(c *fiber.Ctx) error
		GetLayout(c *fiber.Ctx) error
		SelectStage(c *fiber.Ctx) error
	}

	stageHandler struct{}
)

func NewStageHandler() StageHandler {
	return &stageHandler{}
}

func (h *stageHandler) GetStages(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, stage.Catalog(), fiber.StatusOK, domain.MessageSuccessGetStages)
}

func (h *stageHandler) GetLayout(c *fiber.Ctx) error {
	req := domain.LayoutRequest{
		Width:         400,
		Height:        400,
		ElementWidth:  80,
		ElementHeight: 80,
		Radius:        stage.DefaultRadius,
	}
	if err := c.QueryParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLayout, err)
	}

	res, err := stage.Layout(req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetLayout, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLayout)
}

// SelectStage resolves a click on one stage; the client highlights only the
// returned key and follows the redirect when present.
func (h *stageHandler) SelectStage(c *fiber.Ctx) error {
	res, err := stage.Select(c.Params("key"))
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedSelectStage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSelectStage)
}
