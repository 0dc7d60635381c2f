package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"agrifusion/domain"
	"agrifusion/internal/api/presenters"
	"agrifusion/pkg/disease"

	"github.com/gofiber/fiber/v2"
)

type (
	DiseaseHandler interface {
		SaveDetection(c *fiber.Ctx) error
		GetDetections(c *fiber.Ctx) error
		DeleteDetection(c *fiber.Ctx) error
		GetStats(c *fiber.Ctx) error
	}

	diseaseHandler struct {
		diseaseService disease.DiseaseService
	}
)

func NewDiseaseHandler(diseaseService disease.DiseaseService) DiseaseHandler {
	return &diseaseHandler{
		diseaseService: diseaseService,
	}
}

func (h *diseaseHandler) SaveDetection(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedSaveDetection, domain.ErrNoFile)
	}
	value := func(key string) string {
		if v := form.Value[key]; len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
		return ""
	}

	req := domain.SaveDiseaseDetectionRequest{
		Username:         value("username"),
		Crop:             value("crop"),
		DetectedDisease:  value("detectedDisease"),
		Solution:         value("solution"),
		OrganicTreatment: value("organicTreatment"),
	}
	if files := form.File["image"]; len(files) > 0 {
		req.Image = files[0]
	}
	if v := value("isHealthy"); v != "" {
		if req.IsHealthy, err = strconv.ParseBool(v); err != nil {
			return presenters.Fail(c, domain.MessageFailedSaveDetection, fmt.Errorf("%w: isHealthy must be a boolean", domain.ErrValidation))
		}
	}
	if v := value("confidence"); v != "" {
		if req.Confidence, err = strconv.ParseFloat(v, 64); err != nil {
			return presenters.Fail(c, domain.MessageFailedSaveDetection, fmt.Errorf("%w: confidence must be a number", domain.ErrValidation))
		}
		if err := domain.CheckFinite("confidence", req.Confidence); err != nil {
			return presenters.Fail(c, domain.MessageFailedSaveDetection, err)
		}
	}
	if req.Pesticides, err = disease.ParsePesticides(form.Value); err != nil {
		return presenters.Fail(c, domain.MessageFailedSaveDetection, err)
	}

	res, err := h.diseaseService.SaveDetection(c.Context(), req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedSaveDetection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveDetection)
}

func (h *diseaseHandler) GetDetections(c *fiber.Ctx) error {
	res, err := h.diseaseService.GetDetections(c.Context(), c.Params("username"))
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetDetections, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDetections)
}

func (h *diseaseHandler) DeleteDetection(c *fiber.Ctx) error {
	if err := h.diseaseService.DeleteDetection(c.Context(), c.Params("id")); err != nil {
		return presenters.Fail(c, domain.MessageFailedDeleteDetection, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDetection)
}

func (h *diseaseHandler) GetStats(c *fiber.Ctx) error {
	res, err := h.diseaseService.GetStats(c.Context(), c.Params("username"))
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetDiseaseStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDiseaseStats)
}
