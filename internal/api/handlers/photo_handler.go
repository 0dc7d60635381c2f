package handlers

import (
	"agrifusion/domain"
	"agrifusion/internal/api/presenters"
	"agrifusion/pkg/photo"

	"github.com/gofiber/fiber/v2"
)

type (
	PhotoHandler interface {
		UploadPhoto(c *fiber.Ctx) error
		GetPhotos(c *fiber.Ctx) error
		DeletePhoto(c *fiber.Ctx) error
	}

	photoHandler struct {
		photoService photo.PhotoService
	}
)

func NewPhotoHandler(photoService photo.PhotoService) PhotoHandler {
	return &photoHandler{
		photoService: photoService,
	}
}

func (h *photoHandler) UploadPhoto(c *fiber.Ctx) error {
	req := domain.UploadPhotoRequest{
		Username: c.FormValue("username"),
		Caption:  c.FormValue("caption"),
	}
	// a missing part is reported by the service as ErrNoFile
	if file, err := c.FormFile("photo"); err == nil {
		req.Photo = file
	}

	res, err := h.photoService.UploadPhoto(c.Context(), req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedUploadPhoto, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadPhoto)
}

func (h *photoHandler) GetPhotos(c *fiber.Ctx) error {
	res, err := h.photoService.GetPhotos(c.Context(), c.Params("username"))
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetPhotos, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPhotos)
}

func (h *photoHandler) DeletePhoto(c *fiber.Ctx) error {
	if err := h.photoService.DeletePhoto(c.Context(), c.Params("id")); err != nil {
		return presenters.Fail(c, domain.MessageFailedDeletePhoto, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePhoto)
}
