package presenters

import (
	"errors"

	"agrifusion/domain"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	res := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(status).JSON(res)
}

// Fail picks the status for err and writes the error envelope.
func Fail(c *fiber.Ctx, message string, err error) error {
	return ErrorResponse(c, StatusFromError(err), message, err)
}

func StatusFromError(err error) int {
	var fiberErr *fiber.Error
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrDuplicateUsername),
		errors.Is(err, domain.ErrNoFile),
		errors.Is(err, domain.ErrUnsupportedFileType),
		errors.Is(err, domain.ErrFileTooLarge),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidTestDate),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrInvalidPesticides),
		errors.Is(err, domain.ErrInvalidExportFormat),
		errors.Is(err, domain.ErrInvalidLayout):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrFarmerNotFound),
		errors.Is(err, domain.ErrSoilTestNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrPhotoNotFound),
		errors.Is(err, domain.ErrDetectionNotFound),
		errors.Is(err, domain.ErrUnknownStage),
		errors.Is(err, domain.ErrRecordNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler renders errors that escape handlers, including fiber's own
// 404 and 413, in the same envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := StatusFromError(err)
	message := domain.MessageFailedProcessRequest
	if status == fiber.StatusNotFound {
		message = domain.MessageRouteNotFound
	}
	if status == fiber.StatusRequestEntityTooLarge {
		err = domain.ErrFileTooLarge
	}
	return ErrorResponse(c, status, message, err)
}
