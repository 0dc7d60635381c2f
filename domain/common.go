package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageRouteNotFound        = "route not found"
	MessagePong                 = "pong"

	ErrValidation          = errors.New("validation failed")
	ErrInvalidID           = errors.New("invalid id")
	ErrRecordNotFound      = errors.New("record not found")
	ErrNoFile              = errors.New("no image file attached")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds upload size limit")
	ErrStorage             = errors.New("storage operation failed")
	ErrFileSystem          = errors.New("file system operation failed")
)
