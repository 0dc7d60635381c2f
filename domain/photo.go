package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessUploadPhoto = "photo uploaded successfully"
	MessageSuccessGetPhotos   = "photos retrieved successfully"
	MessageSuccessDeletePhoto = "photo deleted successfully"

	MessageFailedUploadPhoto = "error uploading photo"
	MessageFailedGetPhotos   = "error fetching photos"
	MessageFailedDeletePhoto = "error deleting photo"

	ErrPhotoNotFound = errors.New("photo not found")
)

type (
	UploadPhotoRequest struct {
		Username string                `form:"username" validate:"required"`
		Caption  string                `form:"caption" validate:"max=512"`
		Photo    *multipart.FileHeader `form:"photo" validate:"-"`
	}

	PhotoResponse struct {
		ID            string `json:"id"`
		Username      string `json:"username"`
		FarmerID      string `json:"farmerId"`
		Filename      string `json:"filename"`
		Path          string `json:"path"`
		URL           string `json:"url"`
		Caption       string `json:"caption"`
		FileSize      int64  `json:"fileSize"`
		FileSizeHuman string `json:"fileSizeHuman"`
		MimeType      string `json:"mimeType"`
		CreatedAt     string `json:"createdAt"`
	}
)
