package domain

import (
	"errors"
	"mime/multipart"

	"agrifusion/entities"
)

var (
	MessageSuccessSaveDetection   = "disease detection saved successfully"
	MessageSuccessGetDetections   = "disease detections retrieved successfully"
	MessageSuccessDeleteDetection = "disease detection deleted successfully"
	MessageSuccessGetDiseaseStats = "disease statistics retrieved successfully"

	MessageFailedSaveDetection   = "error saving disease detection"
	MessageFailedGetDetections   = "error fetching disease detections"
	MessageFailedDeleteDetection = "error deleting disease detection"
	MessageFailedGetDiseaseStats = "error fetching disease statistics"

	ErrDetectionNotFound = errors.New("disease detection not found")
	ErrInvalidPesticides = errors.New("invalid pesticides payload")
)

type (
	SaveDiseaseDetectionRequest struct {
		Username         string                `validate:"required"`
		Image            *multipart.FileHeader `validate:"-"`
		Crop             string                `validate:"max=64"`
		DetectedDisease  string                `validate:"max=128"`
		IsHealthy        bool
		Confidence       float64 `validate:"gte=0"`
		Solution         string
		OrganicTreatment string
		Pesticides       []entities.Pesticide `validate:"dive"`
	}

	DiseaseStats struct {
		TotalDetections int            `json:"totalDetections"`
		HealthyCount    int            `json:"healthyCount"`
		DiseasedCount   int            `json:"diseasedCount"`
		DiseaseTypes    map[string]int `json:"diseaseTypes"`
	}
)
