package domain

import "errors"

var (
	MessageSuccessPredictCrop = "crop predicted successfully"
	MessageFailedPredictCrop  = "error predicting crop"

	ErrCropModelUnavailable = errors.New("crop prediction service unavailable")
)

type (
	PredictCropRequest struct {
		N           *FlexFloat `json:"N" validate:"required"`
		P           *FlexFloat `json:"P" validate:"required"`
		K           *FlexFloat `json:"K" validate:"required"`
		Temperature *FlexFloat `json:"temperature" validate:"required"`
		Humidity    *FlexFloat `json:"humidity" validate:"required"`
		Ph          *FlexFloat `json:"ph" validate:"required"`
		Rainfall    *FlexFloat `json:"rainfall" validate:"required"`
	}

	PredictCropResponse struct {
		Prediction string `json:"prediction"`
	}
)
