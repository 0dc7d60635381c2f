package domain

import (
	"errors"

	"agrifusion/entities"
)

var (
	MessageSuccessGetSoilTests   = "soil tests retrieved successfully"
	MessageSuccessSaveSoilTest   = "soil test saved successfully"
	MessageSuccessDeleteSoilTest = "soil test deleted"

	MessageFailedGetSoilTests   = "error fetching soil tests"
	MessageFailedSaveSoilTest   = "error saving soil test"
	MessageFailedDeleteSoilTest = "error deleting soil test"

	ErrSoilTestNotFound = errors.New("soil test not found")
	ErrInvalidTestDate  = errors.New("invalid test date")
)

type (
	SaveSoilTestRequest struct {
		Username      string     `json:"username" form:"username" validate:"required"`
		N             *FlexFloat `json:"N" form:"N" validate:"required"`
		P             *FlexFloat `json:"P" form:"P" validate:"required"`
		K             *FlexFloat `json:"K" form:"K" validate:"required"`
		Temperature   *FlexFloat `json:"temperature" form:"temperature" validate:"required"`
		Humidity      *FlexFloat `json:"humidity" form:"humidity" validate:"required"`
		Ph            *FlexFloat `json:"ph" form:"ph" validate:"required"`
		Moisture      *FlexFloat `json:"moisture" form:"moisture"`
		Rainfall      *FlexFloat `json:"rainfall" form:"rainfall"`
		PredictedCrop string     `json:"predictedCrop" form:"predictedCrop" validate:"max=64"`
		TestDate      string     `json:"testDate" form:"testDate"`
		Notes         string     `json:"notes" form:"notes" validate:"max=1024"`
	}

	SoilTestsResponse struct {
		RegistrationData entities.SoilSnapshot `json:"registrationData"`
		TestHistory      []*entities.SoilTest  `json:"testHistory"`
	}
)
