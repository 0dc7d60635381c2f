package domain

import "errors"

var (
	MessageSuccessGetStages   = "stages retrieved successfully"
	MessageSuccessGetLayout   = "stage layout computed successfully"
	MessageSuccessSelectStage = "stage selected"

	MessageFailedSelectStage = "error selecting stage"
	MessageFailedGetLayout   = "error computing stage layout"

	ErrUnknownStage  = errors.New("unknown stage")
	ErrInvalidLayout = errors.New("invalid layout dimensions")
)

type (
	Stage struct {
		Key         string `json:"key"`
		Title       string `json:"title"`
		Description string `json:"description"`
		// Redirect is empty for stages that only show their description.
		Redirect string `json:"redirect,omitempty"`
	}

	StagePosition struct {
		Key  string  `json:"key"`
		Left float64 `json:"left"`
		Top  float64 `json:"top"`
	}

	LayoutRequest struct {
		Width         float64 `query:"width" validate:"gt=0"`
		Height        float64 `query:"height" validate:"gt=0"`
		ElementWidth  float64 `query:"elementWidth" validate:"gte=0"`
		ElementHeight float64 `query:"elementHeight" validate:"gte=0"`
		Radius        float64 `query:"radius" validate:"gte=0"`
	}

	StageSelection struct {
		Active   string `json:"active"`
		Stage    Stage  `json:"stage"`
		Redirect string `json:"redirect,omitempty"`
	}
)
