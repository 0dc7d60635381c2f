package domain

import (
	"errors"
	"time"

	"agrifusion/entities"
)

var (
	MessageSuccessRegister     = "registration successful"
	MessageSuccessLogin        = "login successful"
	MessageSuccessAdminLogin   = "admin login successful"
	MessageSuccessGetFarmers   = "farmers retrieved successfully"
	MessageSuccessDeleteFarmer = "farmer deleted successfully"
	MessageSuccessToggleStatus = "farmer status updated successfully"
	MessageSuccessUpdateFarmer = "profile updated successfully"

	MessageFailedRegister     = "error registering"
	MessageFailedLogin        = "login failed"
	MessageFailedGetFarmers   = "failed to retrieve farmers"
	MessageFailedDeleteFarmer = "failed to delete farmer"
	MessageFailedToggleStatus = "failed to update farmer status"
	MessageFailedUpdateFarmer = "error updating profile"

	ErrDuplicateUsername  = errors.New("username already exists")
	ErrFarmerNotFound     = errors.New("farmer not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrHashPassword       = errors.New("failed to hash password")
)

type (
	LandDetailsRequest struct {
		SoilType             string `json:"soilType" form:"soilType"`
		LandSize             string `json:"landSize" form:"landSize"`
		WaterResource        string `json:"waterResource" form:"waterResource"`
		PreviousCrop         string `json:"previousCrop" form:"previousCrop"`
		IrrigationPreference string `json:"irrigationPreference" form:"irrigationPreference"`
	}

	SoilDetailsRequest struct {
		N           *FlexFloat `json:"N"`
		P           *FlexFloat `json:"P"`
		K           *FlexFloat `json:"K"`
		Temperature *FlexFloat `json:"temperature"`
		Humidity    *FlexFloat `json:"humidity"`
		Ph          *FlexFloat `json:"ph"`
		Moisture    *FlexFloat `json:"moisture"`
		Rainfall    *FlexFloat `json:"rainfall"`
	}

	RegisterRequest struct {
		Username    string              `json:"username" validate:"required,username"`
		Password    string              `json:"password" validate:"required,min=6,max=72"`
		Role        string              `json:"role" validate:"omitempty,oneof=farmer customer"`
		Name        string              `json:"name" validate:"max=128"`
		Email       string              `json:"email" validate:"omitempty,email"`
		Phone       string              `json:"phone" validate:"max=32"`
		Age         string              `json:"age" validate:"max=8"`
		Address     string              `json:"address" validate:"max=256"`
		CropChosen  string              `json:"cropChosen" validate:"max=64"`
		LandDetails *LandDetailsRequest `json:"landDetails"`
		SoilDetails *SoilDetailsRequest `json:"soilDetails"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Role     string `json:"role"`
		Username string `json:"username"`
	}

	// UpdateFarmerRequest carries a partial profile; nil fields are left untouched.
	UpdateFarmerRequest struct {
		Password    *string             `json:"password" validate:"omitempty,min=6,max=72"`
		Name        *string             `json:"name" validate:"omitempty,max=128"`
		Email       *string             `json:"email" validate:"omitempty,email"`
		Phone       *string             `json:"phone" validate:"omitempty,max=32"`
		Age         *string             `json:"age" validate:"omitempty,max=8"`
		Address     *string             `json:"address" validate:"omitempty,max=256"`
		CropChosen  *string             `json:"cropChosen" validate:"omitempty,max=64"`
		Status      *string             `json:"status" validate:"omitempty,oneof=active inactive"`
		LandDetails *LandDetailsRequest `json:"landDetails"`
		SoilDetails *SoilDetailsRequest `json:"soilDetails"`
	}

	FarmerResponse struct {
		ID          string                `json:"id"`
		Username    string                `json:"username"`
		Role        string                `json:"role"`
		Name        string                `json:"name"`
		Email       string                `json:"email"`
		Phone       string                `json:"phone"`
		Age         string                `json:"age"`
		Address     string                `json:"address"`
		CropChosen  string                `json:"cropChosen"`
		Status      string                `json:"status"`
		LandDetails entities.LandDetails  `json:"landDetails"`
		SoilDetails entities.SoilSnapshot `json:"soilDetails"`
		CreatedAt   time.Time             `json:"createdAt"`
		UpdatedAt   time.Time             `json:"updatedAt"`
	}
)

func NewFarmerResponse(f *entities.Farmer) FarmerResponse {
	return FarmerResponse{
		ID:          f.ID.String(),
		Username:    f.Username,
		Role:        f.Role,
		Name:        f.Name,
		Email:       f.Email,
		Phone:       f.Phone,
		Age:         f.Age,
		Address:     f.Address,
		CropChosen:  f.CropChosen,
		Status:      f.Status,
		LandDetails: f.LandDetails,
		SoilDetails: f.SoilDetails,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func (l LandDetailsRequest) Entity() entities.LandDetails {
	return entities.LandDetails{
		SoilType:             l.SoilType,
		LandSize:             l.LandSize,
		WaterResource:        l.WaterResource,
		PreviousCrop:         l.PreviousCrop,
		IrrigationPreference: l.IrrigationPreference,
	}
}

// Apply overwrites only the readings present in the request.
func (s SoilDetailsRequest) Apply(snap *entities.SoilSnapshot) {
	set := func(dst *float64, v *FlexFloat) {
		if v != nil {
			*dst = v.Float64()
		}
	}
	set(&snap.N, s.N)
	set(&snap.P, s.P)
	set(&snap.K, s.K)
	set(&snap.Temperature, s.Temperature)
	set(&snap.Humidity, s.Humidity)
	set(&snap.Ph, s.Ph)
	if s.Moisture != nil {
		snap.Moisture = FloatPtr(s.Moisture)
	}
	if s.Rainfall != nil {
		snap.Rainfall = FloatPtr(s.Rainfall)
	}
}
