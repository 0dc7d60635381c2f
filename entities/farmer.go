package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleFarmer   = "farmer"
	RoleAdmin    = "admin"
	RoleCustomer = "customer"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Farmer struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"default:farmer" json:"role"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Age          string    `json:"age"`
	Address      string    `json:"address"`
	CropChosen   string    `json:"cropChosen"`
	Status       string    `gorm:"default:active" json:"status"`

	LandDetails LandDetails  `gorm:"embedded;embeddedPrefix:land_" json:"landDetails"`
	SoilDetails SoilSnapshot `gorm:"embedded;embeddedPrefix:soil_" json:"soilDetails"`
	Timestamp
}

// LandDetails is captured once at registration and edited through profile updates.
type LandDetails struct {
	SoilType             string `json:"soilType"`
	LandSize             string `json:"landSize"`
	WaterResource        string `json:"waterResource"`
	PreviousCrop         string `json:"previousCrop"`
	IrrigationPreference string `json:"irrigationPreference"`
}

// SoilSnapshot holds the soil readings a farmer reported when registering.
type SoilSnapshot struct {
	N           float64  `json:"N"`
	P           float64  `json:"P"`
	K           float64  `json:"K"`
	Temperature float64  `json:"temperature"`
	Humidity    float64  `json:"humidity"`
	Ph          float64  `json:"ph"`
	Moisture    *float64 `json:"moisture,omitempty"`
	Rainfall    *float64 `json:"rainfall,omitempty"`
}

func (f *Farmer) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.Status == "" {
		f.Status = StatusActive
	}
	if f.Role == "" {
		f.Role = RoleFarmer
	}
	return nil
}
