package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SoilTest struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username      string    `gorm:"index;not null" json:"username"`
	FarmerID      uuid.UUID `gorm:"type:uuid;index" json:"farmerId"`
	N             float64   `json:"N"`
	P             float64   `json:"P"`
	K             float64   `json:"K"`
	Temperature   float64   `json:"temperature"`
	Humidity      float64   `json:"humidity"`
	Ph            float64   `json:"ph"`
	Moisture      *float64  `json:"moisture,omitempty"`
	Rainfall      *float64  `json:"rainfall,omitempty"`
	PredictedCrop string    `json:"predictedCrop,omitempty"`
	TestDate      time.Time `gorm:"index" json:"testDate"`
	Notes         string    `json:"notes"`

	Timestamp
}

func (s *SoilTest) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.TestDate.IsZero() {
		s.TestDate = time.Now()
	}
	return nil
}
