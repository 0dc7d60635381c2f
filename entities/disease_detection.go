package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DiseaseDetection struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username         string    `gorm:"index;not null" json:"username"`
	FarmerID         uuid.UUID `gorm:"type:uuid;index" json:"farmerId"`
	Filename         string    `json:"filename"`
	Path             string    `json:"path"`
	URL              string    `json:"url"`
	Crop             string    `json:"crop"`
	DetectedDisease  string    `json:"detectedDisease"`
	IsHealthy        bool      `json:"isHealthy"`
	Confidence       float64   `json:"confidence"`
	Solution         string    `gorm:"type:text" json:"solution"`
	OrganicTreatment string    `gorm:"type:text" json:"organicTreatment"`

	// stored in submission order
	Pesticides datatypes.JSONSlice[Pesticide] `json:"pesticides"`

	Timestamp
}

type Pesticide struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Target    string `json:"target"`
}

func (d *DiseaseDetection) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.Pesticides == nil {
		d.Pesticides = datatypes.JSONSlice[Pesticide]{}
	}
	return nil
}
