package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Photo struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username string    `gorm:"index;not null" json:"username"`
	FarmerID uuid.UUID `gorm:"type:uuid;index" json:"farmerId"`
	Filename string    `json:"filename"`
	Path     string    `json:"path"`
	URL      string    `json:"url"`
	Caption  string    `json:"caption"`
	FileSize int64     `json:"fileSize"`
	MimeType string    `json:"mimeType"`

	Timestamp
}

func (p *Photo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
