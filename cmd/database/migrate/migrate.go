package migration

import (
	"fmt"

	"agrifusion/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	models := []struct {
		name  string
		model interface{}
	}{
		{"farmer", &entities.Farmer{}},
		{"soil test", &entities.SoilTest{}},
		{"transaction", &entities.Transaction{}},
		{"photo", &entities.Photo{}},
		{"disease detection", &entities.DiseaseDetection{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("migrating %s table: %w", m.name, err)
		}
	}

	log.Debug("Database migration complete")
	return nil
}
