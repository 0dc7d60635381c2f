package disease

import (
	"context"

	"agrifusion/entities"
	"agrifusion/pkg/store"

	"gorm.io/gorm"
)

type (
	DiseaseRepository interface {
		CreateDetection(ctx context.Context, detection *entities.DiseaseDetection) error
		GetDetectionByID(ctx context.Context, id string) (*entities.DiseaseDetection, error)
		GetDetectionsByUsername(ctx context.Context, username string) ([]*entities.DiseaseDetection, error)
		DeleteDetection(ctx context.Context, id string) error
		GetAllPaths(ctx context.Context) ([]string, error)
	}

	diseaseRepository struct {
		detections store.Collection[entities.DiseaseDetection]
	}
)

func NewDiseaseRepository(db *gorm.DB) DiseaseRepository {
	return &diseaseRepository{detections: store.NewCollection[entities.DiseaseDetection](db)}
}

func (r *diseaseRepository) CreateDetection(ctx context.Context, detection *entities.DiseaseDetection) error {
	return r.detections.Insert(ctx, detection)
}

func (r *diseaseRepository) GetDetectionByID(ctx context.Context, id string) (*entities.DiseaseDetection, error) {
	return r.detections.FindByID(ctx, id)
}

func (r *diseaseRepository) GetDetectionsByUsername(ctx context.Context, username string) ([]*entities.DiseaseDetection, error) {
	return r.detections.FindMany(ctx, "created_at desc", "username = ?", username)
}

func (r *diseaseRepository) DeleteDetection(ctx context.Context, id string) error {
	return r.detections.DeleteByID(ctx, id)
}

func (r *diseaseRepository) GetAllPaths(ctx context.Context) ([]string, error) {
	var paths []string
	err := r.detections.DB(ctx).Model(&entities.DiseaseDetection{}).Pluck("path", &paths).Error
	return paths, err
}
