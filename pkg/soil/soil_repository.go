package soil

import (
	"context"

	"agrifusion/entities"
	"agrifusion/pkg/store"

	"gorm.io/gorm"
)

type (
	SoilTestRepository interface {
		CreateSoilTest(ctx context.Context, test *entities.SoilTest) error
		GetSoilTestsByUsername(ctx context.Context, username string) ([]*entities.SoilTest, error)
		DeleteSoilTest(ctx context.Context, id string) error
	}

	soilTestRepository struct {
		tests store.Collection[entities.SoilTest]
	}
)

func NewSoilTestRepository(db *gorm.DB) SoilTestRepository {
	return &soilTestRepository{tests: store.NewCollection[entities.SoilTest](db)}
}

func (r *soilTestRepository) CreateSoilTest(ctx context.Context, test *entities.SoilTest) error {
	return r.tests.Insert(ctx, test)
}

func (r *soilTestRepository) GetSoilTestsByUsername(ctx context.Context, username string) ([]*entities.SoilTest, error) {
	return r.tests.FindMany(ctx, "test_date desc, created_at desc", "username = ?", username)
}

func (r *soilTestRepository) DeleteSoilTest(ctx context.Context, id string) error {
	return r.tests.DeleteByID(ctx, id)
}
