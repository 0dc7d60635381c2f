package farmer

import (
	"context"

	"agrifusion/entities"
	"agrifusion/pkg/store"

	"gorm.io/gorm"
)

type (
	FarmerRepository interface {
		CreateFarmer(ctx context.Context, farmer *entities.Farmer) error
		GetFarmerByUsername(ctx context.Context, username string) (*entities.Farmer, error)
		GetFarmerByID(ctx context.Context, id string) (*entities.Farmer, error)
		GetFarmers(ctx context.Context) ([]*entities.Farmer, error)
		UpdateFarmer(ctx context.Context, farmer *entities.Farmer) error
		DeleteFarmer(ctx context.Context, id string) error
	}

	farmerRepository struct {
		farmers store.Collection[entities.Farmer]
	}
)

func NewFarmerRepository(db *gorm.DB) FarmerRepository {
	return &farmerRepository{farmers: store.NewCollection[entities.Farmer](db)}
}

func (r *farmerRepository) CreateFarmer(ctx context.Context, farmer *entities.Farmer) error {
	return r.farmers.Insert(ctx, farmer)
}

func (r *farmerRepository) GetFarmerByUsername(ctx context.Context, username string) (*entities.Farmer, error) {
	return r.farmers.FindOne(ctx, "username = ?", username)
}

func (r *farmerRepository) GetFarmerByID(ctx context.Context, id string) (*entities.Farmer, error) {
	return r.farmers.FindByID(ctx, id)
}

func (r *farmerRepository) GetFarmers(ctx context.Context) ([]*entities.Farmer, error) {
	return r.farmers.FindMany(ctx, "created_at asc", "")
}

func (r *farmerRepository) UpdateFarmer(ctx context.Context, farmer *entities.Farmer) error {
	return r.farmers.Save(ctx, farmer)
}

func (r *farmerRepository) DeleteFarmer(ctx context.Context, id string) error {
	return r.farmers.DeleteByID(ctx, id)
}
