package photo

import (
	"context"

	"agrifusion/entities"
	"agrifusion/pkg/store"

	"gorm.io/gorm"
)

type (
	PhotoRepository interface {
		CreatePhoto(ctx context.Context, photo *entities.Photo) error
		GetPhotoByID(ctx context.Context, id string) (*entities.Photo, error)
		GetPhotosByUsername(ctx context.Context, username string) ([]*entities.Photo, error)
		DeletePhoto(ctx context.Context, id string) error
		GetAllPaths(ctx context.Context) ([]string, error)
	}

	photoRepository struct {
		photos store.Collection[entities.Photo]
	}
)

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{photos: store.NewCollection[entities.Photo](db)}
}

func (r *photoRepository) CreatePhoto(ctx context.Context, photo *entities.Photo) error {
	return r.photos.Insert(ctx, photo)
}

func (r *photoRepository) GetPhotoByID(ctx context.Context, id string) (*entities.Photo, error) {
	return r.photos.FindByID(ctx, id)
}

func (r *photoRepository) GetPhotosByUsername(ctx context.Context, username string) ([]*entities.Photo, error) {
	return r.photos.FindMany(ctx, "created_at desc", "username = ?", username)
}

func (r *photoRepository) DeletePhoto(ctx context.Context, id string) error {
	return r.photos.DeleteByID(ctx, id)
}

func (r *photoRepository) GetAllPaths(ctx context.Context) ([]string, error) {
	var paths []string
	err := r.photos.DB(ctx).Model(&entities.Photo{}).Pluck("path", &paths).Error
	return paths, err
}
