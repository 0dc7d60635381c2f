package store

import (
	"context"

	"gorm.io/gorm"
)

// Collection is the per-entity access path every repository is built on.
// Lookups that match nothing return gorm.ErrRecordNotFound.
type Collection[T any] struct {
	db *gorm.DB
}

func NewCollection[T any](db *gorm.DB) Collection[T] {
	return Collection[T]{db: db}
}

func (c Collection[T]) DB(ctx context.Context) *gorm.DB {
	return c.db.WithContext(ctx)
}

func (c Collection[T]) FindOne(ctx context.Context, query string, args ...interface{}) (*T, error) {
	var out T
	if err := c.db.WithContext(ctx).Where(query, args...).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (c Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return c.FindOne(ctx, "id = ?", id)
}

// FindMany returns every match in order; an empty result is not an error.
func (c Collection[T]) FindMany(ctx context.Context, order string, query string, args ...interface{}) ([]*T, error) {
	out := make([]*T, 0)
	tx := c.db.WithContext(ctx)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (c Collection[T]) Insert(ctx context.Context, doc *T) error {
	return c.db.WithContext(ctx).Create(doc).Error
}

func (c Collection[T]) Save(ctx context.Context, doc *T) error {
	return c.db.WithContext(ctx).Save(doc).Error
}

// DeleteByID reports gorm.ErrRecordNotFound when no row had that id.
func (c Collection[T]) DeleteByID(ctx context.Context, id string) error {
	var zero T
	res := c.db.WithContext(ctx).Where("id = ?", id).Delete(&zero)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
