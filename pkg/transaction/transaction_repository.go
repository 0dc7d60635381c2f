package transaction

import (
	"context"

	"agrifusion/entities"
	"agrifusion/pkg/store"

	"gorm.io/gorm"
)

type (
	TransactionRepository interface {
		CreateTransaction(ctx context.Context, tx *entities.Transaction) error
		GetTransactionsByUsername(ctx context.Context, username string) ([]*entities.Transaction, error)
		DeleteTransaction(ctx context.Context, id string) error
	}

	transactionRepository struct {
		transactions store.Collection[entities.Transaction]
	}
)

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{transactions: store.NewCollection[entities.Transaction](db)}
}

func (r *transactionRepository) CreateTransaction(ctx context.Context, tx *entities.Transaction) error {
	return r.transactions.Insert(ctx, tx)
}

func (r *transactionRepository) GetTransactionsByUsername(ctx context.Context, username string) ([]*entities.Transaction, error) {
	return r.transactions.FindMany(ctx, "date desc, created_at desc", "username = ?", username)
}

func (r *transactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	return r.transactions.DeleteByID(ctx, id)
}
