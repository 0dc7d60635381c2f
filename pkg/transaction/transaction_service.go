package transaction

import (
	"context"
	"errors"
	"math"

	"agrifusion/domain"
	"agrifusion/entities"
	"agrifusion/internal/utils"
	"agrifusion/pkg/farmer"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type (
	TransactionService interface {
		GetTransactions(ctx context.Context, username string) ([]*entities.Transaction, error)
		AddTransaction(ctx context.Context, req domain.AddTransactionRequest) (*entities.Transaction, error)
		DeleteTransaction(ctx context.Context, id string) error
		GetSummary(ctx context.Context, username string) (domain.TransactionSummary, error)
		ExportTransactions(ctx context.Context, username, format string) (domain.ExportFile, error)
	}

	transactionService struct {
		transactionRepository TransactionRepository
		farmerService         farmer.FarmerService
	}
)

func NewTransactionService(transactionRepository TransactionRepository, farmerService farmer.FarmerService) TransactionService {
	return &transactionService{
		transactionRepository: transactionRepository,
		farmerService:         farmerService,
	}
}

func (s *transactionService) GetTransactions(ctx context.Context, username string) ([]*entities.Transaction, error) {
	return s.transactionRepository.GetTransactionsByUsername(ctx, username)
}

func (s *transactionService) AddTransaction(ctx context.Context, req domain.AddTransactionRequest) (*entities.Transaction, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	amount := req.Amount.Float64()
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, domain.ErrNegativeAmount
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	f, err := s.farmerService.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	tx := &entities.Transaction{
		ID:          uuid.New(),
		Username:    f.Username,
		FarmerID:    f.ID,
		Type:        req.Type,
		Category:    req.Category,
		Amount:      amount,
		Date:        date,
		Description: req.Description,
	}
	if err := s.transactionRepository.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	if err := s.transactionRepository.DeleteTransaction(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}
	return nil
}

func (s *transactionService) GetSummary(ctx context.Context, username string) (domain.TransactionSummary, error) {
	txs, err := s.transactionRepository.GetTransactionsByUsername(ctx, username)
	if err != nil {
		return domain.TransactionSummary{}, err
	}
	return Summarize(txs), nil
}

func Summarize(txs []*entities.Transaction) domain.TransactionSummary {
	byType := lo.GroupBy(txs, func(tx *entities.Transaction) string { return tx.Type })
	amount := func(tx *entities.Transaction) float64 { return tx.Amount }

	income := lo.SumBy(byType[entities.TransactionIncome], amount)
	expense := lo.SumBy(byType[entities.TransactionExpense], amount)

	return domain.TransactionSummary{
		TotalIncome:      income,
		TotalExpense:     expense,
		NetProfit:        income - expense,
		TransactionCount: len(txs),
	}
}
