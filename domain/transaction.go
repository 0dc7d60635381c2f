package domain

import (
	"errors"
)

var (
	MessageSuccessGetTransactions   = "transactions retrieved successfully"
	MessageSuccessAddTransaction    = "transaction added successfully"
	MessageSuccessDeleteTransaction = "transaction deleted successfully"
	MessageSuccessGetSummary        = "transaction summary retrieved successfully"

	MessageFailedGetTransactions    = "error fetching transactions"
	MessageFailedAddTransaction     = "error adding transaction"
	MessageFailedDeleteTransaction  = "error deleting transaction"
	MessageFailedGetSummary         = "error calculating summary"
	MessageFailedExportTransactions = "error exporting transactions"

	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidDate         = errors.New("invalid date")
	ErrNegativeAmount      = errors.New("amount must not be negative")
	ErrInvalidExportFormat = errors.New("export format must be csv or xlsx")
)

const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"
)

type (
	AddTransactionRequest struct {
		Username    string     `json:"username" form:"username" validate:"required"`
		Type        string     `json:"type" form:"type" validate:"required,oneof=income expense"`
		Category    string     `json:"category" form:"category" validate:"required,max=64"`
		Amount      *FlexFloat `json:"amount" form:"amount" validate:"required"`
		Date        string     `json:"date" form:"date"`
		Description string     `json:"description" form:"description" validate:"max=512"`
	}

	TransactionSummary struct {
		TotalIncome      float64 `json:"totalIncome"`
		TotalExpense     float64 `json:"totalExpense"`
		NetProfit        float64 `json:"netProfit"`
		TransactionCount int     `json:"transactionCount"`
	}

	ExportFile struct {
		Filename    string
		ContentType string
		Data        []byte
	}
)
