package handlers

import (
	"fmt"

	"agrifusion/domain"
	"agrifusion/internal/api/presenters"
	"agrifusion/pkg/transaction"

	"github.com/gofiber/fiber/v2"
)

type (
	TransactionHandler interface {
		GetTransactions(c *fiber.Ctx) error
		AddTransaction(c *fiber.Ctx) error
		DeleteTransaction(c *fiber.Ctx) error
		GetSummary(c *fiber.Ctx) error
		ExportTransactions(c *fiber.Ctx) error
	}

	transactionHandler struct {
		transactionService transaction.TransactionService
	}
)

func NewTransactionHandler(transactionService transaction.TransactionService) TransactionHandler {
	return &transactionHandler{
		transactionService: transactionService,
	}
}

func (h *transactionHandler) GetTransactions(c *fiber.Ctx) error {
	res, err := h.transactionService.GetTransactions(c.Context(), c.Params("username"))
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetTransactions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTransactions)
}

func (h *transactionHandler) AddTransaction(c *fiber.Ctx) error {
	req := new(domain.AddTransactionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.transactionService.AddTransaction(c.Context(), *req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedAddTransaction, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddTransaction)
}

func (h *transactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	if err := h.transactionService.DeleteTransaction(c.Context(), c.Params("id")); err != nil {
		return presenters.Fail(c, domain.MessageFailedDeleteTransaction, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteTransaction)
}

func (h *transactionHandler) GetSummary(c *fiber.Ctx) error {
	res, err := h.transactionService.GetSummary(c.Context(), c.Params("username"))
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetSummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSummary)
}

func (h *transactionHandler) ExportTransactions(c *fiber.Ctx) error {
	file, err := h.transactionService.ExportTransactions(c.Context(), c.Params("username"), c.Query("format", domain.ExportFormatCSV))
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedExportTransactions, err)
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Status(fiber.StatusOK).Send(file.Data)
}
