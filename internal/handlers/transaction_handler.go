package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/tracker"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction HTTP requests
type TransactionHandler struct {
	tracker      *tracker.Tracker
	transactions repositories.TransactionRepositoryInterface
	categories   repositories.CategoryRepositoryInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	t *tracker.Tracker,
	transactions repositories.TransactionRepositoryInterface,
	categories repositories.CategoryRepositoryInterface,
) *TransactionHandler {
	return &TransactionHandler{tracker: t, transactions: transactions, categories: categories}
}

// ListTransactions returns the active user's transactions with the current
// view filter applied, newest first
// @Summary List filtered transactions
// @Tags Transactions
// @Produce json
// @Success 200 {object} dto.ListTransactionsResponse "Filtered transactions"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	transactions, err := h.tracker.FilteredTransactions()
	if err != nil {
		return SendSystemError(c, err)
	}

	out := toTransactionResponses(transactions)
	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: out, Count: len(out)})
}

// ListAllTransactions returns the active user's transactions with no filter
// applied, newest first
// @Summary List all transactions
// @Tags Transactions
// @Produce json
// @Success 200 {object} dto.ListTransactionsResponse "All transactions of the active user"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/all [get]
func (h *TransactionHandler) ListAllTransactions(c echo.Context) error {
	transactions, err := h.tracker.UserTransactions()
	if err != nil {
		return SendSystemError(c, err)
	}

	out := toTransactionResponses(transactions)
	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: out, Count: len(out)})
}

// CreateTransaction records a transaction for the active user
// @Summary Create transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse "Transaction created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 409 {object} errors.ErrorResponse "USER_003 - No active user selected"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, ok := h.tracker.ActiveUserID()
	if !ok {
		return SendError(c, errors.UserNoActiveUser)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	category, err := h.categories.GetByID(req.CategoryID)
	if err != nil {
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}
	if category.UserID != userID {
		return SendError(c, errors.CategoryNotFound, errors.WithDetails("Category belongs to another user"))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount)
	}

	transaction := &models.Transaction{
		Amount:     amount,
		IsPositive: *req.IsPositive,
		CategoryID: req.CategoryID,
		UserID:     userID,
	}
	if req.Timestamp != nil {
		transaction.Timestamp = *req.Timestamp
	}

	if err := h.tracker.InsertTransaction(transaction); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(*transaction))
}

// UpdateTransaction updates a recorded transaction
// @Summary Update transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Transaction updates"
// @Success 200 {object} dto.TransactionResponse "Transaction updated"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_002 - Invalid transaction ID or VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.TransactionInvalidID)
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	transaction, err := h.transactions.GetByID(id)
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return SendError(c, errors.TransactionInvalidAmount)
		}
		transaction.Amount = amount
	}
	if req.IsPositive != nil {
		transaction.IsPositive = *req.IsPositive
	}
	if req.CategoryID != nil {
		category, err := h.categories.GetByID(*req.CategoryID)
		if err != nil {
			if err == repositories.ErrCategoryNotFound {
				return SendError(c, errors.CategoryNotFound)
			}
			return SendSystemError(c, err)
		}
		if category.UserID != transaction.UserID {
			return SendError(c, errors.CategoryNotFound, errors.WithDetails("Category belongs to another user"))
		}
		transaction.CategoryID = *req.CategoryID
	}
	if req.Timestamp != nil {
		transaction.Timestamp = *req.Timestamp
	}

	if err := h.tracker.UpdateTransaction(transaction); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toTransactionResponse(*transaction))
}

// DeleteTransaction removes a transaction
// @Summary Delete transaction
// @Tags Transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} SuccessResponse "Transaction deleted"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_002 - Invalid transaction ID"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.TransactionInvalidID)
	}

	if err := h.tracker.DeleteTransaction(id); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Transaction deleted successfully"})
}

// StreamTransactions pushes the filtered transaction list to the client as
// server-sent events. A fresh snapshot is sent immediately, then another on
// every mutation or filter change. Intermediate snapshots may be skipped
// under load; the latest one always arrives.
// @Summary Stream filtered transactions
// @Tags Transactions
// @Produce text/event-stream
// @Success 200 {string} string "SSE stream of filtered transaction lists"
// @Router /transactions/stream [get]
func (h *TransactionHandler) StreamTransactions(c echo.Context) error {
	ctx := c.Request().Context()

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)

	updates := h.tracker.Watch(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case transactions, ok := <-updates:
			if !ok {
				return nil
			}
			payload, err := json.Marshal(dto.ListTransactionsResponse{
				Transactions: toTransactionResponses(transactions),
				Count:        len(transactions),
			})
			if err != nil {
				return nil
			}
			if _, err := fmt.Fprintf(resp, "data: %s\n\n", payload); err != nil {
				return nil
			}
			resp.Flush()
		}
	}
}
