package dto

import (
	"time"

	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// transactionDateLayout is the date-only wire format used by the views.
const transactionDateLayout = "2006-01-02"

// CreateTransactionRequest defines the data needed to record a transaction.
// CounterAccountID is required for TRANSFER and must name a different
// account.
type CreateTransactionRequest struct {
	AccountID        string                 `json:"accountID" binding:"required"`
	CounterAccountID string                 `json:"counterAccountID"`
	Date             string                 `json:"date"`
	Amount           decimal.Decimal        `json:"amount" binding:"required"`
	TransactionType  domain.TransactionType `json:"transactionType" binding:"required,oneof=INCOME EXPENSE TRANSFER"`
	Category         string                 `json:"category"`
	Description      string                 `json:"description"`
}

// ToDomainTransaction converts the request to the domain representation.
// An absent or malformed date falls back to the zero time; the reconciler
// substitutes the current time.
func (r CreateTransactionRequest) ToDomainTransaction() domain.Transaction {
	var date time.Time
	if r.Date != "" {
		if parsed, err := time.Parse(transactionDateLayout, r.Date); err == nil {
			date = parsed
		}
	}
	return domain.Transaction{
		AccountID:        r.AccountID,
		CounterAccountID: r.CounterAccountID,
		Date:             date,
		Amount:           r.Amount,
		TransactionType:  r.TransactionType,
		Category:         r.Category,
		Description:      r.Description,
	}
}

// TransactionResponse mirrors domain.Transaction with a date-only string.
type TransactionResponse struct {
	TransactionID    string                 `json:"transactionID"`
	AccountID        string                 `json:"accountID"`
	CounterAccountID string                 `json:"counterAccountID,omitempty"`
	Date             string                 `json:"date"`
	Amount           decimal.Decimal        `json:"amount"`
	TransactionType  domain.TransactionType `json:"transactionType"`
	Category         string                 `json:"category"`
	Description      string                 `json:"description"`
}

// InsertTransactionResponse returns the updated transaction sequence together
// with the account collection the cascade produced.
type InsertTransactionResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Accounts     []AccountResponse     `json:"accounts"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    txn.TransactionID,
		AccountID:        txn.AccountID,
		CounterAccountID: txn.CounterAccountID,
		Date:             txn.Date.Format(transactionDateLayout),
		Amount:           txn.Amount,
		TransactionType:  txn.TransactionType,
		Category:         txn.Category,
		Description:      txn.Description,
	}
}

// ToListTransactionResponse converts a slice of domain transactions.
func ToListTransactionResponse(transactions []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		res[i] = ToTransactionResponse(txn)
	}
	return res
}
