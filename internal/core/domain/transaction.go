package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies the direction of a money movement.
type TransactionType string

const (
	Income   TransactionType = "INCOME"
	Expense  TransactionType = "EXPENSE"
	Transfer TransactionType = "TRANSFER"
)

// ExpenseCategories and IncomeCategories are the suggested category sets
// offered by the presentation layer. Category itself is free-form.
var (
	ExpenseCategories = []string{
		"Food", "Transport", "Housing", "Entertainment", "Shopping",
		"Medical", "Education", "Insurance", "Misc",
	}
	IncomeCategories = []string{
		"Salary", "Bonus", "Investment Income", "Side Job", "Other",
	}
)

// Transaction is a single income/expense/transfer record. Amount is always
// stored positive; the sign applied to the owning account's balance is implied
// by TransactionType. CounterAccountID is only set for TRANSFER and names the
// account credited by the movement.
type Transaction struct {
	TransactionID    string          `json:"transactionID"`
	AccountID        string          `json:"accountID"`
	CounterAccountID string          `json:"counterAccountID,omitempty"`
	Date             time.Time       `json:"date"`
	Amount           decimal.Decimal `json:"amount"`
	TransactionType  TransactionType `json:"transactionType"`
	Category         string          `json:"category"`
	Description      string          `json:"description"`
}

// Equal reports structural equality between two transactions.
func (t Transaction) Equal(other Transaction) bool {
	return t.TransactionID == other.TransactionID &&
		t.AccountID == other.AccountID &&
		t.CounterAccountID == other.CounterAccountID &&
		t.Date.Equal(other.Date) &&
		t.Amount.Equal(other.Amount) &&
		t.TransactionType == other.TransactionType &&
		t.Category == other.Category &&
		t.Description == other.Description
}

// IsValidType reports whether tt is one of the known transaction types.
func IsValidType(tt TransactionType) bool {
	switch tt {
	case Income, Expense, Transfer:
		return true
	}
	return false
}
