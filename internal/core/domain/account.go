package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies a bank account by its banking product type.
type AccountType string

const (
	Checking   AccountType = "Checking"
	Savings    AccountType = "Savings"
	Credit     AccountType = "Credit"
	Investment AccountType = "Investment"
	Cash       AccountType = "Cash"
)

// Account represents a bank account owned by the session user.
// Balance is only ever mutated through a direct account edit or through the
// transaction-insertion cascade; it is never recomputed from history.
type Account struct {
	AccountID    string          `json:"accountID"`
	Name         string          `json:"name"`
	BankName     string          `json:"bankName"`
	AccountType  AccountType     `json:"accountType"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
}

// Equal reports structural equality. Used by the reconciler to decide whether
// a replaced collection member needs a persistence write.
func (a Account) Equal(other Account) bool {
	return a.AccountID == other.AccountID &&
		a.Name == other.Name &&
		a.BankName == other.BankName &&
		a.AccountType == other.AccountType &&
		a.CurrencyCode == other.CurrencyCode &&
		a.Balance.Equal(other.Balance)
}
