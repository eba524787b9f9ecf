package dto

import (
	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountPayload is one account entry in a replace-collection request.
// AccountID is empty for entries the user just created.
type AccountPayload struct {
	AccountID    string             `json:"accountID"`
	Name         string             `json:"name" binding:"required"`
	BankName     string             `json:"bankName"`
	AccountType  domain.AccountType `json:"accountType" binding:"required,oneof=Checking Savings Credit Investment Cash"`
	CurrencyCode string             `json:"currencyCode" binding:"required,currencycode"`
	Balance      decimal.Decimal    `json:"balance"`
}

// ReplaceAccountsRequest carries the full next account collection. The
// reconciler derives the minimal persistence writes from the diff.
type ReplaceAccountsRequest struct {
	Accounts []AccountPayload `json:"accounts" binding:"required,dive"`
}

// AccountResponse mirrors domain.Account.
type AccountResponse struct {
	AccountID    string             `json:"accountID"`
	Name         string             `json:"name"`
	BankName     string             `json:"bankName"`
	AccountType  domain.AccountType `json:"accountType"`
	CurrencyCode string             `json:"currencyCode"`
	Balance      decimal.Decimal    `json:"balance"`
}

// ToDomainAccount converts a payload entry to the domain representation.
func (p AccountPayload) ToDomainAccount() domain.Account {
	return domain.Account{
		AccountID:    p.AccountID,
		Name:         p.Name,
		BankName:     p.BankName,
		AccountType:  p.AccountType,
		CurrencyCode: p.CurrencyCode,
		Balance:      p.Balance,
	}
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:    acc.AccountID,
		Name:         acc.Name,
		BankName:     acc.BankName,
		AccountType:  acc.AccountType,
		CurrencyCode: acc.CurrencyCode,
		Balance:      acc.Balance,
	}
}

// ToListAccountResponse converts a slice of domain accounts.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(acc)
	}
	return res
}
