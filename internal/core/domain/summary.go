package domain

import (
	"github.com/shopspring/decimal"
)

// HoldingSummary is the condensed per-position view sent to the AI advisor.
type HoldingSummary struct {
	Symbol   string          `json:"symbol"`
	Quantity decimal.Decimal `json:"quantity"`
	Gain     decimal.Decimal `json:"gain"`
}

// FinancialSummary is the structured payload for an AI commentary request.
// RecentTransactions holds at most the ten most recent entries, head first.
type FinancialSummary struct {
	TotalBalance       decimal.Decimal  `json:"totalBalance"`
	TransactionCount   int              `json:"transactionCount"`
	RecentTransactions []Transaction    `json:"recentTransactions"`
	StockHoldings      []HoldingSummary `json:"stockHoldings"`
}
