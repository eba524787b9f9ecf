package dto

import (
	"github.com/shopspring/decimal"
)

// SummaryResponse carries the derived aggregates for the dashboard view.
// All totals are normalised to the reference currency with the fixed rate
// table.
type SummaryResponse struct {
	ReferenceCurrency string                     `json:"referenceCurrency"`
	NetWorth          decimal.Decimal            `json:"netWorth"`
	TotalBalance      decimal.Decimal            `json:"totalBalance"`
	TotalStockValue   decimal.Decimal            `json:"totalStockValue"`
	ExpenseBreakdown  map[string]decimal.Decimal `json:"expenseBreakdown"`
}

// InsightResponse returns AI commentary as-is. The markdown is free-form
// prose; nothing downstream parses it.
type InsightResponse struct {
	Markdown  string `json:"markdown"`
	Timestamp int64  `json:"timestamp"`
}

// CategoriesResponse lists the suggested category sets per transaction type.
type CategoriesResponse struct {
	Expense []string `json:"expense"`
	Income  []string `json:"income"`
}
