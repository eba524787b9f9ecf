// Package accounting holds the pure derivation functions consumed by the
// presentation layer and the AI summary builder. Everything here is
// recomputed per call from the current collections; nothing is cached.
package accounting

import (
	"fmt"

	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReferenceCurrency is the currency every aggregate total is normalised to.
const ReferenceCurrency = "TWD"

// conversionRates is a fixed mock table, not a live feed. Unknown currencies
// convert 1:1.
var conversionRates = map[string]decimal.Decimal{
	"TWD": decimal.NewFromInt(1),
	"USD": decimal.NewFromInt(32),
}

// NormalizeToReference converts an amount in the given currency to the
// reference currency using the fixed rate table.
func NormalizeToReference(amount decimal.Decimal, currencyCode string) decimal.Decimal {
	rate, ok := conversionRates[currencyCode]
	if !ok {
		return amount
	}
	return amount.Mul(rate)
}

// SignedDelta returns the balance change a transaction applies to its owning
// account: +amount for INCOME, -amount for EXPENSE and TRANSFER (the transfer
// destination is credited separately by the reconciler).
func SignedDelta(txn domain.Transaction) (decimal.Decimal, error) {
	switch txn.TransactionType {
	case domain.Income:
		return txn.Amount, nil
	case domain.Expense, domain.Transfer:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type '%s' for transaction ID %s", txn.TransactionType, txn.TransactionID)
	}
}

// TotalBalance sums account balances normalised to the reference currency.
func TotalBalance(accounts []domain.Account) decimal.Decimal {
	total := decimal.Zero
	for _, acc := range accounts {
		total = total.Add(NormalizeToReference(acc.Balance, acc.CurrencyCode))
	}
	return total
}

// TotalStockValue sums holding market values normalised to the reference
// currency.
func TotalStockValue(stocks []domain.StockHolding) decimal.Decimal {
	total := decimal.Zero
	for _, s := range stocks {
		total = total.Add(NormalizeToReference(s.MarketValue(), s.CurrencyCode))
	}
	return total
}

// NetWorth is the normalised sum of all account balances and stock market
// values. Decimal addition is exact, so the result is independent of input
// ordering.
func NetWorth(accounts []domain.Account, stocks []domain.StockHolding) decimal.Decimal {
	return TotalBalance(accounts).Add(TotalStockValue(stocks))
}

// ExpenseBreakdown groups EXPENSE transactions by category and sums their
// amounts. No currency normalisation is applied; expense tracking is assumed
// single-currency.
func ExpenseBreakdown(transactions []domain.Transaction) map[string]decimal.Decimal {
	breakdown := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		if txn.TransactionType != domain.Expense {
			continue
		}
		breakdown[txn.Category] = breakdown[txn.Category].Add(txn.Amount)
	}
	return breakdown
}

// maxRecentTransactions caps the transaction sample in an AI summary.
const maxRecentTransactions = 10

// BuildSummary condenses the current collections into the payload sent to the
// AI advisor. Transactions are taken from the head of the sequence (most
// recent action first).
func BuildSummary(accounts []domain.Account, transactions []domain.Transaction, stocks []domain.StockHolding) domain.FinancialSummary {
	recent := transactions
	if len(recent) > maxRecentTransactions {
		recent = recent[:maxRecentTransactions]
	}

	holdings := make([]domain.HoldingSummary, 0, len(stocks))
	for _, s := range stocks {
		holdings = append(holdings, domain.HoldingSummary{
			Symbol:   s.Symbol,
			Quantity: s.Quantity,
			Gain:     s.Gain(),
		})
	}

	return domain.FinancialSummary{
		TotalBalance:       TotalBalance(accounts),
		TransactionCount:   len(transactions),
		RecentTransactions: recent,
		StockHoldings:      holdings,
	}
}
