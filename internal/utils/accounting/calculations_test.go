package accounting_test

import (
	"testing"

	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	"github.com/fintrackpro/fintrack_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twd(v int64) domain.Account {
	return domain.Account{AccountID: "twd", CurrencyCode: "TWD", Balance: decimal.NewFromInt(v)}
}

func usd(v int64) domain.Account {
	return domain.Account{AccountID: "usd", CurrencyCode: "USD", Balance: decimal.NewFromInt(v)}
}

func TestNormalizeToReference(t *testing.T) {
	assert.True(t, accounting.NormalizeToReference(decimal.NewFromInt(100), "TWD").Equal(decimal.NewFromInt(100)))
	assert.True(t, accounting.NormalizeToReference(decimal.NewFromInt(100), "USD").Equal(decimal.NewFromInt(3200)))
	// Unknown currencies pass through 1:1.
	assert.True(t, accounting.NormalizeToReference(decimal.NewFromInt(100), "JPY").Equal(decimal.NewFromInt(100)))
}

func TestSignedDelta(t *testing.T) {
	amount := decimal.NewFromInt(250)

	delta, err := accounting.SignedDelta(domain.Transaction{TransactionType: domain.Income, Amount: amount})
	require.NoError(t, err)
	assert.True(t, delta.Equal(amount))

	delta, err = accounting.SignedDelta(domain.Transaction{TransactionType: domain.Expense, Amount: amount})
	require.NoError(t, err)
	assert.True(t, delta.Equal(amount.Neg()))

	delta, err = accounting.SignedDelta(domain.Transaction{TransactionType: domain.Transfer, Amount: amount})
	require.NoError(t, err)
	assert.True(t, delta.Equal(amount.Neg()), "the source side of a transfer is a debit")

	_, err = accounting.SignedDelta(domain.Transaction{TransactionType: "REFUND", Amount: amount})
	assert.Error(t, err)
}

func TestTotalBalance_MixedCurrencies(t *testing.T) {
	total := accounting.TotalBalance([]domain.Account{twd(100000), usd(1000)})
	assert.True(t, total.Equal(decimal.NewFromInt(132000)), "100000 + 1000*32, got %s", total)
}

func TestNetWorth_OrderIndependent(t *testing.T) {
	accounts := []domain.Account{twd(158000), usd(12000), twd(500000)}
	stocks := []domain.StockHolding{
		{Quantity: decimal.NewFromInt(1000), CurrentPrice: decimal.NewFromInt(1050), CurrencyCode: "TWD"},
		{Quantity: decimal.NewFromInt(50), CurrentPrice: decimal.NewFromInt(225), CurrencyCode: "USD"},
	}

	forward := accounting.NetWorth(accounts, stocks)

	reversedAccounts := []domain.Account{accounts[2], accounts[1], accounts[0]}
	reversedStocks := []domain.StockHolding{stocks[1], stocks[0]}
	backward := accounting.NetWorth(reversedAccounts, reversedStocks)

	assert.True(t, forward.Equal(backward), "net worth must not depend on input order")
	// 158000 + 12000*32 + 500000 + 1000*1050 + 50*225*32
	assert.True(t, forward.Equal(decimal.NewFromInt(2452000)), "got %s", forward)
}

func TestExpenseBreakdown_GroupsByCategory(t *testing.T) {
	transactions := []domain.Transaction{
		{TransactionType: domain.Expense, Category: "Food", Amount: decimal.NewFromInt(120)},
		{TransactionType: domain.Expense, Category: "Food", Amount: decimal.NewFromInt(80)},
		{TransactionType: domain.Expense, Category: "Transport", Amount: decimal.NewFromInt(1280)},
		{TransactionType: domain.Income, Category: "Salary", Amount: decimal.NewFromInt(55000)},
		{TransactionType: domain.Transfer, Category: "", Amount: decimal.NewFromInt(3000)},
	}

	breakdown := accounting.ExpenseBreakdown(transactions)
	require.Len(t, breakdown, 2, "income and transfers are excluded")
	assert.True(t, breakdown["Food"].Equal(decimal.NewFromInt(200)))
	assert.True(t, breakdown["Transport"].Equal(decimal.NewFromInt(1280)))
}

func TestBuildSummary_CapsRecentTransactions(t *testing.T) {
	transactions := make([]domain.Transaction, 25)
	for i := range transactions {
		transactions[i] = domain.Transaction{
			TransactionID:   "tx",
			TransactionType: domain.Expense,
			Amount:          decimal.NewFromInt(int64(i + 1)),
		}
	}

	summary := accounting.BuildSummary([]domain.Account{twd(1000)}, transactions, nil)

	assert.Equal(t, 25, summary.TransactionCount)
	require.Len(t, summary.RecentTransactions, 10)
	// The sample comes from the head of the sequence.
	assert.True(t, summary.RecentTransactions[0].Amount.Equal(decimal.NewFromInt(1)))
	assert.True(t, summary.TotalBalance.Equal(decimal.NewFromInt(1000)))
}

func TestBuildSummary_HoldingGains(t *testing.T) {
	stocks := []domain.StockHolding{
		{Symbol: "AAPL", Quantity: decimal.NewFromInt(10), AvgCost: decimal.NewFromInt(100), CurrentPrice: decimal.NewFromInt(150), CurrencyCode: "USD"},
	}

	summary := accounting.BuildSummary(nil, nil, stocks)
	require.Len(t, summary.StockHoldings, 1)
	assert.Equal(t, "AAPL", summary.StockHoldings[0].Symbol)
	assert.True(t, summary.StockHoldings[0].Gain.Equal(decimal.NewFromInt(500)), "(150-100)*10 = 500")
}
