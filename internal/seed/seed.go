// Package seed holds the fixed default dataset written once for a first-time
// user so the application is non-empty on first login.
package seed

import (
	"time"

	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	portsrepo "github.com/fintrackpro/fintrack_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// DefaultSnapshot returns the seed dataset. IDs are fixed so re-seeding a
// wiped user produces the same documents.
func DefaultSnapshot() portsrepo.Snapshot {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	return portsrepo.Snapshot{
		Accounts: []domain.Account{
			{
				AccountID:    "acc_1",
				Name:         "Salary Account",
				BankName:     "CTBC Bank",
				AccountType:  domain.Checking,
				CurrencyCode: "TWD",
				Balance:      decimal.NewFromInt(158000),
			},
			{
				AccountID:    "acc_2",
				Name:         "Emergency Fund",
				BankName:     "Cathay United Bank",
				AccountType:  domain.Savings,
				CurrencyCode: "TWD",
				Balance:      decimal.NewFromInt(500000),
			},
			{
				AccountID:    "acc_3",
				Name:         "US Brokerage",
				BankName:     "Firstrade",
				AccountType:  domain.Investment,
				CurrencyCode: "USD",
				Balance:      decimal.NewFromInt(12000),
			},
		},
		Transactions: []domain.Transaction{
			{
				TransactionID:   "tx_1",
				AccountID:       "acc_1",
				Date:            today,
				Amount:          decimal.NewFromInt(55000),
				TransactionType: domain.Income,
				Category:        "Salary",
				Description:     "Monthly salary",
			},
			{
				TransactionID:   "tx_2",
				AccountID:       "acc_1",
				Date:            today.AddDate(0, 0, -1),
				Amount:          decimal.NewFromInt(120),
				TransactionType: domain.Expense,
				Category:        "Food",
				Description:     "Lunch box",
			},
			{
				TransactionID:   "tx_3",
				AccountID:       "acc_1",
				Date:            today.AddDate(0, 0, -2),
				Amount:          decimal.NewFromInt(1280),
				TransactionType: domain.Expense,
				Category:        "Transport",
				Description:     "High speed rail ticket",
			},
			{
				TransactionID:   "tx_4",
				AccountID:       "acc_2",
				Date:            today.AddDate(0, 0, -3),
				Amount:          decimal.NewFromInt(3000),
				TransactionType: domain.Expense,
				Category:        "Housing",
				Description:     "Utility bill",
			},
		},
		Stocks: []domain.StockHolding{
			{
				StockID:      "st_1",
				Symbol:       "2330",
				Name:         "TSMC",
				Quantity:     decimal.NewFromInt(1000),
				AvgCost:      decimal.NewFromInt(600),
				CurrentPrice: decimal.NewFromInt(1050),
				CurrencyCode: "TWD",
				Market:       domain.MarketTW,
			},
			{
				StockID:      "st_2",
				Symbol:       "AAPL",
				Name:         "Apple Inc.",
				Quantity:     decimal.NewFromInt(50),
				AvgCost:      decimal.NewFromInt(150),
				CurrentPrice: decimal.NewFromInt(225),
				CurrencyCode: "USD",
				Market:       domain.MarketUS,
			},
			{
				StockID:      "st_3",
				Symbol:       "0050",
				Name:         "Yuanta Taiwan 50 ETF",
				Quantity:     decimal.NewFromInt(2000),
				AvgCost:      decimal.NewFromInt(120),
				CurrentPrice: decimal.NewFromInt(185),
				CurrencyCode: "TWD",
				Market:       domain.MarketTW,
			},
		},
	}
}
