package domain_test

import (
	"testing"
	"time"

	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsValidType(t *testing.T) {
	assert.True(t, domain.IsValidType(domain.Income))
	assert.True(t, domain.IsValidType(domain.Expense))
	assert.True(t, domain.IsValidType(domain.Transfer))
	assert.False(t, domain.IsValidType("REFUND"))
	assert.False(t, domain.IsValidType(""))
}

func TestTransaction_Equal(t *testing.T) {
	now := time.Now().UTC()
	a := domain.Transaction{
		TransactionID:   "tx_1",
		AccountID:       "acc_1",
		Date:            now,
		Amount:          decimal.NewFromInt(120),
		TransactionType: domain.Expense,
		Category:        "Food",
	}
	b := a
	assert.True(t, a.Equal(b))

	// Date comparison uses time.Equal, so timezone representation is ignored.
	b.Date = now.In(time.FixedZone("CST", 8*3600))
	assert.True(t, a.Equal(b))

	b.Amount = decimal.NewFromInt(121)
	assert.False(t, a.Equal(b))
}

func TestAccount_Equal(t *testing.T) {
	a := domain.Account{
		AccountID:    "acc_1",
		Name:         "Salary Account",
		AccountType:  domain.Checking,
		CurrencyCode: "TWD",
		Balance:      decimal.NewFromInt(1000),
	}
	b := a
	b.Balance = decimal.NewFromFloat(1000.00)
	assert.True(t, a.Equal(b), "equal decimal values with different exponents compare equal")

	b.Name = "Renamed"
	assert.False(t, a.Equal(b))
}
