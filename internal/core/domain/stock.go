package domain

import (
	"github.com/shopspring/decimal"
)

// Market identifies the exchange a holding trades on.
type Market string

const (
	MarketTW Market = "TW"
	MarketUS Market = "US"
)

// StockHolding is a position in the user's portfolio. CurrentPrice is seeded
// from AvgCost on creation and later moved by simulated market ticks or an
// external price update; it never affects other entities.
type StockHolding struct {
	StockID      string          `json:"stockID"`
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	AvgCost      decimal.Decimal `json:"avgCost"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	CurrencyCode string          `json:"currencyCode"`
	Market       Market          `json:"market"`
}

// MarketValue returns quantity x current price.
func (s StockHolding) MarketValue() decimal.Decimal {
	return s.Quantity.Mul(s.CurrentPrice)
}

// Gain returns the unrealised gain: (currentPrice - avgCost) x quantity.
func (s StockHolding) Gain() decimal.Decimal {
	return s.CurrentPrice.Sub(s.AvgCost).Mul(s.Quantity)
}

// GainPercent returns the unrealised gain as a percentage of cost basis.
// A zero cost basis yields zero rather than a division by zero.
func (s StockHolding) GainPercent() decimal.Decimal {
	if s.AvgCost.IsZero() {
		return decimal.Zero
	}
	return s.CurrentPrice.Sub(s.AvgCost).Div(s.AvgCost).Mul(decimal.NewFromInt(100))
}

// Equal reports structural equality between two holdings.
func (s StockHolding) Equal(other StockHolding) bool {
	return s.StockID == other.StockID &&
		s.Symbol == other.Symbol &&
		s.Name == other.Name &&
		s.Quantity.Equal(other.Quantity) &&
		s.AvgCost.Equal(other.AvgCost) &&
		s.CurrentPrice.Equal(other.CurrentPrice) &&
		s.CurrencyCode == other.CurrencyCode &&
		s.Market == other.Market
}
