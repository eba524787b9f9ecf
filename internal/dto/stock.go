package dto

import (
	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StockPayload is one holding entry in a replace-collection request.
type StockPayload struct {
	StockID      string          `json:"stockID"`
	Symbol       string          `json:"symbol" binding:"required"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	AvgCost      decimal.Decimal `json:"avgCost" binding:"required"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
	Market       domain.Market   `json:"market" binding:"required,oneof=TW US"`
}

// ReplaceStocksRequest carries the full next portfolio collection.
type ReplaceStocksRequest struct {
	Stocks []StockPayload `json:"stocks" binding:"required,dive"`
}

// StockResponse mirrors domain.StockHolding plus the derived gain figures.
type StockResponse struct {
	StockID      string          `json:"stockID"`
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	AvgCost      decimal.Decimal `json:"avgCost"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	CurrencyCode string          `json:"currencyCode"`
	Market       domain.Market   `json:"market"`
	Gain         decimal.Decimal `json:"gain"`
	GainPercent  decimal.Decimal `json:"gainPercent"`
}

// ToDomainStock converts a payload entry to the domain representation. A new
// holding with no current price starts at its cost basis.
func (p StockPayload) ToDomainStock() domain.StockHolding {
	current := p.CurrentPrice
	if current.IsZero() {
		current = p.AvgCost
	}
	return domain.StockHolding{
		StockID:      p.StockID,
		Symbol:       p.Symbol,
		Name:         p.Name,
		Quantity:     p.Quantity,
		AvgCost:      p.AvgCost,
		CurrentPrice: current,
		CurrencyCode: p.CurrencyCode,
		Market:       p.Market,
	}
}

// ToStockResponse converts a domain.StockHolding to its response DTO.
func ToStockResponse(st domain.StockHolding) StockResponse {
	return StockResponse{
		StockID:      st.StockID,
		Symbol:       st.Symbol,
		Name:         st.Name,
		Quantity:     st.Quantity,
		AvgCost:      st.AvgCost,
		CurrentPrice: st.CurrentPrice,
		CurrencyCode: st.CurrencyCode,
		Market:       st.Market,
		Gain:         st.Gain(),
		GainPercent:  st.GainPercent(),
	}
}

// ToListStockResponse converts a slice of domain holdings.
func ToListStockResponse(stocks []domain.StockHolding) []StockResponse {
	res := make([]StockResponse, len(stocks))
	for i, st := range stocks {
		res[i] = ToStockResponse(st)
	}
	return res
}
