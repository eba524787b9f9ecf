package services

import (
	"math/rand/v2"

	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	portssvc "github.com/fintrackpro/fintrack_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// marketService produces simulated price movements for the portfolio. Prices
// follow a small random walk; there is no live market feed.
type marketService struct{}

// NewMarketService creates the price simulation service.
func NewMarketService() portssvc.MarketSvcFacade {
	return &marketService{}
}

var _ portssvc.MarketSvcFacade = (*marketService)(nil)

// SimulateTick moves every holding's current price by up to +/-2.5% and
// rounds to two decimal places. The returned collection goes back through the
// reconciler so the moves persist like any other stock edit.
func (m *marketService) SimulateTick(stocks []domain.StockHolding) []domain.StockHolding {
	next := make([]domain.StockHolding, len(stocks))
	for i, st := range stocks {
		changePercent := (rand.Float64() - 0.5) * 0.05
		factor := decimal.NewFromFloat(1 + changePercent)
		st.CurrentPrice = st.CurrentPrice.Mul(factor).Round(2)
		next[i] = st
	}
	return next
}
