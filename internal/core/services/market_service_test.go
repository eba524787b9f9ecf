package services_test

import (
	"context"
	"testing"

	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	"github.com/fintrackpro/fintrack_app/internal/core/services"
	"github.com/fintrackpro/fintrack_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateTick_MovesPricesWithinBand(t *testing.T) {
	svc := services.NewMarketService()
	stocks := []domain.StockHolding{
		{StockID: "st_1", Symbol: "2330", Quantity: decimal.NewFromInt(10), AvgCost: decimal.NewFromInt(600), CurrentPrice: decimal.NewFromInt(1000), CurrencyCode: "TWD", Market: domain.MarketTW},
		{StockID: "st_2", Symbol: "AAPL", Quantity: decimal.NewFromInt(5), AvgCost: decimal.NewFromInt(150), CurrentPrice: decimal.NewFromInt(200), CurrencyCode: "USD", Market: domain.MarketUS},
	}

	updated := svc.SimulateTick(stocks)
	require.Len(t, updated, len(stocks))

	for i, st := range updated {
		orig := stocks[i].CurrentPrice
		low := orig.Mul(decimal.NewFromFloat(0.975))
		high := orig.Mul(decimal.NewFromFloat(1.025))
		assert.True(t, st.CurrentPrice.GreaterThanOrEqual(low), "price %s below band for %s", st.CurrentPrice, st.Symbol)
		assert.True(t, st.CurrentPrice.LessThanOrEqual(high), "price %s above band for %s", st.CurrentPrice, st.Symbol)
		assert.True(t, st.CurrentPrice.Equal(st.CurrentPrice.Round(2)), "price must be rounded to 2 places")

		// Only the price moves.
		assert.Equal(t, stocks[i].StockID, st.StockID)
		assert.True(t, stocks[i].Quantity.Equal(st.Quantity))
		assert.True(t, stocks[i].AvgCost.Equal(st.AvgCost))
	}
}

func TestSimulateTick_EmptyPortfolio(t *testing.T) {
	svc := services.NewMarketService()
	assert.Empty(t, svc.SimulateTick(nil))
}

func TestInsightService_DisabledWithoutAPIKey(t *testing.T) {
	ctx := context.Background()
	svc, err := services.NewInsightService(ctx, "", "gemini-2.5-flash")
	require.NoError(t, err)

	summary := accounting.BuildSummary(nil, nil, nil)
	analysis := svc.AnalyzeFinances(ctx, summary)
	assert.Contains(t, analysis, "disabled")

	market := svc.MarketCommentary(ctx, nil)
	assert.Contains(t, market, "disabled")
}
