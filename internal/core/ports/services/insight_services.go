package services

import (
	"context"

	"github.com/fintrackpro/fintrack_app/internal/core/domain"
)

// InsightSvcFacade generates AI commentary. Responses are free-form prose
// returned as-is; upstream failures are converted to a user-readable
// placeholder and never propagated as errors.
type InsightSvcFacade interface {
	// AnalyzeFinances returns financial-health commentary for the summary.
	AnalyzeFinances(ctx context.Context, summary domain.FinancialSummary) string

	// MarketCommentary returns market sentiment prose for the held symbols.
	MarketCommentary(ctx context.Context, stocks []domain.StockHolding) string
}

// MarketSvcFacade produces stock price updates.
type MarketSvcFacade interface {
	// SimulateTick applies a small random walk to every holding's current
	// price and returns the updated collection. The caller feeds the result
	// through the reconciler's ReplaceStocks.
	SimulateTick(stocks []domain.StockHolding) []domain.StockHolding
}
