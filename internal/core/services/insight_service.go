package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	portssvc "github.com/fintrackpro/fintrack_app/internal/core/ports/services"
	"github.com/fintrackpro/fintrack_app/internal/middleware"
	"google.golang.org/genai"
)

const (
	msgInsightUnavailable = "AI analysis is currently unavailable. Please try again later."
	msgInsightDisabled    = "AI analysis is disabled. Configure a Gemini API key to enable it."
)

// insightService generates financial commentary with Gemini. The response is
// free-form prose (usually Markdown) returned verbatim; the core never parses
// or validates its content.
type insightService struct {
	client *genai.Client
	model  string
}

// NewInsightService creates the AI commentary service. With an empty API key
// it degrades to placeholder responses instead of failing.
func NewInsightService(ctx context.Context, apiKey, model string) (portssvc.InsightSvcFacade, error) {
	if apiKey == "" {
		return &insightService{model: model}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &insightService{client: client, model: model}, nil
}

var _ portssvc.InsightSvcFacade = (*insightService)(nil)

// AnalyzeFinances asks the model for financial-health commentary over the
// condensed summary payload. Upstream failures never propagate; the caller
// always receives displayable prose.
func (s *insightService) AnalyzeFinances(ctx context.Context, summary domain.FinancialSummary) string {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.client == nil {
		return msgInsightDisabled
	}

	payload, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		logger.Error("Failed to marshal financial summary", slog.String("error", err.Error()))
		return msgInsightUnavailable
	}

	prompt := "You are a professional personal finance advisor. Analyze the " +
		"following financial data and give advice in Markdown.\n\n" +
		"Data summary:\n" + string(payload) + "\n\n" +
		"Please provide:\n" +
		"1. A short assessment of overall financial health.\n" +
		"2. Any unusual income or spending worth flagging.\n" +
		"3. Portfolio suggestions based on current holdings.\n" +
		"4. Practical tips for the future.\n"

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		logger.Error("Gemini analysis request failed", slog.String("error", err.Error()))
		return msgInsightUnavailable
	}

	text := resp.Text()
	if text == "" {
		return msgInsightUnavailable
	}
	return text
}

// MarketCommentary asks the model for recent price trends and sentiment over
// the held symbols.
func (s *insightService) MarketCommentary(ctx context.Context, stocks []domain.StockHolding) string {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.client == nil {
		return msgInsightDisabled
	}

	symbols := make([]string, 0, len(stocks))
	for _, st := range stocks {
		symbols = append(symbols, st.Symbol)
	}

	prompt := "Look up the latest market prices or recent trends for these " +
		"stocks: " + strings.Join(symbols, ", ") + ". " +
		"If possible, add a short market sentiment analysis."

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		logger.Error("Gemini market request failed", slog.String("error", err.Error()))
		return msgInsightUnavailable
	}

	text := resp.Text()
	if text == "" {
		return msgInsightUnavailable
	}
	return text
}
