package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	portssvc "github.com/fintrackpro/fintrack_app/internal/core/ports/services"
	"github.com/fintrackpro/fintrack_app/internal/dto"
	"github.com/fintrackpro/fintrack_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// stockHandler serves the session's stock portfolio.
type stockHandler struct {
	sessionService    portssvc.SessionSvcFacade
	reconcilerService portssvc.ReconcilerSvcFacade
	marketService     portssvc.MarketSvcFacade
}

func newStockHandler(ss portssvc.SessionSvcFacade, rs portssvc.ReconcilerSvcFacade, ms portssvc.MarketSvcFacade) *stockHandler {
	return &stockHandler{sessionService: ss, reconcilerService: rs, marketService: ms}
}

func registerStockRoutes(rg *gin.RouterGroup, ss portssvc.SessionSvcFacade, rs portssvc.ReconcilerSvcFacade, ms portssvc.MarketSvcFacade) {
	h := newStockHandler(ss, rs, ms)
	stocks := rg.Group("/stocks")
	{
		stocks.GET("", h.listStocks)
		stocks.PUT("", h.replaceStocks)
		stocks.POST("/simulate", h.simulateTick)
	}
}

// listStocks godoc
// @Summary List the session's stock holdings
// @Tags stocks
// @Produce  json
// @Success 200 {array} dto.StockResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /stocks [get]
func (h *stockHandler) listStocks(c *gin.Context) {
	sess, ok := activeSession(c, h.sessionService)
	if !ok {
		return
	}
	_, _, stocks := sess.View()
	c.JSON(http.StatusOK, dto.ToListStockResponse(stocks))
}

// replaceStocks godoc
// @Summary Replace the stock portfolio
// @Description Diffs the submitted portfolio against the current one and persists only the changes
// @Tags stocks
// @Accept  json
// @Produce  json
// @Param   stocks body dto.ReplaceStocksRequest true "Full next portfolio"
// @Success 200 {array} dto.StockResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /stocks [put]
func (h *stockHandler) replaceStocks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sess, ok := activeSession(c, h.sessionService)
	if !ok {
		return
	}

	var req dto.ReplaceStocksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for stock replacement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	next := make([]domain.StockHolding, len(req.Stocks))
	for i, p := range req.Stocks {
		next[i] = p.ToDomainStock()
	}

	stocks := h.reconcilerService.ReplaceStocks(c.Request.Context(), sess, next)
	c.JSON(http.StatusOK, dto.ToListStockResponse(stocks))
}

// simulateTick godoc
// @Summary Apply a simulated price tick to every holding
// @Description Nudges each current price by a small random walk and reconciles the result
// @Tags stocks
// @Produce  json
// @Success 200 {array} dto.StockResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /stocks/simulate [post]
func (h *stockHandler) simulateTick(c *gin.Context) {
	sess, ok := activeSession(c, h.sessionService)
	if !ok {
		return
	}

	_, _, stocks := sess.View()
	updated := h.marketService.SimulateTick(stocks)
	result := h.reconcilerService.ReplaceStocks(c.Request.Context(), sess, updated)
	c.JSON(http.StatusOK, dto.ToListStockResponse(result))
}
