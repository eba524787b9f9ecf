package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/fintrackpro/fintrack_app/internal/core/ports/services"
	"github.com/fintrackpro/fintrack_app/internal/dto"
	"github.com/fintrackpro/fintrack_app/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

// insightHandler serves the AI commentary endpoints. These never fail with a
// 5xx for upstream trouble; the service substitutes placeholder prose instead.
type insightHandler struct {
	sessionService portssvc.SessionSvcFacade
	insightService portssvc.InsightSvcFacade
}

func newInsightHandler(ss portssvc.SessionSvcFacade, is portssvc.InsightSvcFacade) *insightHandler {
	return &insightHandler{sessionService: ss, insightService: is}
}

func registerInsightRoutes(rg *gin.RouterGroup, ss portssvc.SessionSvcFacade, is portssvc.InsightSvcFacade) {
	h := newInsightHandler(ss, is)
	rg.POST("/analysis", h.analyzeFinances)
	rg.POST("/market", h.marketCommentary)
}

// analyzeFinances godoc
// @Summary Generate AI commentary on the session's financial health
// @Tags insights
// @Produce  json
// @Success 200 {object} dto.InsightResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Security BearerAuth
// @Router /insights/analysis [post]
func (h *insightHandler) analyzeFinances(c *gin.Context) {
	sess, ok := activeSession(c, h.sessionService)
	if !ok {
		return
	}

	accounts, transactions, stocks := sess.View()
	summary := accounting.BuildSummary(accounts, transactions, stocks)
	markdown := h.insightService.AnalyzeFinances(c.Request.Context(), summary)

	c.JSON(http.StatusOK, dto.InsightResponse{
		Markdown:  markdown,
		Timestamp: time.Now().Unix(),
	})
}

// marketCommentary godoc
// @Summary Generate AI market sentiment for the held symbols
// @Tags insights
// @Produce  json
// @Success 200 {object} dto.InsightResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Security BearerAuth
// @Router /insights/market [post]
func (h *insightHandler) marketCommentary(c *gin.Context) {
	sess, ok := activeSession(c, h.sessionService)
	if !ok {
		return
	}

	_, _, stocks := sess.View()
	markdown := h.insightService.MarketCommentary(c.Request.Context(), stocks)

	c.JSON(http.StatusOK, dto.InsightResponse{
		Markdown:  markdown,
		Timestamp: time.Now().Unix(),
	})
}
