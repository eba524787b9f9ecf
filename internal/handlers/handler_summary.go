package handlers

import (
	"net/http"

	portssvc "github.com/fintrackpro/fintrack_app/internal/core/ports/services"
	"github.com/fintrackpro/fintrack_app/internal/dto"
	"github.com/fintrackpro/fintrack_app/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

// summaryHandler serves the derived dashboard aggregates.
type summaryHandler struct {
	sessionService portssvc.SessionSvcFacade
}

func newSummaryHandler(ss portssvc.SessionSvcFacade) *summaryHandler {
	return &summaryHandler{sessionService: ss}
}

func registerSummaryRoutes(rg *gin.RouterGroup, ss portssvc.SessionSvcFacade) {
	h := newSummaryHandler(ss)
	rg.GET("/summary", h.getSummary)
}

// getSummary godoc
// @Summary Get the derived dashboard aggregates
// @Description Net worth, totals and the expense breakdown, recomputed from the current collections
// @Tags summary
// @Produce  json
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /summary [get]
func (h *summaryHandler) getSummary(c *gin.Context) {
	sess, ok := activeSession(c, h.sessionService)
	if !ok {
		return
	}

	accounts, transactions, stocks := sess.View()
	c.JSON(http.StatusOK, dto.SummaryResponse{
		ReferenceCurrency: accounting.ReferenceCurrency,
		NetWorth:          accounting.NetWorth(accounts, stocks),
		TotalBalance:      accounting.TotalBalance(accounts),
		TotalStockValue:   accounting.TotalStockValue(stocks),
		ExpenseBreakdown:  accounting.ExpenseBreakdown(transactions),
	})
}
