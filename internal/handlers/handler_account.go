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

// accountHandler serves the session's account collection.
type accountHandler struct {
	sessionService    portssvc.SessionSvcFacade
	reconcilerService portssvc.ReconcilerSvcFacade
}

func newAccountHandler(ss portssvc.SessionSvcFacade, rs portssvc.ReconcilerSvcFacade) *accountHandler {
	return &accountHandler{sessionService: ss, reconcilerService: rs}
}

func registerAccountRoutes(rg *gin.RouterGroup, ss portssvc.SessionSvcFacade, rs portssvc.ReconcilerSvcFacade) {
	h := newAccountHandler(ss, rs)
	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.PUT("", h.replaceAccounts)
	}
}

// listAccounts godoc
// @Summary List the session's accounts
// @Tags accounts
// @Produce  json
// @Success 200 {array} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	sess, ok := activeSession(c, h.sessionService)
	if !ok {
		return
	}
	accounts, _, _ := sess.View()
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// replaceAccounts godoc
// @Summary Replace the account collection
// @Description Diffs the submitted collection against the current one and persists only the changes
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   accounts body dto.ReplaceAccountsRequest true "Full next account collection"
// @Success 200 {array} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /accounts [put]
func (h *accountHandler) replaceAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sess, ok := activeSession(c, h.sessionService)
	if !ok {
		return
	}

	var req dto.ReplaceAccountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for account replacement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	next := make([]domain.Account, len(req.Accounts))
	for i, p := range req.Accounts {
		next[i] = p.ToDomainAccount()
	}

	accounts := h.reconcilerService.ReplaceAccounts(c.Request.Context(), sess, next)
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}
