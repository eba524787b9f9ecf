package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fintrackpro/fintrack_app/internal/apperrors"
	"github.com/fintrackpro/fintrack_app/internal/core/domain"
	portssvc "github.com/fintrackpro/fintrack_app/internal/core/ports/services"
	"github.com/fintrackpro/fintrack_app/internal/dto"
	"github.com/fintrackpro/fintrack_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler serves the session's transaction sequence.
type transactionHandler struct {
	sessionService    portssvc.SessionSvcFacade
	reconcilerService portssvc.ReconcilerSvcFacade
}

func newTransactionHandler(ss portssvc.SessionSvcFacade, rs portssvc.ReconcilerSvcFacade) *transactionHandler {
	return &transactionHandler{sessionService: ss, reconcilerService: rs}
}

func registerTransactionRoutes(rg *gin.RouterGroup, ss portssvc.SessionSvcFacade, rs portssvc.ReconcilerSvcFacade) {
	h := newTransactionHandler(ss, rs)
	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.insertTransaction)
		transactions.GET("/categories", h.listCategories)
	}
}

// listTransactions godoc
// @Summary List the session's transactions, newest action first
// @Tags transactions
// @Produce  json
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	sess, ok := activeSession(c, h.sessionService)
	if !ok {
		return
	}
	_, transactions, _ := sess.View()
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(transactions))
}

// insertTransaction godoc
// @Summary Record a transaction and cascade the balance change
// @Description Prepends the transaction and adjusts the affected account balance(s) in one step
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction to record"
// @Success 201 {object} dto.InsertTransactionResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) insertTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sess, ok := activeSession(c, h.sessionService)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	transactions, accounts, err := h.reconcilerService.InsertTransaction(c.Request.Context(), sess, req.ToDomainTransaction())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to insert transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert transaction"})
		return
	}

	c.JSON(http.StatusCreated, dto.InsertTransactionResponse{
		Transactions: dto.ToListTransactionResponse(transactions),
		Accounts:     dto.ToListAccountResponse(accounts),
	})
}

// listCategories godoc
// @Summary List the suggested transaction categories
// @Tags transactions
// @Produce  json
// @Success 200 {object} dto.CategoriesResponse
// @Security BearerAuth
// @Router /transactions/categories [get]
func (h *transactionHandler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Expense: domain.ExpenseCategories,
		Income:  domain.IncomeCategories,
	})
}
