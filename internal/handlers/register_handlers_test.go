package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fintrackpro/fintrack_app/internal/core/services"
	"github.com/fintrackpro/fintrack_app/internal/dto"
	"github.com/fintrackpro/fintrack_app/internal/handlers"
	"github.com/fintrackpro/fintrack_app/internal/middleware"
	"github.com/fintrackpro/fintrack_app/internal/repositories/memory"
	"github.com/fintrackpro/fintrack_app/internal/syncqueue"
	"github.com/fintrackpro/fintrack_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// directScheduler applies intents synchronously so handler assertions can
// inspect the store right after a request returns.
type directScheduler struct {
	store *memory.Store
}

func (d *directScheduler) Enqueue(intent syncqueue.Intent) {
	ctx := context.Background()
	switch intent.Op {
	case syncqueue.OpUpsert:
		_ = d.store.Upsert(ctx, intent.UserID, intent.Kind, intent.EntityID, intent.Doc)
	case syncqueue.OpUpsertPartial:
		_ = d.store.UpsertPartial(ctx, intent.UserID, intent.Kind, intent.EntityID, intent.Fields)
	case syncqueue.OpDelete:
		_ = d.store.Delete(ctx, intent.UserID, intent.Kind, intent.EntityID)
	}
}

type HandlersTestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *memory.Store
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.store = memory.NewStore()
	cfg := &config.Config{
		JWTSecret:         "handler-test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "fintrack-test",
		InsightRateLimit:  "100-M",
	}

	container, err := services.NewContainer(context.Background(), services.ContainerDeps{
		Store:     suite.store,
		Users:     suite.store,
		Queue:     &directScheduler{store: suite.store},
		JWTSecret: cfg.JWTSecret,
		JWTExpiry: cfg.JWTExpiryDuration,
		JWTIssuer: cfg.JWTIssuer,
	})
	suite.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(logger))
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *HandlersTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) login(name string) dto.SessionResponse {
	w := suite.do(http.MethodPost, "/auth/login", "", dto.LoginRequest{Name: name})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.SessionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotEmpty(resp.Token)
	return resp
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestLogin_SeedsFirstTimeUser() {
	resp := suite.login("Alice Chen")

	suite.True(resp.Seeded)
	suite.False(resp.LoadFailed)
	suite.Equal("Alice Chen", resp.User.Name)
	suite.Len(resp.Accounts, 3)
	suite.Len(resp.Transactions, 4)
	suite.Len(resp.Stocks, 3)
}

func (suite *HandlersTestSuite) TestLogin_MissingNameRejected() {
	w := suite.do(http.MethodPost, "/auth/login", "", map[string]string{})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestProtectedRoutesRequireToken() {
	w := suite.do(http.MethodGet, "/api/v1/accounts", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/accounts", "garbage-token", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestInsertTransaction_CascadesBalance() {
	sess := suite.login("Bob")
	source := sess.Accounts[0]

	w := suite.do(http.MethodPost, "/api/v1/transactions", sess.Token, dto.CreateTransactionRequest{
		AccountID:       source.AccountID,
		Amount:          decimal.NewFromInt(200),
		TransactionType: "EXPENSE",
		Category:        "Food",
		Description:     "Lunch",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp dto.InsertTransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))

	suite.Require().NotEmpty(resp.Transactions)
	suite.Equal("Lunch", resp.Transactions[0].Description, "new transaction sits at the head")

	want := source.Balance.Sub(decimal.NewFromInt(200))
	var got decimal.Decimal
	for _, acc := range resp.Accounts {
		if acc.AccountID == source.AccountID {
			got = acc.Balance
		}
	}
	suite.True(got.Equal(want), "balance %s, want %s", got, want)
}

func (suite *HandlersTestSuite) TestInsertTransaction_UnknownAccountRejected() {
	sess := suite.login("Carol")

	w := suite.do(http.MethodPost, "/api/v1/transactions", sess.Token, dto.CreateTransactionRequest{
		AccountID:       "ghost",
		Amount:          decimal.NewFromInt(50),
		TransactionType: "EXPENSE",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestReplaceAccounts_RoundTrip() {
	sess := suite.login("Dave")

	payload := dto.ReplaceAccountsRequest{Accounts: []dto.AccountPayload{{
		AccountID:    sess.Accounts[0].AccountID,
		Name:         "Renamed Account",
		AccountType:  "Checking",
		CurrencyCode: "TWD",
		Balance:      sess.Accounts[0].Balance,
	}}}
	w := suite.do(http.MethodPut, "/api/v1/accounts", sess.Token, payload)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var accounts []dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &accounts))
	suite.Require().Len(accounts, 1, "removed accounts drop out of the collection")
	suite.Equal("Renamed Account", accounts[0].Name)
}

func (suite *HandlersTestSuite) TestReplaceAccounts_BadCurrencyRejected() {
	sess := suite.login("Erin")

	payload := dto.ReplaceAccountsRequest{Accounts: []dto.AccountPayload{{
		Name:         "Bad",
		AccountType:  "Checking",
		CurrencyCode: "twd",
	}}}
	w := suite.do(http.MethodPut, "/api/v1/accounts", sess.Token, payload)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestSummaryEndpoint() {
	sess := suite.login("Frank")

	w := suite.do(http.MethodGet, "/api/v1/summary", sess.Token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.SummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("TWD", resp.ReferenceCurrency)
	suite.False(resp.NetWorth.IsZero())
	suite.NotEmpty(resp.ExpenseBreakdown)
}

func (suite *HandlersTestSuite) TestSimulateTickPersistsPrices() {
	sess := suite.login("Grace")

	w := suite.do(http.MethodPost, "/api/v1/stocks/simulate", sess.Token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var stocks []dto.StockResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &stocks))
	suite.Len(stocks, len(sess.Stocks))
}

func (suite *HandlersTestSuite) TestInsightEndpointsDegradeWithoutKey() {
	sess := suite.login("Heidi")

	w := suite.do(http.MethodPost, "/api/v1/insights/analysis", sess.Token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.InsightResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Markdown, "disabled")
	suite.NotZero(resp.Timestamp)
}

func (suite *HandlersTestSuite) TestRestoreAndLogout() {
	sess := suite.login("Ivan")

	w := suite.do(http.MethodPost, "/auth/restore", "", dto.RestoreRequest{Token: sess.Token})
	suite.Require().Equal(http.StatusOK, w.Code)

	var restored dto.SessionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &restored))
	suite.Equal(sess.User.UserID, restored.User.UserID)
	suite.False(restored.Seeded)
	suite.Len(restored.Accounts, 3)

	w = suite.do(http.MethodPost, "/auth/logout", sess.Token, nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/accounts", sess.Token, nil)
	suite.Equal(http.StatusUnauthorized, w.Code, "a logged-out session is gone even with a valid token")
}

func (suite *HandlersTestSuite) TestCategoriesEndpoint() {
	sess := suite.login("Judy")

	w := suite.do(http.MethodGet, "/api/v1/transactions/categories", sess.Token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.CategoriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Expense, "Food")
	suite.Contains(resp.Income, "Salary")
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
