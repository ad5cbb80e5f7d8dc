package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/money_tracker_app/internal/apperrors"
	"github.com/SscSPs/money_tracker_app/internal/core/domain"
	"github.com/SscSPs/money_tracker_app/internal/dto"
	"github.com/SscSPs/money_tracker_app/internal/handlers"
	"github.com/SscSPs/money_tracker_app/internal/middleware"
	"github.com/SscSPs/money_tracker_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testUserID = "test-user"

// newTestEngine builds a router the way main does, minus the network-facing middleware.
func newTestEngine() (*gin.Engine, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidators()

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	v1 := r.Group("/api/v1", middleware.DefaultUserMiddleware(testUserID))
	return r, v1
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not a JSON object: %v (%s)", err, w.Body.String())
	}
	return body
}

func sampleTransaction(id string, day time.Time, value int64, typ domain.TransactionType) domain.Transaction {
	return domain.Transaction{
		ID:     id,
		Title:  "Groceries",
		Value:  decimal.NewFromInt(value),
		Day:    day,
		Type:   typ,
		UserID: testUserID,
	}
}

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	r, v1 := newTestEngine()
	suite.router = r
	suite.mockService = new(MockTransactionService)
	handlers.RegisterTransactionRoutes(v1, suite.mockService)
}

func (suite *TransactionHandlerTestSuite) TearDownTest() {
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_Unbounded() {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	suite.mockService.On("ListTransactions", mock.Anything, 0, (*domain.Cursor)(nil)).
		Return([]domain.Transaction{
			sampleTransaction("txn_2", day, 40, domain.Expense),
			sampleTransaction("txn_1", day.AddDate(0, 0, -1), 1000, domain.Income),
		}, nil).Once()

	w := performRequest(suite.router, http.MethodGet, "/api/v1/transactions", "")

	suite.Equal(http.StatusOK, w.Code)
	body := decodeBody(suite.T(), w)
	suite.Len(body["transactions"], 2)
	suite.NotContains(body, "nextToken")
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_PagesWithToken() {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	suite.mockService.On("ListTransactions", mock.Anything, 1, (*domain.Cursor)(nil)).
		Return([]domain.Transaction{sampleTransaction("txn_2", day, 40, domain.Expense)}, nil).Once()

	w := performRequest(suite.router, http.MethodGet, "/api/v1/transactions?limit=1", "")
	suite.Require().Equal(http.StatusOK, w.Code)
	token, ok := decodeBody(suite.T(), w)["nextToken"].(string)
	suite.Require().True(ok, "a full page must carry a nextToken")

	suite.mockService.On("ListTransactions", mock.Anything, 1, mock.MatchedBy(func(c *domain.Cursor) bool {
		return c != nil && c.ID == "txn_2" && c.Day.Equal(day)
	})).Return([]domain.Transaction{}, nil).Once()

	w = performRequest(suite.router, http.MethodGet, "/api/v1/transactions?limit=1&nextToken="+token, "")
	suite.Equal(http.StatusOK, w.Code)
	body := decodeBody(suite.T(), w)
	suite.Empty(body["transactions"])
	suite.NotContains(body, "nextToken")
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_BadQuery() {
	token := pagination.EncodeToken(domain.Cursor{Day: time.Now(), ID: "txn_1"})
	tests := []struct {
		name string
		path string
	}{
		{name: "token without limit", path: "/api/v1/transactions?nextToken=" + token},
		{name: "garbage token", path: "/api/v1/transactions?limit=5&nextToken=!!!"},
		{name: "limit too large", path: "/api/v1/transactions?limit=1000"},
		{name: "limit not a number", path: "/api/v1/transactions?limit=ten"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := performRequest(suite.router, http.MethodGet, tt.path, "")
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction() {
	txn := sampleTransaction("txn_1", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), 40, domain.Expense)
	suite.mockService.On("GetTransactionByID", mock.Anything, "txn_1").Return(&txn, nil).Once()
	suite.mockService.On("GetTransactionByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := performRequest(suite.router, http.MethodGet, "/api/v1/transactions/txn_1", "")
	suite.Equal(http.StatusOK, w.Code)
	transaction := decodeBody(suite.T(), w)["transaction"].(map[string]any)
	suite.Equal("txn_1", transaction["id"])
	suite.Equal("40", transaction["value"])

	w = performRequest(suite.router, http.MethodGet, "/api/v1/transactions/missing", "")
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Transaction not found", decodeBody(suite.T(), w)["error"])
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	created := sampleTransaction("txn_new", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), 40, domain.Expense)
	suite.mockService.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Title == "Groceries" &&
			req.Value != nil && req.Value.Equal(decimal.NewFromInt(40)) &&
			req.Type != nil && *req.Type == 0 &&
			req.CategoryID != nil && *req.CategoryID == 3
	}), testUserID).Return(&created, nil).Once()

	w := performRequest(suite.router, http.MethodPost, "/api/v1/transactions",
		`{"title":"Groceries","value":40,"day":"2024-06-10","type":0,"categoryID":3}`)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("txn_new", decodeBody(suite.T(), w)["id"])
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ZeroValueAllowed() {
	created := sampleTransaction("txn_zero", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), 0, domain.Income)
	suite.mockService.On("CreateTransaction", mock.Anything, mock.Anything, testUserID).Return(&created, nil).Once()

	w := performRequest(suite.router, http.MethodPost, "/api/v1/transactions",
		`{"title":"Refund","value":0,"day":"2024-06-10","type":1}`)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_RejectedByBinding() {
	tests := []struct {
		name string
		body string
	}{
		{name: "negative value", body: `{"title":"x","value":-1,"day":"2024-06-10","type":0}`},
		{name: "unknown type", body: `{"title":"x","value":1,"day":"2024-06-10","type":2}`},
		{name: "missing type", body: `{"title":"x","value":1,"day":"2024-06-10"}`},
		{name: "missing title", body: `{"value":1,"day":"2024-06-10","type":0}`},
		{name: "malformed json", body: `{"title":`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := performRequest(suite.router, http.MethodPost, "/api/v1/transactions", tt.body)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ServiceErrors() {
	suite.mockService.On("CreateTransaction", mock.Anything, mock.Anything, testUserID).
		Return(nil, apperrors.NewValidationError("category 99 does not exist")).Once()
	w := performRequest(suite.router, http.MethodPost, "/api/v1/transactions",
		`{"title":"x","value":1,"day":"2024-06-10","type":0,"categoryID":99}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(decodeBody(suite.T(), w)["error"], "category 99 does not exist")

	suite.mockService.On("CreateTransaction", mock.Anything, mock.Anything, testUserID).
		Return(nil, errors.New("connection refused")).Once()
	w = performRequest(suite.router, http.MethodPost, "/api/v1/transactions",
		`{"title":"x","value":1,"day":"2024-06-10","type":0}`)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to create transaction", decodeBody(suite.T(), w)["error"])
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_StrayNotFoundIsAServerError() {
	suite.mockService.On("CreateTransaction", mock.Anything, mock.Anything, testUserID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := performRequest(suite.router, http.MethodPost, "/api/v1/transactions",
		`{"title":"x","value":1,"day":"2024-06-10","type":0}`)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to create transaction", decodeBody(suite.T(), w)["error"])
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction() {
	updated := sampleTransaction("txn_1", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), 55, domain.Expense)
	suite.mockService.On("UpdateTransaction", mock.Anything, "txn_1", mock.MatchedBy(func(req dto.UpdateTransactionRequest) bool {
		return req.Value != nil && req.Value.Equal(decimal.NewFromInt(55)) && req.Title == nil
	}), testUserID).Return(&updated, nil).Once()

	w := performRequest(suite.router, http.MethodPut, "/api/v1/transactions/txn_1", `{"value":55}`)

	suite.Equal(http.StatusOK, w.Code)
	body := decodeBody(suite.T(), w)
	suite.Equal("Transaction updated successfully", body["message"])
	suite.Equal("55", body["data"].(map[string]any)["value"])
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_NotFound() {
	suite.mockService.On("UpdateTransaction", mock.Anything, "missing", mock.Anything, testUserID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := performRequest(suite.router, http.MethodPut, "/api/v1/transactions/missing", `{"title":"x"}`)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Transaction not found", decodeBody(suite.T(), w)["error"])
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_NegativeValue() {
	w := performRequest(suite.router, http.MethodPut, "/api/v1/transactions/txn_1", `{"value":-5}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction() {
	suite.mockService.On("DeleteTransaction", mock.Anything, "txn_1", testUserID).Return(nil).Once()
	suite.mockService.On("DeleteTransaction", mock.Anything, "missing", testUserID).Return(apperrors.ErrNotFound).Once()

	w := performRequest(suite.router, http.MethodDelete, "/api/v1/transactions/txn_1", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Transaction deleted successfully", decodeBody(suite.T(), w)["message"])

	w = performRequest(suite.router, http.MethodDelete, "/api/v1/transactions/missing", "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_WithoutUser() {
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	handlers.RegisterTransactionRoutes(r.Group("/api/v1"), suite.mockService)

	w := performRequest(r, http.MethodDelete, "/api/v1/transactions/txn_1", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Unauthorized", decodeBody(suite.T(), w)["error"])
	suite.mockService.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
