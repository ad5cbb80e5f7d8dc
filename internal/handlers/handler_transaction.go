package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/money_tracker_app/internal/dto"
	"github.com/SscSPs/money_tracker_app/internal/middleware"
	"github.com/SscSPs/money_tracker_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// RegisterTransactionRoutes registers routes related to transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first (day desc, id desc). Without limit every transaction is returned.
// @Tags transactions
// @Produce json
// @Param limit query int false "Page size (1-500)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var after *domain.Cursor
	if params.NextToken != "" {
		if params.Limit == 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "nextToken requires limit"})
			return
		}
		cursor, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid nextToken"})
			return
		}
		after = &cursor
	}

	transactions, err := h.transactionService.ListTransactions(c.Request.Context(), params.Limit, after)
	if err != nil {
		writeServiceError(c, logger, err, "", "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToListTransactionResponse(transactions),
		NextToken:    pagination.NextToken(transactions, params.Limit),
	})
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.GetTransactionResponse
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	transactionID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", transactionID))

	transaction, err := h.transactionService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		writeServiceError(c, logger, err, "Transaction not found", "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.GetTransactionResponse{Transaction: dto.ToTransactionResponse(transaction)})
}

// createTransaction godoc
// @Summary Create a new transaction
// @Description Value must be non-negative; type is 0 (expense) or 1 (income). Day is YYYY-MM-DD or RFC 3339.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "", "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(transaction))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Partial update: omitted fields are left unchanged. A missing transaction is not created.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.UpdateTransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update transaction"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	transactionID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", transactionID))

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.transactionService.UpdateTransaction(c.Request.Context(), transactionID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Transaction not found", "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, dto.UpdateTransactionResponse{
		Message: "Transaction updated successfully",
		Data:    dto.ToTransactionResponse(updated),
	})
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete transaction"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	transactionID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", transactionID))

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), transactionID, userID); err != nil {
		writeServiceError(c, logger, err, "Transaction not found", "Failed to delete transaction")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted successfully"})
}
