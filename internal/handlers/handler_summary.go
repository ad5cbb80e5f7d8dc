package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/money_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/money_tracker_app/internal/dto"
	"github.com/SscSPs/money_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type summaryHandler struct {
	reportingService portssvc.ReportingService
}

// RegisterSummaryRoutes registers the aggregate /summaries routes.
func RegisterSummaryRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &summaryHandler{reportingService: reportingService}

	summaries := rg.Group("/summaries")
	{
		summaries.GET("/categories/:year/:month/:type", h.categorySums)
		summaries.GET("/patrimony/:year/:month", h.patrimony)
	}
}

// categorySums godoc
// @Summary Sum transactions per category
// @Description Stored (unsigned) values of one type within a month, grouped by category and ordered by category id. Uncategorised transactions form a group with null id and title.
// @Tags summaries
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param type path int true "0 = expense, 1 = income"
// @Success 200 {array} dto.CategorySumResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid year, month or type"
// @Failure 500 {object} dto.ErrorResponse "Failed to sum transactions by category"
// @Security BearerAuth
// @Router /summaries/categories/{year}/{month}/{type} [get]
func (h *summaryHandler) categorySums(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, ok := yearMonthParams(c, logger)
	if !ok {
		return
	}
	typ, err := dto.TransactionTypeFromParam(c.Param("type"))
	if err != nil {
		logger.Warn("Invalid transaction type parameter", slog.String("type", c.Param("type")))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid type: must be 0 or 1"})
		return
	}

	sums, err := h.reportingService.CategorySums(c.Request.Context(), year, month, typ)
	if err != nil {
		writeServiceError(c, logger, err, "", "Failed to sum transactions by category")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategorySumResponse(sums))
}

// patrimony godoc
// @Summary Cumulative patrimony
// @Description Every transaction before the end of the given month, with total and balance
// @Tags summaries
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.PatrimonyResponse
// @Failure 400 {object} dto.ErrorResponse "Year or month is not an integer"
// @Failure 500 {object} dto.ErrorResponse "Failed to compute patrimony"
// @Security BearerAuth
// @Router /summaries/patrimony/{year}/{month} [get]
func (h *summaryHandler) patrimony(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, ok := yearMonthParams(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.Patrimony(c.Request.Context(), year, month)
	if err != nil {
		writeServiceError(c, logger, err, "", "Failed to compute patrimony")
		return
	}
	c.JSON(http.StatusOK, dto.ToPatrimonyResponse(report))
}
