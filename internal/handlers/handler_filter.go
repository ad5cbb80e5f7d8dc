package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/money_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/money_tracker_app/internal/dto"
	"github.com/SscSPs/money_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// filterHandler serves the transaction filters. Every response carries signed values.
type filterHandler struct {
	reportingService portssvc.ReportingService
}

// RegisterFilterRoutes registers the /filters routes.
func RegisterFilterRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &filterHandler{reportingService: reportingService}

	filters := rg.Group("/filters")
	{
		filters.GET("/category/:categoryTitle", h.filterByCategory)
		filters.GET("/month/:year/:month", h.filterByMonth)
		filters.GET("/month/:year/:month/category/:categoryTitle", h.filterByMonthAndCategory)
		filters.GET("/title/:title", h.filterByTitle)
	}
}

// filterByCategory godoc
// @Summary Filter transactions by category
// @Description Exact, case-insensitive match on the category title
// @Tags filters
// @Produce json
// @Param categoryTitle path string true "Category title"
// @Success 200 {object} dto.FilterResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to filter transactions by category"
// @Security BearerAuth
// @Router /filters/category/{categoryTitle} [get]
func (h *filterHandler) filterByCategory(c *gin.Context) {
	title := c.Param("categoryTitle")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("category", title))

	report, err := h.reportingService.FilterByCategory(c.Request.Context(), title)
	if err != nil {
		writeServiceError(c, logger, err, "", "Failed to filter transactions by category")
		return
	}
	c.JSON(http.StatusOK, dto.ToFilterResponse(report))
}

// filterByMonth godoc
// @Summary Filter transactions by month
// @Description Transactions with day in [year-month-01, first day of next month), plus their balance. Months outside 1-12 match nothing.
// @Tags filters
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.MonthResponse
// @Failure 400 {object} dto.ErrorResponse "Year or month is not an integer"
// @Failure 500 {object} dto.ErrorResponse "Failed to filter transactions by month"
// @Security BearerAuth
// @Router /filters/month/{year}/{month} [get]
func (h *filterHandler) filterByMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, ok := yearMonthParams(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.FilterByMonth(c.Request.Context(), year, month)
	if err != nil {
		writeServiceError(c, logger, err, "", "Failed to filter transactions by month")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthResponse(report))
}

// filterByMonthAndCategory godoc
// @Summary Filter transactions by month and category
// @Tags filters
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param categoryTitle path string true "Category title"
// @Success 200 {object} dto.FilterResponse
// @Failure 400 {object} dto.ErrorResponse "Year or month is not an integer"
// @Failure 500 {object} dto.ErrorResponse "Failed to filter transactions by month and category"
// @Security BearerAuth
// @Router /filters/month/{year}/{month}/category/{categoryTitle} [get]
func (h *filterHandler) filterByMonthAndCategory(c *gin.Context) {
	title := c.Param("categoryTitle")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("category", title))
	year, month, ok := yearMonthParams(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.FilterByMonthAndCategory(c.Request.Context(), year, month, title)
	if err != nil {
		writeServiceError(c, logger, err, "", "Failed to filter transactions by month and category")
		return
	}
	c.JSON(http.StatusOK, dto.ToFilterResponse(report))
}

// filterByTitle godoc
// @Summary Search transactions by title
// @Description Case-insensitive substring match on the transaction title
// @Tags filters
// @Produce json
// @Param title path string true "Title fragment"
// @Success 200 {object} dto.FilterResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to filter transactions by title"
// @Security BearerAuth
// @Router /filters/title/{title} [get]
func (h *filterHandler) filterByTitle(c *gin.Context) {
	fragment := c.Param("title")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("title", fragment))

	report, err := h.reportingService.FilterByTitle(c.Request.Context(), fragment)
	if err != nil {
		writeServiceError(c, logger, err, "", "Failed to filter transactions by title")
		return
	}
	c.JSON(http.StatusOK, dto.ToFilterResponse(report))
}
