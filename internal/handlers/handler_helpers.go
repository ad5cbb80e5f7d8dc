package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/money_tracker_app/internal/apperrors"
	"github.com/SscSPs/money_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// intParam reads a numeric path parameter. On failure it writes a 400 and returns false.
func intParam(c *gin.Context, logger *slog.Logger, name string) (int, bool) {
	raw := c.Param(name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("Invalid numeric path parameter", slog.String("param", name), slog.String("value", raw))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + ": must be an integer"})
		return 0, false
	}
	return v, true
}

// yearMonthParams reads the :year and :month path parameters.
func yearMonthParams(c *gin.Context, logger *slog.Logger) (int, int, bool) {
	year, ok := intParam(c, logger, "year")
	if !ok {
		return 0, 0, false
	}
	month, ok := intParam(c, logger, "month")
	if !ok {
		return 0, 0, false
	}
	return year, month, true
}

// writeServiceError maps a service error to a status code and body.
// Store failures are logged with their cause and answered with failMsg only.
// Routes that never answer 404 pass an empty notFoundMsg, and a stray
// ErrNotFound is then treated as a store failure.
func writeServiceError(c *gin.Context, logger *slog.Logger, err error, notFoundMsg, failMsg string) {
	switch {
	case notFoundMsg != "" && errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(notFoundMsg)
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: notFoundMsg})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: failMsg})
	}
}
