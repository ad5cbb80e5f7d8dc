package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/money_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/money_tracker_app/internal/dto"
	"github.com/SscSPs/money_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	categoryService portssvc.CategorySvc
}

// RegisterCategoryRoutes registers routes related to categories.
func RegisterCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvc) {
	h := &categoryHandler{categoryService: categoryService}
	rg.GET("/categories", h.listCategories)
}

// listCategories godoc
// @Summary List categories
// @Description Lists every category ordered by id ascending
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list categories"
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, "", "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}
