package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/jpriva/orders_backend/internal/core/ports/services"
	"github.com/jpriva/orders_backend/internal/dto"
	"github.com/jpriva/orders_backend/internal/middleware"
)

// categoryHandler handles HTTP requests related to product categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

// newCategoryHandler creates a new categoryHandler.
func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{
		categoryService: cs,
	}
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade, adminOnly gin.HandlerFunc) {
	h := newCategoryHandler(categoryService)

	categories := rg.Group("/companies/:companyID/categories")
	{
		categories.POST("", adminOnly, h.createCategory)
		categories.GET("", h.listCategories)
	}
}

// createCategory godoc
// @Summary Create a new category
// @Description Registers a new product category for a company (admin operation)
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ProblemDetails "Invalid input"
// @Failure 403 {object} dto.ProblemDetails "Forbidden"
// @Failure 404 {object} dto.ProblemDetails "Company not found"
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /companies/{companyID}/categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		bindingProblem(c, err)
		return
	}

	creatorUserID, ok := requesterID(c)
	if !ok {
		return
	}

	createdCategory, err := h.categoryService.CreateCategory(c.Request.Context(), companyID, req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Category created", slog.String("category_id", createdCategory.CategoryID))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(createdCategory))
}

// listCategories godoc
// @Summary List categories of a company
// @Description Retrieves all product categories of a company
// @Tags categories
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /companies/{companyID}/categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	companyID := c.Param("companyID")

	categories, err := h.categoryService.ListCategories(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponseSlice(categories))
}
