package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/jpriva/orders_backend/internal/core/ports/services"
	"github.com/jpriva/orders_backend/internal/dto"
	"github.com/jpriva/orders_backend/internal/middleware"
)

// companyHandler handles HTTP requests related to companies.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

// newCompanyHandler creates a new companyHandler.
func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{
		companyService: cs,
	}
}

// registerCompanyRoutes registers routes related to companies.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade, adminOnly gin.HandlerFunc) {
	h := newCompanyHandler(companyService)

	companies := rg.Group("/companies")
	{
		companies.POST("", adminOnly, h.createCompany)
		companies.GET("", h.listCompanies)
		companies.GET("/:companyID", h.getCompanyByID)
	}
}

// createCompany godoc
// @Summary Create a new company
// @Description Registers a new company (admin operation). The tax ID must be unique.
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} dto.ProblemDetails "Invalid input"
// @Failure 401 {object} dto.ProblemDetails "Unauthorized"
// @Failure 403 {object} dto.ProblemDetails "Forbidden"
// @Failure 409 {object} dto.ProblemDetails "Tax ID already registered"
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCompany", slog.String("error", err.Error()))
		bindingProblem(c, err)
		return
	}

	creatorUserID, ok := requesterID(c)
	if !ok {
		return
	}

	createdCompany, err := h.companyService.CreateCompany(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Company created", slog.String("company_id", createdCompany.CompanyID))
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(createdCompany))
}

// getCompanyByID godoc
// @Summary Get a company by ID
// @Description Retrieves details for a specific company
// @Tags companies
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} dto.ProblemDetails "Company not found"
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /companies/{companyID} [get]
func (h *companyHandler) getCompanyByID(c *gin.Context) {
	companyID := c.Param("companyID")

	company, err := h.companyService.GetCompanyByID(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// listCompanies godoc
// @Summary List all companies
// @Description Retrieves a list of all registered companies
// @Tags companies
// @Produce  json
// @Success 200 {array} dto.CompanyResponse
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponseSlice(companies))
}
