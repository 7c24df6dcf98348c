package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/jpriva/orders_backend/internal/core/ports/services"
	"github.com/jpriva/orders_backend/internal/dto"
	"github.com/jpriva/orders_backend/internal/middleware"
)

// productHandler handles HTTP requests related to products and the
// inventory report built from them.
type productHandler struct {
	productService portssvc.ProductSvcFacade
	reportService  portssvc.ReportSvcFacade
}

// newProductHandler creates a new productHandler.
func newProductHandler(ps portssvc.ProductSvcFacade, rs portssvc.ReportSvcFacade) *productHandler {
	return &productHandler{
		productService: ps,
		reportService:  rs,
	}
}

// RegisterProductRoutes registers routes related to products.
func RegisterProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade, reportService portssvc.ReportSvcFacade, adminOnly gin.HandlerFunc) {
	h := newProductHandler(productService, reportService)

	companyProducts := rg.Group("/companies/:companyID/products")
	{
		companyProducts.POST("", adminOnly, h.createProduct)
		companyProducts.GET("", h.listProducts)
		companyProducts.GET("/pdf", adminOnly, h.inventoryPDF)
		companyProducts.GET("/email", adminOnly, h.emailInventory)
	}

	products := rg.Group("/products")
	{
		products.GET("/:productID", h.getProductByID)
		products.GET("/:productID/price/:currencyCode", h.resolvePrice)
		products.PUT("/:productID/price", adminOnly, h.setProductPrice)
		products.PUT("/:productID/stock", adminOnly, h.increaseStock)
	}
}

// createProduct godoc
// @Summary Create a new product
// @Description Registers a new product with zero stock and no prices (admin operation). The SKU must be unique within the company.
// @Tags products
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ProblemDetails "Invalid input"
// @Failure 403 {object} dto.ProblemDetails "Forbidden"
// @Failure 404 {object} dto.ProblemDetails "Company or category not found"
// @Failure 409 {object} dto.ProblemDetails "SKU already used in this company"
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /companies/{companyID}/products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProduct", slog.String("error", err.Error()))
		bindingProblem(c, err)
		return
	}

	creatorUserID, ok := requesterID(c)
	if !ok {
		return
	}

	createdProduct, err := h.productService.CreateProduct(c.Request.Context(), companyID, req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Product created", slog.String("product_id", createdProduct.ProductID))
	c.JSON(http.StatusCreated, dto.ToProductResponse(createdProduct))
}

// listProducts godoc
// @Summary List products of a company
// @Description Retrieves all products of a company with their prices
// @Tags products
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /companies/{companyID}/products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	companyID := c.Param("companyID")

	products, err := h.productService.ListProducts(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponseSlice(products))
}

// getProductByID godoc
// @Summary Get a product by ID
// @Description Retrieves a product with its per-currency prices
// @Tags products
// @Produce  json
// @Param   productID path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ProblemDetails "Product not found"
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /products/{productID} [get]
func (h *productHandler) getProductByID(c *gin.Context) {
	productID := c.Param("productID")

	product, err := h.productService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// resolvePrice godoc
// @Summary Resolve a product price
// @Description Returns the unit price of a product in the given currency. A missing price is reported as not found, never as zero.
// @Tags products
// @Produce  json
// @Param   productID path string true "Product ID"
// @Param   currencyCode path string true "Currency Code (3 letters)"
// @Success 200 {object} dto.ProductPriceResponse
// @Failure 404 {object} dto.ProblemDetails "Product or price not found"
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /products/{productID}/price/{currencyCode} [get]
func (h *productHandler) resolvePrice(c *gin.Context) {
	productID := c.Param("productID")
	currencyCode := c.Param("currencyCode")

	if len(currencyCode) != 3 {
		respondProblem(c, http.StatusBadRequest, "Currency code must be 3 letters")
		return
	}

	amount, err := h.productService.ResolvePrice(c.Request.Context(), productID, currencyCode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProductPriceResponse{
		ProductID:    productID,
		CurrencyCode: currencyCode,
		Amount:       amount.StringFixed(2),
	})
}

// setProductPrice godoc
// @Summary Set a product price
// @Description Creates or replaces the product price for one currency (admin operation)
// @Tags products
// @Accept  json
// @Produce  json
// @Param   productID path string true "Product ID"
// @Param   price body dto.SetProductPriceRequest true "Price details"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ProblemDetails "Invalid input or unsupported currency"
// @Failure 403 {object} dto.ProblemDetails "Forbidden"
// @Failure 404 {object} dto.ProblemDetails "Product not found"
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /products/{productID}/price [put]
func (h *productHandler) setProductPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	var req dto.SetProductPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetProductPrice", slog.String("error", err.Error()))
		bindingProblem(c, err)
		return
	}

	updaterUserID, ok := requesterID(c)
	if !ok {
		return
	}

	product, err := h.productService.SetProductPrice(c.Request.Context(), productID, req, updaterUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// increaseStock godoc
// @Summary Increase product stock
// @Description Adds a positive amount to the product's stock counter (admin operation)
// @Tags products
// @Produce  json
// @Param   productID path string true "Product ID"
// @Param   amount query int true "Stock increment (positive)"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ProblemDetails "Invalid input"
// @Failure 403 {object} dto.ProblemDetails "Forbidden"
// @Failure 404 {object} dto.ProblemDetails "Product not found"
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /products/{productID}/stock [put]
func (h *productHandler) increaseStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	var req dto.IncreaseStockRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for IncreaseStock", slog.String("error", err.Error()))
		bindingProblem(c, err)
		return
	}

	updaterUserID, ok := requesterID(c)
	if !ok {
		return
	}

	product, err := h.productService.IncreaseStock(c.Request.Context(), productID, req, updaterUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// inventoryPDF godoc
// @Summary Download the inventory report
// @Description Renders the company's inventory as a PDF document (admin operation)
// @Tags products
// @Produce  application/pdf
// @Param   companyID path string true "Company ID"
// @Success 200 {file} binary "PDF document"
// @Failure 403 {object} dto.ProblemDetails "Forbidden"
// @Failure 404 {object} dto.ProblemDetails "Company not found"
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /companies/{companyID}/products/pdf [get]
func (h *productHandler) inventoryPDF(c *gin.Context) {
	companyID := c.Param("companyID")

	pdf, err := h.reportService.InventoryReportPDF(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "inline; filename=inventory.pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// emailInventory godoc
// @Summary Email the inventory report
// @Description Renders the inventory report, stores it, and queues the email delivery (admin operation)
// @Tags products
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   email query string true "Recipient email address"
// @Success 202 {object} map[string]string "Delivery queued"
// @Failure 400 {object} dto.ProblemDetails "Invalid input"
// @Failure 403 {object} dto.ProblemDetails "Forbidden"
// @Failure 404 {object} dto.ProblemDetails "Company not found"
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /companies/{companyID}/products/email [get]
func (h *productHandler) emailInventory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.EmailReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for EmailInventory", slog.String("error", err.Error()))
		bindingProblem(c, err)
		return
	}

	if err := h.reportService.EmailInventoryReport(c.Request.Context(), companyID, req.Email); err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Inventory report delivery queued", slog.String("company_id", companyID))
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}
