package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jpriva/orders_backend/internal/core/domain"
	portssvc "github.com/jpriva/orders_backend/internal/core/ports/services"
	"github.com/jpriva/orders_backend/internal/dto"
	"github.com/jpriva/orders_backend/internal/middleware"
	"github.com/jpriva/orders_backend/internal/utils/pagination"
)

// orderHandler handles HTTP requests related to orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

// newOrderHandler creates a new orderHandler.
func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{
		orderService: os,
	}
}

// RegisterOrderRoutes registers routes related to orders.
func RegisterOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	companyOrders := rg.Group("/companies/:companyID/orders")
	{
		companyOrders.POST("", h.createOrder)
		companyOrders.GET("", h.listOrders)
	}

	orders := rg.Group("/orders")
	{
		orders.GET("/:orderID", h.getOrderByID)
		orders.POST("/:orderID/items", h.addOrderItem)
		orders.POST("/:orderID/complete", h.completeOrder)
		orders.POST("/:orderID/cancel", h.cancelOrder)
	}
}

// createOrder godoc
// @Summary Create a new order
// @Description Creates a pending order with no items and a zero total. Admins name the client; external users order as themselves.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ProblemDetails "Invalid input or unsupported currency"
// @Failure 404 {object} dto.ProblemDetails "Company or client not found"
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /companies/{companyID}/orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOrder", slog.String("error", err.Error()))
		bindingProblem(c, err)
		return
	}

	creatorUserID, ok := requesterID(c)
	if !ok {
		return
	}

	createdOrder, err := h.orderService.CreateOrder(c.Request.Context(), companyID, req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Order created", slog.String("order_id", createdOrder.OrderID))
	c.JSON(http.StatusCreated, dto.ToOrderResponse(createdOrder))
}

// listOrders godoc
// @Summary List orders of a company
// @Description Retrieves one page of a company's orders, newest first. External users only see their own orders.
// @Tags orders
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   page query int false "Zero-based page number" default(0)
// @Param   size query int false "Page size" default(20)
// @Success 200 {object} dto.PageResponse[dto.OrderResponse]
// @Failure 400 {object} dto.ProblemDetails "Invalid page coordinates"
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /companies/{companyID}/orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	companyID := c.Param("companyID")

	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		respondProblem(c, http.StatusBadRequest, "page must be an integer")
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(pagination.DefaultPageSize)))
	if err != nil {
		respondProblem(c, http.StatusBadRequest, "size must be an integer")
		return
	}

	requesterUserID, ok := requesterID(c)
	if !ok {
		return
	}

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), companyID, requesterUserID, page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(dto.ToOrderResponseSlice(orders), page, size, total))
}

// getOrderByID godoc
// @Summary Get an order by ID
// @Description Retrieves an order with its items. External users only see their own orders.
// @Tags orders
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 403 {object} dto.ProblemDetails "Forbidden"
// @Failure 404 {object} dto.ProblemDetails "Order not found"
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /orders/{orderID} [get]
func (h *orderHandler) getOrderByID(c *gin.Context) {
	orderID := c.Param("orderID")

	requesterUserID, ok := requesterID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID, requesterUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// addOrderItem godoc
// @Summary Add an item to an order
// @Description Appends a line to a pending order, snapshotting the product name and unit price. Stock is not checked or consumed.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Param   item body dto.AddOrderItemRequest true "Item details"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ProblemDetails "Invalid input"
// @Failure 403 {object} dto.ProblemDetails "Forbidden"
// @Failure 404 {object} dto.ProblemDetails "Order, product or price not found"
// @Failure 409 {object} dto.ProblemDetails "Order is not pending"
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /orders/{orderID}/items [post]
func (h *orderHandler) addOrderItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")

	var req dto.AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddOrderItem", slog.String("error", err.Error()))
		bindingProblem(c, err)
		return
	}

	requesterUserID, ok := requesterID(c)
	if !ok {
		return
	}

	order, err := h.orderService.AddOrderItem(c.Request.Context(), orderID, req, requesterUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// completeOrder godoc
// @Summary Complete an order
// @Description Transitions a pending order to COMPLETED. Terminal orders refuse further transitions.
// @Tags orders
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 403 {object} dto.ProblemDetails "Forbidden"
// @Failure 404 {object} dto.ProblemDetails "Order not found"
// @Failure 409 {object} dto.ProblemDetails "Order already terminal"
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /orders/{orderID}/complete [post]
func (h *orderHandler) completeOrder(c *gin.Context) {
	h.changeStatus(c, h.orderService.CompleteOrder)
}

// cancelOrder godoc
// @Summary Cancel an order
// @Description Transitions a pending order to CANCELLED. Terminal orders refuse further transitions.
// @Tags orders
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 403 {object} dto.ProblemDetails "Forbidden"
// @Failure 404 {object} dto.ProblemDetails "Order not found"
// @Failure 409 {object} dto.ProblemDetails "Order already terminal"
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /orders/{orderID}/cancel [post]
func (h *orderHandler) cancelOrder(c *gin.Context) {
	h.changeStatus(c, h.orderService.CancelOrder)
}

func (h *orderHandler) changeStatus(c *gin.Context, transition func(ctx context.Context, orderID, requesterUserID string) (*domain.Order, error)) {
	orderID := c.Param("orderID")

	requesterUserID, ok := requesterID(c)
	if !ok {
		return
	}

	order, err := transition(c.Request.Context(), orderID, requesterUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}
