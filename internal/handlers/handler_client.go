package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/jpriva/orders_backend/internal/core/ports/services"
	"github.com/jpriva/orders_backend/internal/dto"
	"github.com/jpriva/orders_backend/internal/middleware"
)

// clientHandler handles HTTP requests related to a company's clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

// newClientHandler creates a new clientHandler.
func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{
		clientService: cs,
	}
}

// registerClientRoutes registers routes related to clients.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade, adminOnly gin.HandlerFunc) {
	h := newClientHandler(clientService)

	clients := rg.Group("/companies/:companyID/clients")
	{
		clients.POST("", adminOnly, h.createClient)
		clients.GET("", adminOnly, h.listClients)
		clients.GET("/:clientID", adminOnly, h.getClientByID)
	}
}

// createClient godoc
// @Summary Create a new client
// @Description Registers a new client for a company (admin operation)
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.ProblemDetails "Invalid input"
// @Failure 403 {object} dto.ProblemDetails "Forbidden"
// @Failure 404 {object} dto.ProblemDetails "Company not found"
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /companies/{companyID}/clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClient", slog.String("error", err.Error()))
		bindingProblem(c, err)
		return
	}

	creatorUserID, ok := requesterID(c)
	if !ok {
		return
	}

	createdClient, err := h.clientService.CreateClient(c.Request.Context(), companyID, req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Client created", slog.String("client_id", createdClient.ClientID))
	c.JSON(http.StatusCreated, dto.ToClientResponse(createdClient))
}

// getClientByID godoc
// @Summary Get a client by ID
// @Description Retrieves details for a specific client of a company
// @Tags clients
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   clientID path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} dto.ProblemDetails "Client not found"
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /companies/{companyID}/clients/{clientID} [get]
func (h *clientHandler) getClientByID(c *gin.Context) {
	clientID := c.Param("clientID")

	client, err := h.clientService.GetClientByID(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// listClients godoc
// @Summary List clients of a company
// @Description Retrieves all clients registered for a company
// @Tags clients
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Success 200 {array} dto.ClientResponse
// @Failure 500 {object} dto.ProblemDetails
// @Security BearerAuth
// @Router /companies/{companyID}/clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	companyID := c.Param("companyID")

	clients, err := h.clientService.ListClients(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponseSlice(clients))
}
