package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recovra/debt_collection_app/internal/apperrors"
	"github.com/recovra/debt_collection_app/internal/core/domain"
	portssvc "github.com/recovra/debt_collection_app/internal/core/ports/services"
	"github.com/recovra/debt_collection_app/internal/dto"
	"github.com/recovra/debt_collection_app/internal/middleware"
)

// ClientHandler handles client (tenant) management requests.
type ClientHandler struct {
	clientService portssvc.ClientSvcFacade
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(cs portssvc.ClientSvcFacade) *ClientHandler {
	return &ClientHandler{clientService: cs}
}

// registerClientRoutes sets up client routes and nests the client-scoped
// portfolio, debtor and import-mapping routes under /clients/:client_id.
func registerClientRoutes(
	rg *gin.RouterGroup,
	clientService portssvc.ClientSvcFacade,
	portfolioService portssvc.PortfolioSvcFacade,
	debtorService portssvc.DebtorSvcFacade,
	mappingService portssvc.ImportMappingSvcFacade,
) {
	h := NewClientHandler(clientService)
	clients := rg.Group("/clients")
	{
		clients.POST("", h.CreateClient)
		clients.GET("", h.ListClients)
		clients.GET("/:client_id", h.GetClient)
		clients.POST("/:client_id/users", h.AddUserToClient)
	}

	scoped := clients.Group("/:client_id")
	registerPortfolioRoutes(scoped, portfolioService)
	registerDebtorRoutes(scoped, debtorService)
	registerImportMappingRoutes(scoped, mappingService)
}

// CreateClient godoc
// @Summary Create a new client
// @Description Creates a client (collection agency tenant) and makes the creator its admin.
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req.Name, req.Description, userID)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to create client", slog.String("error", err.Error()))
		respondWithServiceError(c, err, "Failed to create client")
		return
	}
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// ListClients godoc
// @Summary List the caller's clients
// @Description Returns every client the authenticated user is an active member of.
// @Tags clients
// @Produce json
// @Success 200 {array} dto.ClientResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	clients, err := h.clientService.ListUserClients(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToListClientResponse(clients))
}

// GetClient godoc
// @Summary Get a client by ID
// @Description Returns a single client if the caller is a member.
// @Tags clients
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	clientID := c.Param("client_id")

	if err := h.clientService.AuthorizeUserAction(c.Request.Context(), userID, clientID, domain.RoleViewer); err != nil {
		respondWithServiceError(c, err, "Failed to get client")
		return
	}

	client, err := h.clientService.FindClientByID(c.Request.Context(), clientID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to get client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// AddUserToClient godoc
// @Summary Add a user to a client
// @Description Grants a user a role in the client. Only client admins may call this.
// @Tags clients
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param membership body dto.AddUserToClientRequest true "User and role"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/users [post]
func (h *ClientHandler) AddUserToClient(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	clientID := c.Param("client_id")

	var req dto.AddUserToClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	err := h.clientService.AddUserToClient(c.Request.Context(), userID, req.UserID, clientID, domain.UserClientRole(req.Role))
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Only client admins can add users"})
			return
		}
		respondWithServiceError(c, err, "Failed to add user to client")
		return
	}
	c.Status(http.StatusNoContent)
}
