package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/recovra/debt_collection_app/internal/core/ports/services"
	"github.com/recovra/debt_collection_app/internal/dto"
	"github.com/recovra/debt_collection_app/internal/middleware"
)

// DebtorHandler handles debtor (account) requests within a client.
type DebtorHandler struct {
	debtorService portssvc.DebtorSvcFacade
}

// NewDebtorHandler creates a new DebtorHandler.
func NewDebtorHandler(ds portssvc.DebtorSvcFacade) *DebtorHandler {
	return &DebtorHandler{debtorService: ds}
}

// registerDebtorRoutes sets up the debtor routes nested under a client.
func registerDebtorRoutes(rg *gin.RouterGroup, debtorService portssvc.DebtorSvcFacade) {
	h := NewDebtorHandler(debtorService)
	debtors := rg.Group("/debtors")
	{
		debtors.POST("", h.CreateDebtor)
		debtors.GET("/:debtor_id", h.GetDebtor)
		debtors.PATCH("/:debtor_id", h.UpdateDebtor)
		debtors.POST("/:debtor_id/contacts", h.AddContact)
		debtors.PATCH("/:debtor_id/contacts/:contact_id/validity", h.MarkContactValidity)
	}
	// list sits under the portfolio it belongs to
	rg.GET("/portfolios/:portfolio_id/debtors", h.ListDebtorsByPortfolio)
}

// CreateDebtor godoc
// @Summary Create a debtor manually
// @Description Creates a single debtor account outside the bulk import path. Requires COLLECTOR role.
// @Tags debtors
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param debtor body dto.CreateDebtorRequest true "Debtor details"
// @Success 201 {object} dto.DebtorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/debtors [post]
func (h *DebtorHandler) CreateDebtor(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	clientID := c.Param("client_id")

	var req dto.CreateDebtorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	debtor, err := h.debtorService.CreateDebtor(c.Request.Context(), clientID, req, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create debtor")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDebtorResponse(debtor))
}

// GetDebtor godoc
// @Summary Get a debtor with its child entities
// @Description Returns the debtor plus its contacts, employment records and references.
// @Tags debtors
// @Produce json
// @Param client_id path string true "Client ID"
// @Param debtor_id path string true "Debtor ID"
// @Success 200 {object} dto.DebtorDetail
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/debtors/{debtor_id} [get]
func (h *DebtorHandler) GetDebtor(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	detail, err := h.debtorService.GetDebtorByID(c.Request.Context(), c.Param("client_id"), c.Param("debtor_id"), userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to get debtor")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListDebtorsByPortfolio godoc
// @Summary List debtors in a portfolio
// @Description Returns a page of debtors ordered by creation time.
// @Tags debtors
// @Produce json
// @Param client_id path string true "Client ID"
// @Param portfolio_id path string true "Portfolio ID"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListDebtorsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/portfolios/{portfolio_id}/debtors [get]
func (h *DebtorHandler) ListDebtorsByPortfolio(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListDebtorsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	debtors, err := h.debtorService.ListDebtorsByPortfolio(c.Request.Context(), c.Param("client_id"), c.Param("portfolio_id"), params.Limit, params.Offset, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list debtors")
		return
	}
	c.JSON(http.StatusOK, dto.ListDebtorsResponse{Debtors: dto.ToListDebtorResponse(debtors)})
}

// UpdateDebtor godoc
// @Summary Update a debtor
// @Description Applies a partial update to a debtor. Only provided fields change.
// @Tags debtors
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param debtor_id path string true "Debtor ID"
// @Param debtor body dto.UpdateDebtorRequest true "Fields to update"
// @Success 200 {object} dto.DebtorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/debtors/{debtor_id} [patch]
func (h *DebtorHandler) UpdateDebtor(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateDebtorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	debtor, err := h.debtorService.UpdateDebtor(c.Request.Context(), c.Param("client_id"), c.Param("debtor_id"), req, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update debtor")
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtorResponse(debtor))
}

// AddContact godoc
// @Summary Add a contact to a debtor
// @Description Appends a phone or email contact to the debtor.
// @Tags debtors
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param debtor_id path string true "Debtor ID"
// @Param contact body dto.AddContactRequest true "Contact details"
// @Success 201 {object} domain.Contact
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/debtors/{debtor_id}/contacts [post]
func (h *DebtorHandler) AddContact(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AddContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	contact, err := h.debtorService.AddContact(c.Request.Context(), c.Param("client_id"), c.Param("debtor_id"), req, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to add contact")
		return
	}
	c.JSON(http.StatusCreated, contact)
}

// markContactValidityRequest toggles whether a contact is still good.
type markContactValidityRequest struct {
	IsValid *bool `json:"isValid" binding:"required"`
}

// MarkContactValidity godoc
// @Summary Mark a contact valid or invalid
// @Description Flags a phone or email as good or bad without deleting it.
// @Tags debtors
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param debtor_id path string true "Debtor ID"
// @Param contact_id path string true "Contact ID"
// @Param validity body markContactValidityRequest true "Validity flag"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/debtors/{debtor_id}/contacts/{contact_id}/validity [patch]
func (h *DebtorHandler) MarkContactValidity(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req markContactValidityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	err := h.debtorService.MarkContactValidity(c.Request.Context(), c.Param("client_id"), c.Param("debtor_id"), c.Param("contact_id"), *req.IsValid, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update contact")
		return
	}
	c.Status(http.StatusNoContent)
}
