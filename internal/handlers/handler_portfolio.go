package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/recovra/debt_collection_app/internal/core/ports/services"
	"github.com/recovra/debt_collection_app/internal/dto"
	"github.com/recovra/debt_collection_app/internal/middleware"
)

// PortfolioHandler handles portfolio requests within a client.
type PortfolioHandler struct {
	portfolioService portssvc.PortfolioSvcFacade
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(ps portssvc.PortfolioSvcFacade) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: ps}
}

// registerPortfolioRoutes sets up the portfolio routes nested under a client.
func registerPortfolioRoutes(rg *gin.RouterGroup, portfolioService portssvc.PortfolioSvcFacade) {
	h := NewPortfolioHandler(portfolioService)
	portfolios := rg.Group("/portfolios")
	{
		portfolios.POST("", h.CreatePortfolio)
		portfolios.GET("", h.ListPortfolios)
		portfolios.GET("/:portfolio_id", h.GetPortfolio)
		portfolios.POST("/:portfolio_id/recalculate-totals", h.RecalculateTotals)
	}
}

// CreatePortfolio godoc
// @Summary Create a new portfolio
// @Description Creates a debt portfolio within the client. Requires COLLECTOR role or above.
// @Tags portfolios
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param portfolio body dto.CreatePortfolioRequest true "Portfolio details"
// @Success 201 {object} dto.PortfolioResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/portfolios [post]
func (h *PortfolioHandler) CreatePortfolio(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	clientID := c.Param("client_id")

	var req dto.CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	portfolio, err := h.portfolioService.CreatePortfolio(c.Request.Context(), clientID, req, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create portfolio")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPortfolioResponse(portfolio))
}

// ListPortfolios godoc
// @Summary List portfolios
// @Description Returns every portfolio in the client.
// @Tags portfolios
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {array} dto.PortfolioResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/portfolios [get]
func (h *PortfolioHandler) ListPortfolios(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	clientID := c.Param("client_id")

	portfolios, err := h.portfolioService.ListPortfolios(c.Request.Context(), clientID, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list portfolios")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPortfolioResponse(portfolios))
}

// GetPortfolio godoc
// @Summary Get a portfolio by ID
// @Description Returns a single portfolio with its current rollup totals.
// @Tags portfolios
// @Produce json
// @Param client_id path string true "Client ID"
// @Param portfolio_id path string true "Portfolio ID"
// @Success 200 {object} dto.PortfolioResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/portfolios/{portfolio_id} [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	portfolio, err := h.portfolioService.GetPortfolioByID(c.Request.Context(), c.Param("client_id"), c.Param("portfolio_id"), userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to get portfolio")
		return
	}
	c.JSON(http.StatusOK, dto.ToPortfolioResponse(portfolio))
}

// RecalculateTotals godoc
// @Summary Recalculate portfolio totals
// @Description Re-derives totalAccounts and totalFaceValue from the debtor table and persists them.
// @Tags portfolios
// @Produce json
// @Param client_id path string true "Client ID"
// @Param portfolio_id path string true "Portfolio ID"
// @Success 200 {object} dto.PortfolioResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/portfolios/{portfolio_id}/recalculate-totals [post]
func (h *PortfolioHandler) RecalculateTotals(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	portfolio, err := h.portfolioService.RecalculateTotals(c.Request.Context(), c.Param("client_id"), c.Param("portfolio_id"), userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to recalculate portfolio totals")
		return
	}
	c.JSON(http.StatusOK, dto.ToPortfolioResponse(portfolio))
}
