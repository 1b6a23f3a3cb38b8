package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recovra/debt_collection_app/internal/apperrors"
	portssvc "github.com/recovra/debt_collection_app/internal/core/ports/services"
	"github.com/recovra/debt_collection_app/internal/dto"
	"github.com/recovra/debt_collection_app/internal/middleware"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// ImportHandler handles the bulk import endpoints.
type ImportHandler struct {
	importService portssvc.ImportSvcFacade
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(is portssvc.ImportSvcFacade) *ImportHandler {
	return &ImportHandler{importService: is}
}

// registerImportRoutes sets up the import routes under the authenticated v1 group.
func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportSvcFacade) {
	h := NewImportHandler(importService)

	// Batches are expensive; cap them per IP
	rate, _ := limiter.NewRateFromFormatted("30-H")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	imports := rg.Group("/imports", limitMiddleware)
	{
		imports.POST("/accounts", h.ImportAccounts)
		imports.POST("/contacts", h.ImportContacts)
	}
}

// ImportAccounts godoc
// @Summary Bulk import accounts into a portfolio
// @Description Runs the account import pipeline over parsed tabular records: column mapping, coercion, identity resolution, file numbering and the portfolio rollup. Row failures are reported in results.errors, not as an HTTP error.
// @Tags imports
// @Accept json
// @Produce json
// @Param import body dto.ImportAccountsRequest true "Parsed records, column mappings and starting file number offset"
// @Success 200 {object} dto.ImportAccountsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Portfolio not found or not accessible"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /imports/accounts [post]
func (h *ImportHandler) ImportAccounts(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ImportAccountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	results, err := h.importService.ImportAccounts(c.Request.Context(), req, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to import accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ImportAccountsResponse{
		Success: len(results.Errors) == 0,
		Results: *results,
		Message: fmt.Sprintf("Imported %d accounts, updated %d, linked %d, %d errors",
			results.Created, results.Updated, results.Linked, len(results.Errors)),
	})
}

// ImportContacts godoc
// @Summary Bulk import contacts for existing accounts
// @Description Matches records to existing debtors by account number or SSN and appends phone/email contacts. Unmatched rows are reported in results.errors; no accounts are ever created.
// @Tags imports
// @Accept json
// @Produce json
// @Param import body dto.ImportContactsRequest true "Parsed records and column mappings"
// @Success 200 {object} dto.ContactImportResults
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Portfolio not found or not accessible"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /imports/contacts [post]
func (h *ImportHandler) ImportContacts(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ImportContactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	results, err := h.importService.ImportContacts(c.Request.Context(), req, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to import contacts")
		return
	}

	c.JSON(http.StatusOK, results)
}

// respondWithServiceError maps the service error sentinels to HTTP statuses.
func respondWithServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Insufficient permissions"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
