package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/recovra/debt_collection_app/internal/core/ports/services"
	"github.com/recovra/debt_collection_app/internal/dto"
	"github.com/recovra/debt_collection_app/internal/middleware"
)

// ImportMappingHandler handles saved column-mapping preset requests.
type ImportMappingHandler struct {
	mappingService portssvc.ImportMappingSvcFacade
}

// NewImportMappingHandler creates a new ImportMappingHandler.
func NewImportMappingHandler(ms portssvc.ImportMappingSvcFacade) *ImportMappingHandler {
	return &ImportMappingHandler{mappingService: ms}
}

// registerImportMappingRoutes sets up the mapping preset routes nested under a client.
func registerImportMappingRoutes(rg *gin.RouterGroup, mappingService portssvc.ImportMappingSvcFacade) {
	h := NewImportMappingHandler(mappingService)
	mappings := rg.Group("/import-mappings")
	{
		mappings.POST("", h.CreateImportMapping)
		mappings.GET("", h.ListImportMappings)
		mappings.PUT("/:mapping_id", h.UpdateImportMapping)
		mappings.DELETE("/:mapping_id", h.DeleteImportMapping)
		mappings.POST("/preview", h.PreviewMapping)
	}
}

// CreateImportMapping godoc
// @Summary Save a column mapping preset
// @Description Saves a reusable source-column to target-field mapping for future imports.
// @Tags import-mappings
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param mapping body dto.SaveImportMappingRequest true "Mapping preset"
// @Success 201 {object} dto.ImportMappingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "A mapping with this name already exists"
// @Security BearerAuth
// @Router /clients/{client_id}/import-mappings [post]
func (h *ImportMappingHandler) CreateImportMapping(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	clientID := c.Param("client_id")

	var req dto.SaveImportMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	mapping, err := h.mappingService.CreateImportMapping(c.Request.Context(), clientID, req, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to save mapping")
		return
	}
	c.JSON(http.StatusCreated, dto.ToImportMappingResponse(mapping))
}

// ListImportMappings godoc
// @Summary List saved mapping presets
// @Description Returns every mapping preset saved for the client.
// @Tags import-mappings
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {array} dto.ImportMappingResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/import-mappings [get]
func (h *ImportMappingHandler) ListImportMappings(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	mappings, err := h.mappingService.ListImportMappings(c.Request.Context(), c.Param("client_id"), userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list mappings")
		return
	}
	c.JSON(http.StatusOK, dto.ToListImportMappingResponse(mappings))
}

// UpdateImportMapping godoc
// @Summary Update a mapping preset
// @Description Replaces the name, mapping and default flag of a saved preset.
// @Tags import-mappings
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param mapping_id path string true "Mapping ID"
// @Param mapping body dto.SaveImportMappingRequest true "Mapping preset"
// @Success 200 {object} dto.ImportMappingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/import-mappings/{mapping_id} [put]
func (h *ImportMappingHandler) UpdateImportMapping(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SaveImportMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	mapping, err := h.mappingService.UpdateImportMapping(c.Request.Context(), c.Param("client_id"), c.Param("mapping_id"), req, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update mapping")
		return
	}
	c.JSON(http.StatusOK, dto.ToImportMappingResponse(mapping))
}

// DeleteImportMapping godoc
// @Summary Delete a mapping preset
// @Tags import-mappings
// @Produce json
// @Param client_id path string true "Client ID"
// @Param mapping_id path string true "Mapping ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/import-mappings/{mapping_id} [delete]
func (h *ImportMappingHandler) DeleteImportMapping(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.mappingService.DeleteImportMapping(c.Request.Context(), c.Param("client_id"), c.Param("mapping_id"), userID); err != nil {
		respondWithServiceError(c, err, "Failed to delete mapping")
		return
	}
	c.Status(http.StatusNoContent)
}

// PreviewMapping godoc
// @Summary Preview the mapping for a header row
// @Description Builds the editable per-column mapping: every column defaults to "skip", then the chosen saved preset (if any) is merged on top for columns present in both.
// @Tags import-mappings
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param preview body dto.PreviewMappingRequest true "Header row and import type"
// @Success 200 {object} dto.PreviewMappingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id}/import-mappings/preview [post]
func (h *ImportMappingHandler) PreviewMapping(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.PreviewMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	preview, err := h.mappingService.PreviewMapping(c.Request.Context(), c.Param("client_id"), req, userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to preview mapping")
		return
	}
	c.JSON(http.StatusOK, preview)
}
