package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/recovra/debt_collection_app/internal/apperrors"
	"github.com/recovra/debt_collection_app/internal/core/domain"
	portsrepo "github.com/recovra/debt_collection_app/internal/core/ports/repositories"
	portssvc "github.com/recovra/debt_collection_app/internal/core/ports/services"
	"github.com/recovra/debt_collection_app/internal/dto"
	"github.com/recovra/debt_collection_app/internal/middleware"
	"github.com/recovra/debt_collection_app/internal/utils/importing"
)

// ImportMappingService manages saved column-mapping presets per client.
type ImportMappingService struct {
	mappingRepo portsrepo.ImportMappingRepositoryFacade
	authSvc     portssvc.ClientAuthorizerSvc
}

// NewImportMappingService creates a new ImportMappingService.
func NewImportMappingService(mr portsrepo.ImportMappingRepositoryFacade, auth portssvc.ClientAuthorizerSvc) portssvc.ImportMappingSvcFacade {
	return &ImportMappingService{
		mappingRepo: mr,
		authSvc:     auth,
	}
}

var _ portssvc.ImportMappingSvcFacade = (*ImportMappingService)(nil)

// validateTargets rejects mapping entries with a blank target. Targets outside
// the fixed field enumeration are legal: on account imports they become the
// custom-field key for that column's values.
func validateTargets(columns map[string]string) error {
	for col, target := range columns {
		if strings.TrimSpace(target) == "" {
			return fmt.Errorf("%w: column %q has no mapping target", apperrors.ErrValidation, col)
		}
	}
	return nil
}

func (s *ImportMappingService) CreateImportMapping(ctx context.Context, clientID string, req dto.SaveImportMappingRequest, userID string) (*domain.ImportMapping, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authSvc.AuthorizeUserAction(ctx, userID, clientID, domain.RoleCollector); err != nil {
		return nil, err
	}
	if err := validateTargets(req.Mapping); err != nil {
		return nil, err
	}

	if req.IsDefault {
		if err := s.mappingRepo.ClearDefaultMapping(ctx, clientID); err != nil {
			return nil, fmt.Errorf("failed to clear previous default mapping: %w", err)
		}
	}

	now := time.Now()
	importMapping := domain.ImportMapping{
		MappingID: uuid.NewString(),
		ClientID:  clientID,
		Name:      req.Name,
		Mapping:   req.Mapping,
		IsDefault: req.IsDefault,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.mappingRepo.SaveImportMapping(ctx, importMapping); err != nil {
		logger.Error("Failed to save import mapping", slog.String("error", err.Error()), slog.String("mapping_name", req.Name))
		return nil, fmt.Errorf("failed to create import mapping: %w", err)
	}
	return &importMapping, nil
}

func (s *ImportMappingService) ListImportMappings(ctx context.Context, clientID string, userID string) ([]domain.ImportMapping, error) {
	if err := s.authSvc.AuthorizeUserAction(ctx, userID, clientID, domain.RoleViewer); err != nil {
		return nil, err
	}
	mappings, err := s.mappingRepo.ListImportMappingsByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list import mappings for client %s: %w", clientID, err)
	}
	return mappings, nil
}

// findInClient loads a mapping and verifies tenancy.
func (s *ImportMappingService) findInClient(ctx context.Context, clientID, mappingID string) (*domain.ImportMapping, error) {
	importMapping, err := s.mappingRepo.FindImportMappingByID(ctx, mappingID)
	if err != nil {
		return nil, err
	}
	if importMapping.ClientID != clientID {
		return nil, apperrors.ErrNotFound
	}
	return importMapping, nil
}

func (s *ImportMappingService) UpdateImportMapping(ctx context.Context, clientID, mappingID string, req dto.SaveImportMappingRequest, userID string) (*domain.ImportMapping, error) {
	if err := s.authSvc.AuthorizeUserAction(ctx, userID, clientID, domain.RoleCollector); err != nil {
		return nil, err
	}
	if err := validateTargets(req.Mapping); err != nil {
		return nil, err
	}
	importMapping, err := s.findInClient(ctx, clientID, mappingID)
	if err != nil {
		return nil, err
	}

	if req.IsDefault && !importMapping.IsDefault {
		if err := s.mappingRepo.ClearDefaultMapping(ctx, clientID); err != nil {
			return nil, fmt.Errorf("failed to clear previous default mapping: %w", err)
		}
	}

	importMapping.Name = req.Name
	importMapping.Mapping = req.Mapping
	importMapping.IsDefault = req.IsDefault
	importMapping.LastUpdatedAt = time.Now()
	importMapping.LastUpdatedBy = userID

	if err := s.mappingRepo.UpdateImportMapping(ctx, *importMapping); err != nil {
		return nil, fmt.Errorf("failed to update import mapping %s: %w", mappingID, err)
	}
	return importMapping, nil
}

func (s *ImportMappingService) DeleteImportMapping(ctx context.Context, clientID, mappingID string, userID string) error {
	if err := s.authSvc.AuthorizeUserAction(ctx, userID, clientID, domain.RoleCollector); err != nil {
		return err
	}
	if _, err := s.findInClient(ctx, clientID, mappingID); err != nil {
		return err
	}
	return s.mappingRepo.DeleteImportMapping(ctx, mappingID)
}

// PreviewMapping builds the editable mapping for a header row: every column
// starts at the user's current choice (or "skip"), then the chosen preset is
// partially merged on top for columns present in both the file and the
// preset. Columns the preset does not know keep the user's edits.
func (s *ImportMappingService) PreviewMapping(ctx context.Context, clientID string, req dto.PreviewMappingRequest, userID string) (*dto.PreviewMappingResponse, error) {
	if err := s.authSvc.AuthorizeUserAction(ctx, userID, clientID, domain.RoleViewer); err != nil {
		return nil, err
	}

	var preset map[string]string
	if req.MappingID != "" {
		saved, err := s.findInClient(ctx, clientID, req.MappingID)
		if err != nil {
			return nil, err
		}
		preset = saved.Mapping
	}
	mapping := importing.ApplyMapping(req.Headers, req.CurrentMapping, preset, req.ImportType)

	return &dto.PreviewMappingResponse{
		Mapping:      mapping,
		TargetFields: importing.TargetFields(req.ImportType),
	}, nil
}
