package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/recovra/debt_collection_app/internal/apperrors"
	"github.com/recovra/debt_collection_app/internal/core/domain"
	portsrepo "github.com/recovra/debt_collection_app/internal/core/ports/repositories"
	"github.com/recovra/debt_collection_app/internal/models"
	"github.com/recovra/debt_collection_app/internal/utils/mapping"
)

type PgxImportMappingRepository struct {
	BaseRepository
}

// newPgxImportMappingRepository creates a new repository for saved column mappings.
func newPgxImportMappingRepository(pool *pgxpool.Pool) portsrepo.ImportMappingRepositoryFacade {
	return &PgxImportMappingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ImportMappingRepositoryFacade = (*PgxImportMappingRepository)(nil)

var FULL_IMPORT_MAPPING_SELECT_QUERY = `
SELECT
	im.mapping_id, im.client_id, im.name, im.mapping, im.is_default,
	im.created_at, im.created_by, im.last_updated_at, im.last_updated_by
FROM import_mappings im
`

func (r *PgxImportMappingRepository) getImportMappings(ctx context.Context, filterQuery string, args ...any) ([]domain.ImportMapping, error) {
	query := FULL_IMPORT_MAPPING_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query import mappings", err)
	}
	defer rows.Close()
	modelMappings, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ImportMapping])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.ImportMapping{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect import mapping rows", err)
	}
	return mapping.ToDomainImportMappingSlice(modelMappings), nil
}

func (r *PgxImportMappingRepository) FindImportMappingByID(ctx context.Context, mappingID string) (*domain.ImportMapping, error) {
	mappings, err := r.getImportMappings(ctx, `WHERE im.mapping_id = $1`, mappingID)
	if err != nil {
		return nil, err
	}
	if len(mappings) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &mappings[0], nil
}

func (r *PgxImportMappingRepository) ListImportMappingsByClient(ctx context.Context, clientID string) ([]domain.ImportMapping, error) {
	return r.getImportMappings(ctx, `WHERE im.client_id = $1 ORDER BY im.is_default DESC, im.name;`, clientID)
}

func (r *PgxImportMappingRepository) SaveImportMapping(ctx context.Context, importMapping domain.ImportMapping) error {
	m := mapping.ToModelImportMapping(importMapping)
	query := `
		INSERT INTO import_mappings (
			mapping_id, client_id, name, mapping, is_default,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.MappingID,
		m.ClientID,
		m.Name,
		m.Mapping,
		m.IsDefault,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("mapping named " + importMapping.Name + " already exists for this client")
		}
		return apperrors.NewAppError(500, "failed to save import mapping "+importMapping.MappingID, err)
	}
	return nil
}

func (r *PgxImportMappingRepository) UpdateImportMapping(ctx context.Context, importMapping domain.ImportMapping) error {
	m := mapping.ToModelImportMapping(importMapping)
	query := `
		UPDATE import_mappings
		SET name = $1, mapping = $2, is_default = $3, last_updated_at = $4, last_updated_by = $5
		WHERE mapping_id = $6;
	`
	result, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Mapping,
		m.IsDefault,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.MappingID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("mapping named " + importMapping.Name + " already exists for this client")
		}
		return apperrors.NewAppError(500, "failed to update import mapping "+importMapping.MappingID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("import mapping " + importMapping.MappingID + " not found")
	}
	return nil
}

func (r *PgxImportMappingRepository) DeleteImportMapping(ctx context.Context, mappingID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM import_mappings WHERE mapping_id = $1;`, mappingID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete import mapping "+mappingID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("import mapping " + mappingID + " not found")
	}
	return nil
}

// ClearDefaultMapping unsets is_default on every mapping of a client, called
// before promoting a new default so at most one default exists per client.
func (r *PgxImportMappingRepository) ClearDefaultMapping(ctx context.Context, clientID string) error {
	_, err := r.Pool.Exec(ctx, `UPDATE import_mappings SET is_default = false WHERE client_id = $1;`, clientID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to clear default mapping for client "+clientID, err)
	}
	return nil
}
