package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/recovra/debt_collection_app/internal/apperrors"
	"github.com/recovra/debt_collection_app/internal/core/domain"
	portsrepo "github.com/recovra/debt_collection_app/internal/core/ports/repositories"
	"github.com/recovra/debt_collection_app/internal/models"
	"github.com/recovra/debt_collection_app/internal/utils/mapping"
)

type PgxContactRepository struct {
	BaseRepository
}

// newPgxContactRepository creates a new repository for contact data.
func newPgxContactRepository(pool *pgxpool.Pool) portsrepo.ContactRepositoryFacade {
	return &PgxContactRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ContactRepositoryFacade = (*PgxContactRepository)(nil)

const insertContactQuery = `
	INSERT INTO contacts (
		contact_id, debtor_id, type, value, label, is_primary, is_valid,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

func (r *PgxContactRepository) ListContactsByDebtor(ctx context.Context, debtorID string) ([]domain.Contact, error) {
	query := `
		SELECT
			c.contact_id, c.debtor_id, c.type, c.value, c.label, c.is_primary, c.is_valid,
			c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
		FROM contacts c
		WHERE c.debtor_id = $1
		ORDER BY c.created_at, c.contact_id;
	`
	rows, err := r.Pool.Query(ctx, query, debtorID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query contacts for debtor "+debtorID, err)
	}
	defer rows.Close()
	modelContacts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Contact])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Contact{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect contact rows", err)
	}
	return mapping.ToDomainContactSlice(modelContacts), nil
}

func (r *PgxContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	m := mapping.ToModelContact(contact)
	_, err := r.Pool.Exec(ctx, insertContactQuery,
		m.ContactID,
		m.DebtorID,
		m.Type,
		m.Value,
		m.Label,
		m.IsPrimary,
		m.IsValid,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("debtor " + contact.DebtorID + " does not exist")
		}
		return apperrors.NewAppError(500, "failed to save contact for debtor "+contact.DebtorID, err)
	}
	return nil
}

// SaveContacts inserts a batch of contacts in one round trip. The importer
// fans out several phones and emails per debtor, so this avoids per-row
// network latency on large files.
func (r *PgxContactRepository) SaveContacts(ctx context.Context, contacts []domain.Contact) error {
	if len(contacts) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, contact := range contacts {
		m := mapping.ToModelContact(contact)
		batch.Queue(insertContactQuery,
			m.ContactID,
			m.DebtorID,
			m.Type,
			m.Value,
			m.Label,
			m.IsPrimary,
			m.IsValid,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()
	for range contacts {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to save contact batch", err)
		}
	}
	return nil
}

func (r *PgxContactRepository) MarkContactValidity(ctx context.Context, contactID string, isValid bool, userID string) error {
	query := `
		UPDATE contacts
		SET is_valid = $1, last_updated_at = $2, last_updated_by = $3
		WHERE contact_id = $4;
	`
	result, err := r.Pool.Exec(ctx, query, isValid, time.Now(), userID, contactID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update validity for contact "+contactID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("contact " + contactID + " not found")
	}
	return nil
}
