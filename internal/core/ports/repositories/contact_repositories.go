package repositories

import (
	"context"

	"github.com/recovra/debt_collection_app/internal/core/domain"
)

// ContactReader defines read operations for contact data.
type ContactReader interface {
	// ListContactsByDebtor retrieves all contacts for a debtor in creation order.
	ListContactsByDebtor(ctx context.Context, debtorID string) ([]domain.Contact, error)
}

// ContactWriter defines write operations for contact data.
type ContactWriter interface {
	// SaveContact persists a new contact.
	SaveContact(ctx context.Context, contact domain.Contact) error

	// SaveContacts persists a batch of contacts in one round trip.
	SaveContacts(ctx context.Context, contacts []domain.Contact) error

	// MarkContactValidity flips the is_valid flag on a contact.
	MarkContactValidity(ctx context.Context, contactID string, isValid bool, userID string) error
}

// ContactRepositoryFacade combines all contact-related repository interfaces.
type ContactRepositoryFacade interface {
	ContactReader
	ContactWriter
}
