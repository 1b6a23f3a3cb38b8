package mapping

import (
	"github.com/recovra/debt_collection_app/internal/core/domain"
	"github.com/recovra/debt_collection_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:                 d.UserID,
		Username:               d.Username,
		Name:                   d.Name,
		Email:                  d.Email,
		PasswordHash:           d.PasswordHash,
		AuthProvider:           string(d.AuthProvider),
		ProviderUserID:         d.ProviderUserID,
		EmailVerified:          d.EmailVerified,
		RefreshTokenHash:       d.RefreshTokenHash,
		RefreshTokenExpiryTime: d.RefreshTokenExpiryTime,
		AuditFields:            ToModelAuditFields(d.AuditFields),
		DeletedAt:              d.DeletedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:                 m.UserID,
		Username:               m.Username,
		Name:                   m.Name,
		Email:                  m.Email,
		PasswordHash:           m.PasswordHash,
		AuthProvider:           domain.AuthProvider(m.AuthProvider),
		ProviderUserID:         m.ProviderUserID,
		EmailVerified:          m.EmailVerified,
		RefreshTokenHash:       m.RefreshTokenHash,
		RefreshTokenExpiryTime: m.RefreshTokenExpiryTime,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
		DeletedAt:              m.DeletedAt,
	}
}
