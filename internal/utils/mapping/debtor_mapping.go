package mapping

import (
	"database/sql"

	"github.com/recovra/debt_collection_app/internal/core/domain"
	"github.com/recovra/debt_collection_app/internal/models"
)

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ToModelDebtor converts a domain Debtor to a model Debtor
func ToModelDebtor(d domain.Debtor) models.Debtor {
	return models.Debtor{
		DebtorID:            d.DebtorID,
		ClientID:            d.ClientID,
		PortfolioID:         d.PortfolioID,
		AssignedCollectorID: toNullString(d.AssignedCollectorID),
		LinkedDebtorID:      toNullString(d.LinkedDebtorID),
		FileNumber:          d.FileNumber,
		AccountNumber:       d.AccountNumber,
		FirstName:           d.FirstName,
		LastName:            d.LastName,
		SSN:                 d.SSN,
		SSNLast4:            d.SSNLast4,
		DateOfBirth:         d.DateOfBirth,
		Address:             d.Address,
		City:                d.City,
		State:               d.State,
		Zip:                 d.Zip,
		OriginalCreditor:    d.OriginalCreditor,
		OriginalBalance:     d.OriginalBalance,
		CurrentBalance:      d.CurrentBalance,
		Status:              models.DebtorStatus(d.Status),
		ChargeOffDate:       d.ChargeOffDate,
		LastPaymentDate:     d.LastPaymentDate,
		LastContactDate:     d.LastContactDate,
		NextContactDate:     d.NextContactDate,
		Notes:               d.Notes,
		CustomFields:        d.CustomFields,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDebtor converts a model Debtor to a domain Debtor
func ToDomainDebtor(m models.Debtor) domain.Debtor {
	return domain.Debtor{
		DebtorID:            m.DebtorID,
		ClientID:            m.ClientID,
		PortfolioID:         m.PortfolioID,
		AssignedCollectorID: m.AssignedCollectorID.String,
		LinkedDebtorID:      m.LinkedDebtorID.String,
		FileNumber:          m.FileNumber,
		AccountNumber:       m.AccountNumber,
		FirstName:           m.FirstName,
		LastName:            m.LastName,
		SSN:                 m.SSN,
		SSNLast4:            m.SSNLast4,
		DateOfBirth:         m.DateOfBirth,
		Address:             m.Address,
		City:                m.City,
		State:               m.State,
		Zip:                 m.Zip,
		OriginalCreditor:    m.OriginalCreditor,
		OriginalBalance:     m.OriginalBalance,
		CurrentBalance:      m.CurrentBalance,
		Status:              domain.DebtorStatus(m.Status),
		ChargeOffDate:       m.ChargeOffDate,
		LastPaymentDate:     m.LastPaymentDate,
		LastContactDate:     m.LastContactDate,
		NextContactDate:     m.NextContactDate,
		Notes:               m.Notes,
		CustomFields:        m.CustomFields,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDebtorSlice converts a slice of model Debtors to a slice of domain Debtors
func ToDomainDebtorSlice(ms []models.Debtor) []domain.Debtor {
	ds := make([]domain.Debtor, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDebtor(m)
	}
	return ds
}
