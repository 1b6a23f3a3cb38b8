package services

import (
	"context"

	"github.com/recovra/debt_collection_app/internal/dto"
)

// AccountImporterSvc runs the bulk account import pipeline: column mapping,
// field coercion, identity resolution, file number allocation, account
// materialization and the final portfolio rollup.
type AccountImporterSvc interface {
	// ImportAccounts processes a parsed tabular batch against a portfolio.
	// Row-level problems are collected into the result, never returned as an
	// error; an error return means the batch was rejected before any row ran.
	ImportAccounts(ctx context.Context, req dto.ImportAccountsRequest, userID string) (*dto.ImportResults, error)
}

// ContactImporterSvc runs the contact-only sibling pipeline: it appends
// phone/email contacts to already-existing debtors and never creates accounts.
type ContactImporterSvc interface {
	ImportContacts(ctx context.Context, req dto.ImportContactsRequest, userID string) (*dto.ContactImportResults, error)
}

// ImportSvcFacade combines both import pipelines.
type ImportSvcFacade interface {
	AccountImporterSvc
	ContactImporterSvc
}
