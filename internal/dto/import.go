package dto

// ImportAccountsRequest is the bulk account import invocation. records is the
// already-parsed tabular data (header-keyed rows); delimited-text parsing
// happens client-side before this request is built.
type ImportAccountsRequest struct {
	PortfolioID     string              `json:"portfolioId" binding:"required"`
	ClientID        string              `json:"clientId" binding:"required"`
	Records         []map[string]string `json:"records" binding:"required"`
	Mappings        map[string]string   `json:"mappings" binding:"required"`
	FileNumberStart int                 `json:"fileNumberStart"`
}

// ImportResults summarizes one account import run. Errors holds one
// human-readable string per failed row; Warnings holds non-fatal row issues
// such as unparseable currency cells coerced to zero.
type ImportResults struct {
	Created  int      `json:"created"`
	Updated  int      `json:"updated"`
	Linked   int      `json:"linked"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ImportAccountsResponse is the HTTP envelope around ImportResults.
type ImportAccountsResponse struct {
	Success bool          `json:"success"`
	Results ImportResults `json:"results"`
	Message string        `json:"message"`
}

// ImportContactsRequest is the contact-only import invocation. It matches
// existing debtors and appends contacts; it never creates accounts.
type ImportContactsRequest struct {
	PortfolioID string              `json:"portfolioId" binding:"required"`
	Records     []map[string]string `json:"records" binding:"required"`
	Mappings    map[string]string   `json:"mappings" binding:"required"`
}

// ContactImportResults summarizes one contact import run.
type ContactImportResults struct {
	Added   int      `json:"added"`
	Matched int      `json:"matched"`
	Errors  []string `json:"errors"`
}
