package domain

// ImportMapping is a named, reusable correspondence between source spreadsheet
// column names and target field names, persisted per client. Applying one to a
// new file is a partial merge: only columns present in both the file and the
// mapping are copied, everything else keeps its current assignment.
type ImportMapping struct {
	MappingID string            `json:"mappingID"` // Primary Key (UUID)
	ClientID  string            `json:"clientID"`
	Name      string            `json:"name"`
	Mapping   map[string]string `json:"mapping"` // source column -> target field
	IsDefault bool              `json:"isDefault"`
	AuditFields
}
