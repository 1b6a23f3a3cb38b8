package models

// ImportMapping represents a saved column-mapping row. mapping is a jsonb
// column of source column -> target field.
type ImportMapping struct {
	MappingID string            `db:"mapping_id"`
	ClientID  string            `db:"client_id"`
	Name      string            `db:"name"`
	Mapping   map[string]string `db:"mapping"`
	IsDefault bool              `db:"is_default"`
	AuditFields
}
