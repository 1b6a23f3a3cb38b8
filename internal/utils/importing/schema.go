// Package importing holds the column mapping schema and field coercion rules
// shared by the account and contact bulk importers.
package importing

import (
	"fmt"
	"sort"
)

// SkipField is the mapping target for source columns that should be ignored.
const SkipField = "skip"

const (
	// MaxPhones is the number of numbered phone slots an imported row may fill.
	MaxPhones = 5
	// MaxEmails is the number of numbered email slots an imported row may fill.
	MaxEmails = 3
	// MaxReferences is the number of reference groups an imported row may fill.
	MaxReferences = 3
	// MaxCustomFields is the number of free-form custom field slots.
	MaxCustomFields = 10
)

// FieldGroup classifies a target field for the materializer. Scalar fields
// land directly on the debtor; grouped fields fan out into child entities.
type FieldGroup string

const (
	GroupScalar     FieldGroup = "scalar"
	GroupPhone      FieldGroup = "phone"
	GroupEmail      FieldGroup = "email"
	GroupEmployment FieldGroup = "employment"
	GroupReference  FieldGroup = "reference"
	GroupCustom     FieldGroup = "custom"
)

// FieldSpec describes one target field a source column can map onto.
type FieldSpec struct {
	Name     string
	Group    FieldGroup
	Index    int    // 1-based slot within the group, 0 for scalars
	Subfield string // "value", "label", "name", "phone", "relationship"
	Currency bool   // parsed into integer cents by the coercion layer
}

// accountFields is the full target field set for account imports, built once
// at init so the numbered groups stay consistent with the Max* limits.
var accountFields = buildAccountFields()

// contactFields is the reduced target set for contact-only imports: just the
// identity keys plus phone and email slots.
var contactFields = buildContactFields()

func buildAccountFields() []FieldSpec {
	fields := []FieldSpec{
		{Name: "accountNumber", Group: GroupScalar},
		{Name: "ssn", Group: GroupScalar},
		{Name: "ssnLast4", Group: GroupScalar},
		{Name: "firstName", Group: GroupScalar},
		{Name: "lastName", Group: GroupScalar},
		{Name: "dateOfBirth", Group: GroupScalar},
		{Name: "address", Group: GroupScalar},
		{Name: "city", Group: GroupScalar},
		{Name: "state", Group: GroupScalar},
		{Name: "zip", Group: GroupScalar},
		{Name: "originalCreditor", Group: GroupScalar},
		{Name: "originalBalance", Group: GroupScalar, Currency: true},
		{Name: "currentBalance", Group: GroupScalar, Currency: true},
		{Name: "status", Group: GroupScalar},
		{Name: "chargeOffDate", Group: GroupScalar},
		{Name: "lastPaymentDate", Group: GroupScalar},
		{Name: "notes", Group: GroupScalar},
		// Legacy single-phone column, used as a fallback for slot 1.
		{Name: "phone", Group: GroupScalar},
		{Name: "employerName", Group: GroupEmployment, Subfield: "name"},
		{Name: "employerPhone", Group: GroupEmployment, Subfield: "phone"},
		{Name: "employerAddress", Group: GroupEmployment, Subfield: "address"},
		{Name: "jobTitle", Group: GroupEmployment, Subfield: "jobTitle"},
		{Name: "salary", Group: GroupEmployment, Subfield: "salary", Currency: true},
	}
	fields = append(fields, phoneEmailFields()...)
	for i := 1; i <= MaxReferences; i++ {
		fields = append(fields,
			FieldSpec{Name: fmt.Sprintf("ref%dName", i), Group: GroupReference, Index: i, Subfield: "name"},
			FieldSpec{Name: fmt.Sprintf("ref%dPhone", i), Group: GroupReference, Index: i, Subfield: "phone"},
			FieldSpec{Name: fmt.Sprintf("ref%dRelationship", i), Group: GroupReference, Index: i, Subfield: "relationship"},
			FieldSpec{Name: fmt.Sprintf("ref%dAddress", i), Group: GroupReference, Index: i, Subfield: "address"},
			FieldSpec{Name: fmt.Sprintf("ref%dCity", i), Group: GroupReference, Index: i, Subfield: "city"},
			FieldSpec{Name: fmt.Sprintf("ref%dState", i), Group: GroupReference, Index: i, Subfield: "state"},
			FieldSpec{Name: fmt.Sprintf("ref%dZip", i), Group: GroupReference, Index: i, Subfield: "zip"},
			FieldSpec{Name: fmt.Sprintf("ref%dNotes", i), Group: GroupReference, Index: i, Subfield: "notes"},
		)
	}
	for i := 1; i <= MaxCustomFields; i++ {
		fields = append(fields, FieldSpec{Name: fmt.Sprintf("custom%d", i), Group: GroupCustom, Index: i})
	}
	return fields
}

func buildContactFields() []FieldSpec {
	fields := []FieldSpec{
		{Name: "accountNumber", Group: GroupScalar},
		{Name: "ssn", Group: GroupScalar},
		{Name: "phone", Group: GroupScalar},
	}
	return append(fields, phoneEmailFields()...)
}

func phoneEmailFields() []FieldSpec {
	var fields []FieldSpec
	for i := 1; i <= MaxPhones; i++ {
		fields = append(fields,
			FieldSpec{Name: fmt.Sprintf("phone%d", i), Group: GroupPhone, Index: i, Subfield: "value"},
			FieldSpec{Name: fmt.Sprintf("phone%dLabel", i), Group: GroupPhone, Index: i, Subfield: "label"},
		)
	}
	for i := 1; i <= MaxEmails; i++ {
		fields = append(fields,
			FieldSpec{Name: fmt.Sprintf("email%d", i), Group: GroupEmail, Index: i, Subfield: "value"},
			FieldSpec{Name: fmt.Sprintf("email%dLabel", i), Group: GroupEmail, Index: i, Subfield: "label"},
		)
	}
	return fields
}

func indexFields(fields []FieldSpec) map[string]FieldSpec {
	idx := make(map[string]FieldSpec, len(fields))
	for _, f := range fields {
		idx[f.Name] = f
	}
	return idx
}

var (
	accountFieldIndex = indexFields(accountFields)
	contactFieldIndex = indexFields(contactFields)
)

// TargetFields returns the selectable target field names for an import type,
// in declaration order. Unknown import types fall back to the account set.
func TargetFields(importType string) []string {
	fields := accountFields
	if importType == "contacts" {
		fields = contactFields
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// LookupField resolves a target field name for an import type.
func LookupField(importType, name string) (FieldSpec, bool) {
	if importType == "contacts" {
		f, ok := contactFieldIndex[name]
		return f, ok
	}
	f, ok := accountFieldIndex[name]
	return f, ok
}

// IsKnownField reports whether name is part of the fixed field enumeration
// for the import type. SkipField is always valid.
func IsKnownField(importType, name string) bool {
	if name == SkipField {
		return true
	}
	_, ok := LookupField(importType, name)
	return ok
}

// IsMappableTarget reports whether target can be the mapping target of a
// column for the import type. Account imports accept any non-empty label:
// a target outside the fixed enumeration becomes the custom-field key for
// that column's values. Contact imports only accept the reduced field set.
func IsMappableTarget(importType, target string) bool {
	if target == "" {
		return false
	}
	if importType == "contacts" {
		return IsKnownField(importType, target)
	}
	return true
}

// DefaultMapping builds the initial column mapping for a header row: every
// source column maps to SkipField until the user says otherwise.
func DefaultMapping(headers []string) map[string]string {
	mapping := make(map[string]string, len(headers))
	for _, h := range headers {
		mapping[h] = SkipField
	}
	return mapping
}

// ApplyMapping merges a saved mapping preset onto the user's current mapping
// for the given headers. The base is the current mapping where set, SkipField
// otherwise; the preset then overrides columns present in both the file and
// the preset, so columns the preset does not know keep the user's edits.
// Entries for columns absent from the file are ignored, and targets that are
// not mappable for the import type degrade to SkipField.
func ApplyMapping(headers []string, current, saved map[string]string, importType string) map[string]string {
	mapping := DefaultMapping(headers)
	for _, h := range headers {
		if target, ok := current[h]; ok && IsMappableTarget(importType, target) {
			mapping[h] = target
		}
		if target, ok := saved[h]; ok && IsMappableTarget(importType, target) {
			mapping[h] = target
		}
	}
	return mapping
}

// MappedColumns returns the source columns that map to real target fields,
// sorted for deterministic iteration.
func MappedColumns(mapping map[string]string) []string {
	cols := make([]string, 0, len(mapping))
	for col, target := range mapping {
		if target == "" || target == SkipField {
			continue
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}
