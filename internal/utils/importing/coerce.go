package importing

import (
	"fmt"
	"strings"

	"github.com/recovra/debt_collection_app/internal/utils"
)

// MappedRow is one source row after column mapping and type coercion.
// Values holds canonical string fields; Cents holds currency fields already
// parsed to integer minor units; Custom holds values whose mapping target is
// outside the fixed field enumeration, keyed by the label the user chose. A
// field absent from all three maps was either unmapped, missing from the row,
// or blank.
type MappedRow struct {
	Values map[string]string
	Cents  map[string]int64
	Custom map[string]string
}

// Get returns the string value for a canonical field, with presence.
func (r MappedRow) Get(field string) (string, bool) {
	v, ok := r.Values[field]
	return v, ok
}

// Str returns the string value for a canonical field, or "" when absent.
func (r MappedRow) Str(field string) string {
	return r.Values[field]
}

// Money returns the cents value for a currency field, with presence.
func (r MappedRow) Money(field string) (int64, bool) {
	v, ok := r.Cents[field]
	return v, ok
}

// CoerceRow applies a column mapping to a raw record and coerces cell values
// to their canonical types. Skipped columns are dropped, blank cells stay
// absent so downstream partial patches never blank out existing data, and
// currency cells that fail to parse coerce to zero with a warning. On account
// imports a target outside the fixed enumeration is retained as a custom
// field under the chosen label; contact imports drop such columns. Columns
// are walked in sorted order so duplicate targets resolve deterministically.
func CoerceRow(record map[string]string, mapping map[string]string, importType string) (MappedRow, []string) {
	row := MappedRow{
		Values: make(map[string]string),
		Cents:  make(map[string]int64),
		Custom: make(map[string]string),
	}
	var warnings []string

	for _, col := range MappedColumns(mapping) {
		raw, ok := record[col]
		if !ok {
			continue
		}
		cell := strings.TrimSpace(raw)
		if cell == "" {
			continue
		}
		target := mapping[col]
		spec, known := LookupField(importType, target)
		if !known {
			if importType != "contacts" {
				row.Custom[target] = cell
			}
			continue
		}
		if spec.Currency {
			cents, parsed := utils.ParseCurrencyToCents(cell)
			if !parsed {
				warnings = append(warnings, fmt.Sprintf("column %q: unparseable amount %q, using 0", col, raw))
			}
			row.Cents[target] = cents
			continue
		}
		row.Values[target] = cell
	}
	return row, warnings
}

// PhoneSlot is one phone extracted from a mapped row.
type PhoneSlot struct {
	Number string
	Label  string
}

// EmailSlot is one email extracted from a mapped row.
type EmailSlot struct {
	Address string
	Label   string
}

// Phones collects the filled phone slots of a row in slot order. Slot 1
// falls back to the legacy "phone" column when "phone1" is empty. Labels
// default to "Primary" for slot 1 and "Phone {n}" otherwise.
func (r MappedRow) Phones() []PhoneSlot {
	var phones []PhoneSlot
	for i := 1; i <= MaxPhones; i++ {
		number := r.Str(fmt.Sprintf("phone%d", i))
		if i == 1 && number == "" {
			number = r.Str("phone")
		}
		if number == "" {
			continue
		}
		label := r.Str(fmt.Sprintf("phone%dLabel", i))
		if label == "" {
			if i == 1 {
				label = "Primary"
			} else {
				label = fmt.Sprintf("Phone %d", i)
			}
		}
		phones = append(phones, PhoneSlot{Number: number, Label: label})
	}
	return phones
}

// Emails collects the filled email slots of a row in slot order, with the
// same label defaulting as Phones.
func (r MappedRow) Emails() []EmailSlot {
	var emails []EmailSlot
	for i := 1; i <= MaxEmails; i++ {
		address := r.Str(fmt.Sprintf("email%d", i))
		if address == "" {
			continue
		}
		label := r.Str(fmt.Sprintf("email%dLabel", i))
		if label == "" {
			if i == 1 {
				label = "Primary"
			} else {
				label = fmt.Sprintf("Email %d", i)
			}
		}
		emails = append(emails, EmailSlot{Address: address, Label: label})
	}
	return emails
}

// ReferenceSlot is one personal reference extracted from a mapped row.
type ReferenceSlot struct {
	Name         string
	Phone        string
	Relationship string
	Address      string
	City         string
	State        string
	Zip          string
	Notes        string
}

// References collects the reference groups whose name field is filled.
// A group without a name is dropped even when its other columns carry
// values; within a named group every other field is independently optional.
func (r MappedRow) References() []ReferenceSlot {
	var refs []ReferenceSlot
	for i := 1; i <= MaxReferences; i++ {
		name := r.Str(fmt.Sprintf("ref%dName", i))
		if name == "" {
			continue
		}
		refs = append(refs, ReferenceSlot{
			Name:         name,
			Phone:        r.Str(fmt.Sprintf("ref%dPhone", i)),
			Relationship: r.Str(fmt.Sprintf("ref%dRelationship", i)),
			Address:      r.Str(fmt.Sprintf("ref%dAddress", i)),
			City:         r.Str(fmt.Sprintf("ref%dCity", i)),
			State:        r.Str(fmt.Sprintf("ref%dState", i)),
			Zip:          r.Str(fmt.Sprintf("ref%dZip", i)),
			Notes:        r.Str(fmt.Sprintf("ref%dNotes", i)),
		})
	}
	return refs
}

// CustomFields collects the free-form bucket of a row: the numbered custom
// slots keyed by slot name, plus every value whose mapping target was outside
// the fixed enumeration, keyed by the label the user chose.
func (r MappedRow) CustomFields() map[string]string {
	fields := make(map[string]string)
	for i := 1; i <= MaxCustomFields; i++ {
		key := fmt.Sprintf("custom%d", i)
		if v := r.Str(key); v != "" {
			fields[key] = v
		}
	}
	for label, v := range r.Custom {
		fields[label] = v
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
