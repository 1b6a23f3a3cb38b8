package importing_test

import (
	"testing"

	"github.com/recovra/debt_collection_app/internal/utils/importing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceRow_BasicMapping(t *testing.T) {
	record := map[string]string{
		"Acct #":     "ACC-100",
		"First Name": "  Jane  ",
		"Balance":    "$1,500.00",
		"Ignored":    "whatever",
	}
	mapping := map[string]string{
		"Acct #":     "accountNumber",
		"First Name": "firstName",
		"Balance":    "originalBalance",
		"Ignored":    importing.SkipField,
	}

	row, warnings := importing.CoerceRow(record, mapping, "accounts")

	assert.Empty(t, warnings)
	assert.Equal(t, "ACC-100", row.Str("accountNumber"))
	assert.Equal(t, "Jane", row.Str("firstName"), "cell values are trimmed")

	cents, ok := row.Money("originalBalance")
	require.True(t, ok)
	assert.Equal(t, int64(150000), cents)

	_, present := row.Get("lastName")
	assert.False(t, present, "unmapped fields stay absent")
}

func TestCoerceRow_BlankCellsStayAbsent(t *testing.T) {
	record := map[string]string{
		"First Name": "   ",
		"Last Name":  "Doe",
	}
	mapping := map[string]string{
		"First Name": "firstName",
		"Last Name":  "lastName",
	}

	row, _ := importing.CoerceRow(record, mapping, "accounts")

	_, present := row.Get("firstName")
	assert.False(t, present, "blank cells must not produce empty-string patches")
	assert.Equal(t, "Doe", row.Str("lastName"))
}

func TestCoerceRow_MissingCellStaysAbsent(t *testing.T) {
	record := map[string]string{"Last Name": "Doe"}
	mapping := map[string]string{
		"First Name": "firstName",
		"Last Name":  "lastName",
	}

	row, _ := importing.CoerceRow(record, mapping, "accounts")

	_, present := row.Get("firstName")
	assert.False(t, present)
}

func TestCoerceRow_UnparseableCurrencyWarnsAndZeroes(t *testing.T) {
	record := map[string]string{"Balance": "N/A"}
	mapping := map[string]string{"Balance": "originalBalance"}

	row, warnings := importing.CoerceRow(record, mapping, "accounts")

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Balance")
	assert.Contains(t, warnings[0], "using 0")

	cents, ok := row.Money("originalBalance")
	assert.True(t, ok, "the field is present with a zero value")
	assert.Equal(t, int64(0), cents)
}

func TestCoerceRow_UnknownTargetBecomesCustomField(t *testing.T) {
	record := map[string]string{
		"Acct":   "ACC-9",
		"Branch": "B-77",
	}
	mapping := map[string]string{
		"Acct":   "accountNumber",
		"Branch": "branchCode", // not in the enumeration, kept under the chosen label
	}

	row, warnings := importing.CoerceRow(record, mapping, "accounts")

	assert.Empty(t, warnings)
	assert.Equal(t, "ACC-9", row.Str("accountNumber"))
	_, present := row.Get("branchCode")
	assert.False(t, present, "custom values stay out of the canonical field map")
	assert.Equal(t, map[string]string{"branchCode": "B-77"}, row.CustomFields())
}

func TestCoerceRow_ContactTypeDropsUnknownTargets(t *testing.T) {
	record := map[string]string{"Branch": "B-77"}
	mapping := map[string]string{"Branch": "branchCode"}

	row, _ := importing.CoerceRow(record, mapping, "contacts")

	assert.Nil(t, row.CustomFields(), "contact imports have no custom-field bucket")
}

func TestCoerceRow_ContactTypeIgnoresAccountFields(t *testing.T) {
	record := map[string]string{
		"Acct":     "ACC-1",
		"Employer": "Acme",
	}
	mapping := map[string]string{
		"Acct":     "accountNumber",
		"Employer": "employerName",
	}

	row, _ := importing.CoerceRow(record, mapping, "contacts")

	assert.Equal(t, "ACC-1", row.Str("accountNumber"))
	_, present := row.Get("employerName")
	assert.False(t, present, "employerName is not a contact-import target")
}

func TestPhones_SlotOrderFallbackAndLabels(t *testing.T) {
	row := importing.MappedRow{Values: map[string]string{
		"phone":       "555-0001", // legacy column backs slot 1
		"phone3":      "555-0003",
		"phone3Label": "Work",
	}, Cents: map[string]int64{}}

	phones := row.Phones()

	require.Len(t, phones, 2)
	assert.Equal(t, importing.PhoneSlot{Number: "555-0001", Label: "Primary"}, phones[0])
	assert.Equal(t, importing.PhoneSlot{Number: "555-0003", Label: "Work"}, phones[1])
}

func TestPhones_Phone1WinsOverLegacy(t *testing.T) {
	row := importing.MappedRow{Values: map[string]string{
		"phone":  "555-0000",
		"phone1": "555-1111",
	}, Cents: map[string]int64{}}

	phones := row.Phones()

	require.Len(t, phones, 1)
	assert.Equal(t, "555-1111", phones[0].Number)
}

func TestEmails_DefaultLabels(t *testing.T) {
	row := importing.MappedRow{Values: map[string]string{
		"email1": "jane@example.com",
		"email2": "jane.doe@work.example.com",
	}, Cents: map[string]int64{}}

	emails := row.Emails()

	require.Len(t, emails, 2)
	assert.Equal(t, "Primary", emails[0].Label)
	assert.Equal(t, "Email 2", emails[1].Label)
}

func TestReferences_RequireName(t *testing.T) {
	row := importing.MappedRow{Values: map[string]string{
		"ref1Name":         "Bob",
		"ref1Phone":        "555-2222",
		"ref2Phone":        "555-3333", // no name, whole group dropped
		"ref3Name":         "Carol",
		"ref3Relationship": "Sister",
	}, Cents: map[string]int64{}}

	refs := row.References()

	require.Len(t, refs, 2)
	assert.Equal(t, importing.ReferenceSlot{Name: "Bob", Phone: "555-2222"}, refs[0])
	assert.Equal(t, importing.ReferenceSlot{Name: "Carol", Relationship: "Sister"}, refs[1])
}

func TestReferences_FullFieldGroup(t *testing.T) {
	row := importing.MappedRow{Values: map[string]string{
		"ref1Name":         "Bob Neighbor",
		"ref1Phone":        "555-2222",
		"ref1Relationship": "Neighbor",
		"ref1Address":      "12 Elm St",
		"ref1City":         "Springfield",
		"ref1State":        "IL",
		"ref1Zip":          "62701",
		"ref1Notes":        "answers evenings",
	}, Cents: map[string]int64{}}

	refs := row.References()

	require.Len(t, refs, 1)
	assert.Equal(t, importing.ReferenceSlot{
		Name:         "Bob Neighbor",
		Phone:        "555-2222",
		Relationship: "Neighbor",
		Address:      "12 Elm St",
		City:         "Springfield",
		State:        "IL",
		Zip:          "62701",
		Notes:        "answers evenings",
	}, refs[0])
}

func TestCustomFields(t *testing.T) {
	row := importing.MappedRow{Values: map[string]string{
		"custom1": "lot-42",
		"custom7": "vintage",
	}, Cents: map[string]int64{}}

	assert.Equal(t, map[string]string{"custom1": "lot-42", "custom7": "vintage"}, row.CustomFields())

	empty := importing.MappedRow{Values: map[string]string{}, Cents: map[string]int64{}}
	assert.Nil(t, empty.CustomFields())
}

func TestCustomFields_MergesSlotsAndLabels(t *testing.T) {
	row := importing.MappedRow{
		Values: map[string]string{"custom1": "lot-42"},
		Cents:  map[string]int64{},
		Custom: map[string]string{"branchCode": "B-77"},
	}

	assert.Equal(t, map[string]string{
		"custom1":    "lot-42",
		"branchCode": "B-77",
	}, row.CustomFields())
}
