package importing_test

import (
	"testing"

	"github.com/recovra/debt_collection_app/internal/utils/importing"
	"github.com/stretchr/testify/assert"
)

func TestDefaultMapping_EveryColumnSkipped(t *testing.T) {
	headers := []string{"Acct #", "First Name", "Balance", "Weird Column"}

	mapping := importing.DefaultMapping(headers)

	assert.Len(t, mapping, len(headers))
	for _, h := range headers {
		assert.Equal(t, importing.SkipField, mapping[h])
	}
}

func TestApplyMapping_PartialMerge(t *testing.T) {
	headers := []string{"Acct #", "First Name", "Balance"}
	saved := map[string]string{
		"Acct #":        "accountNumber",
		"Balance":       "originalBalance",
		"Stale Column":  "lastName", // not in this file, must be ignored
		"First Name":    "firstName",
	}

	mapping := importing.ApplyMapping(headers, nil, saved, "accounts")

	assert.Equal(t, map[string]string{
		"Acct #":     "accountNumber",
		"First Name": "firstName",
		"Balance":    "originalBalance",
	}, mapping)
	assert.NotContains(t, mapping, "Stale Column")
}

func TestApplyMapping_CurrentMappingIsTheBase(t *testing.T) {
	headers := []string{"Acct #", "Lot", "Balance"}
	current := map[string]string{
		"Lot":     "custom1",        // user edit on a column the preset does not know
		"Balance": "currentBalance", // overridden by the preset below
	}
	saved := map[string]string{
		"Acct #":  "accountNumber",
		"Balance": "originalBalance",
	}

	mapping := importing.ApplyMapping(headers, current, saved, "accounts")

	assert.Equal(t, map[string]string{
		"Acct #":  "accountNumber",
		"Lot":     "custom1",
		"Balance": "originalBalance",
	}, mapping)
}

func TestApplyMapping_CustomLabelKeptForAccounts(t *testing.T) {
	headers := []string{"Acct #", "Branch"}
	saved := map[string]string{
		"Acct #": "accountNumber",
		"Branch": "branchCode", // outside the enumeration, kept as a custom label
	}

	mapping := importing.ApplyMapping(headers, nil, saved, "accounts")

	assert.Equal(t, "accountNumber", mapping["Acct #"])
	assert.Equal(t, "branchCode", mapping["Branch"])
}

func TestApplyMapping_UnknownTargetDegradesToSkipForContacts(t *testing.T) {
	headers := []string{"Acct #", "Shoe Size"}
	saved := map[string]string{
		"Acct #":    "accountNumber",
		"Shoe Size": "shoeSize",
	}

	mapping := importing.ApplyMapping(headers, nil, saved, "contacts")

	assert.Equal(t, "accountNumber", mapping["Acct #"])
	assert.Equal(t, importing.SkipField, mapping["Shoe Size"])
}

func TestApplyMapping_AccountFieldInvalidForContacts(t *testing.T) {
	headers := []string{"Employer"}
	saved := map[string]string{"Employer": "employerName"}

	mapping := importing.ApplyMapping(headers, nil, saved, "contacts")

	assert.Equal(t, importing.SkipField, mapping["Employer"])
}

func TestTargetFields_ContactSetIsReduced(t *testing.T) {
	accountTargets := importing.TargetFields("accounts")
	contactTargets := importing.TargetFields("contacts")

	assert.Contains(t, accountTargets, "originalBalance")
	assert.Contains(t, accountTargets, "status")
	assert.Contains(t, accountTargets, "ssnLast4")
	assert.Contains(t, accountTargets, "employerName")
	assert.Contains(t, accountTargets, "phone5")
	assert.Contains(t, accountTargets, "ref3Relationship")
	assert.Contains(t, accountTargets, "ref1Address")
	assert.Contains(t, accountTargets, "ref2City")
	assert.Contains(t, accountTargets, "ref3Notes")
	assert.Contains(t, accountTargets, "custom10")

	assert.Contains(t, contactTargets, "accountNumber")
	assert.Contains(t, contactTargets, "ssn")
	assert.Contains(t, contactTargets, "phone1")
	assert.Contains(t, contactTargets, "email3Label")
	assert.NotContains(t, contactTargets, "originalBalance")
	assert.NotContains(t, contactTargets, "employerName")
}

func TestIsKnownField(t *testing.T) {
	assert.True(t, importing.IsKnownField("accounts", importing.SkipField))
	assert.True(t, importing.IsKnownField("accounts", "ssn"))
	assert.True(t, importing.IsKnownField("contacts", "phone2Label"))
	assert.False(t, importing.IsKnownField("accounts", "notAField"))
	assert.False(t, importing.IsKnownField("contacts", "salary"))
}

func TestIsMappableTarget(t *testing.T) {
	assert.True(t, importing.IsMappableTarget("accounts", "ssn"))
	assert.True(t, importing.IsMappableTarget("accounts", "branchCode"), "custom labels are mappable on account imports")
	assert.False(t, importing.IsMappableTarget("accounts", ""))
	assert.True(t, importing.IsMappableTarget("contacts", "phone1"))
	assert.False(t, importing.IsMappableTarget("contacts", "branchCode"))
}

func TestMappedColumns_SortedAndFiltered(t *testing.T) {
	mapping := map[string]string{
		"zeta":    "lastName",
		"alpha":   "firstName",
		"skipped": importing.SkipField,
		"blank":   "",
	}

	cols := importing.MappedColumns(mapping)

	assert.Equal(t, []string{"alpha", "zeta"}, cols)
}
