package utils_test

import (
	"testing"

	"github.com/recovra/debt_collection_app/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestParseCurrencyToCents(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int64
		ok       bool
	}{
		{"plain integer", "1234", 123400, true},
		{"plain decimal", "1234.56", 123456, true},
		{"dollar sign", "$1234.56", 123456, true},
		{"dollar sign and commas", "$1,234,567.89", 123456789, true},
		{"leading and trailing spaces", "  $99.95  ", 9995, true},
		{"zero", "0", 0, true},
		{"negative amount", "-$50.25", -5025, true},
		{"sub-cent rounds", "10.005", 1001, true},
		{"empty string", "", 0, false},
		{"only symbols", "$,", 0, false},
		{"not a number", "NaN", 0, false},
		{"garbage", "twelve dollars", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cents, ok := utils.ParseCurrencyToCents(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, cents)
		})
	}
}

func TestFormatCentsToCurrency(t *testing.T) {
	assert.Equal(t, "1234.56", utils.FormatCentsToCurrency(123456))
	assert.Equal(t, "0.00", utils.FormatCentsToCurrency(0))
	assert.Equal(t, "-50.25", utils.FormatCentsToCurrency(-5025))
	assert.Equal(t, "0.05", utils.FormatCentsToCurrency(5))
}

func TestCurrencyRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 123456, 999999999} {
		formatted := utils.FormatCentsToCurrency(cents)
		parsed, ok := utils.ParseCurrencyToCents(formatted)
		assert.True(t, ok)
		assert.Equal(t, cents, parsed)
	}
}
