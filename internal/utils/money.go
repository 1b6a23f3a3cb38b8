package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseCurrencyToCents parses a currency amount as it appears in imported
// spreadsheets ("$1,234.56", "1234.56", "1234") and returns integer cents.
// The boolean reports whether the value parsed; callers decide whether an
// unparseable cell is an error or a zero with a warning.
func ParseCurrencyToCents(raw string) (int64, bool) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, false
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), true
}

// FormatCentsToCurrency renders integer cents as a plain decimal string
// ("123456" cents -> "1234.56"). Used for display and CSV export.
func FormatCentsToCurrency(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}
