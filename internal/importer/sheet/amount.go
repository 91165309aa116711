package sheet

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var errEmptyAmount = errors.New("empty amount")

var (
	dotGroups   = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)
	commaGroups = regexp.MustCompile(`^-?\d{1,3}(,\d{3})+$`)
)

// parseAmount parses an amount as typed in Colombian spreadsheets into a decimal.
// Format examples: "1.300.000" -> 1300000, "1.234,56" -> 1234.56, "$ 62.000" -> 62000,
// "2,5" -> 2.5, "1,300,000.50" -> 1300000.5.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.NewReplacer("$", "", "COP", "", " ", "", " ", "").Replace(strings.TrimSpace(s))
	if clean == "" {
		return decimal.Zero, errEmptyAmount
	}

	lastDot := strings.LastIndex(clean, ".")
	lastComma := strings.LastIndex(clean, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		// Whichever separator comes last is the decimal one.
		if lastComma > lastDot {
			clean = strings.ReplaceAll(clean, ".", "")
			clean = strings.ReplaceAll(clean, ",", ".")
		} else {
			clean = strings.ReplaceAll(clean, ",", "")
		}
	case lastDot >= 0:
		if dotGroups.MatchString(clean) {
			clean = strings.ReplaceAll(clean, ".", "")
		}
	case lastComma >= 0:
		if commaGroups.MatchString(clean) {
			clean = strings.ReplaceAll(clean, ",", "")
		} else {
			clean = strings.ReplaceAll(clean, ",", ".")
		}
	}

	return decimal.NewFromString(clean)
}
