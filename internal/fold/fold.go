// Package fold reduces free text typed by people (spreadsheet headers, novelty
// labels, yes/no cells) to a comparison key.
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key lowercases s, strips accents and collapses runs of spaces, '_' and
// '-' into a single space, so "CÉDULA ", "cedula" and "Horas_Extra-NE"
// compare as "cedula" and "horas extra ne".
func Key(s string) string {
	t := transform.Chain(norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
		runes.Map(unicode.ToLower))

	result, _, err := transform.String(t, s)
	if err != nil {
		result = strings.ToLower(s)
	}

	return strings.Join(strings.FieldsFunc(result, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	}), " ")
}
