package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/MrJamesThe3rd/nomina/internal/novelty"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// Money renders an amount in Colombian pesos, e.g. $1.213.333,33.
// Whole amounts are printed without decimals.
func Money(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	f := d.Round(2).InexactFloat64()

	return sign + "$" + printer.Sprint(number.Decimal(f, number.MinFractionDigits(0), number.MaxFractionDigits(2)))
}

// Quantity renders a novelty quantity with its unit.
func Quantity(n *novelty.Novelty) string {
	v := n.Quantity.Value()

	switch n.Quantity.Unit() {
	case novelty.UnitDays:
		return plural(v, "día", "días")
	case novelty.UnitHours:
		return plural(v, "hora", "horas")
	case novelty.UnitMoney:
		return Money(v)
	default:
		return "-"
	}
}

func plural(v decimal.Decimal, one, many string) string {
	if v.Equal(decimal.NewFromInt(1)) {
		return v.String() + " " + one
	}

	return v.String() + " " + many
}
