package sheet

// Layout is the kind of records a spreadsheet holds.
type Layout string

const (
	LayoutNovelties Layout = "novedades"
	LayoutAdvances  Layout = "adelantos"
)

// quantityMode determines where a novelty's quantity is read from.
type quantityMode int

const (
	// quantitySingle means one "Valor" column whose unit follows the novelty type.
	quantitySingle quantityMode = iota
	// quantitySplit means separate day, hour and money columns, as exported
	// by the older payroll spreadsheets.
	quantitySplit
)

// Profile describes the column layout of a known spreadsheet.
// Column names are matched ignoring case, accents and surrounding spaces.
type Profile struct {
	Name   string
	Layout Layout

	CedulaCol string
	DateCol   string
	DescCol   string // optional

	// Novelties.
	TypeCol      string
	QuantityMode quantityMode
	ValueCol     string // used when QuantityMode == quantitySingle
	DaysCol      string // used when QuantityMode == quantitySplit
	HoursCol     string // used when QuantityMode == quantitySplit
	MoneyCol     string // used when QuantityMode == quantitySplit
	RecurringCol string // optional

	// Advances.
	AmountCol string
	MonthCol  string // optional
}

// requiredCols returns the column names that must be present for this profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.CedulaCol, p.DateCol}

	switch p.Layout {
	case LayoutNovelties:
		cols = append(cols, p.TypeCol)

		switch p.QuantityMode {
		case quantitySingle:
			cols = append(cols, p.ValueCol)
		case quantitySplit:
			cols = append(cols, p.DaysCol, p.HoursCol, p.MoneyCol)
		}
	case LayoutAdvances:
		cols = append(cols, p.AmountCol)
	}

	return cols
}

// profiles is the ordered list of layouts tried during auto-detection.
// More specific profiles come first.
var profiles = []Profile{
	{
		Name:         "novedades-detalle",
		Layout:       LayoutNovelties,
		CedulaCol:    "Cédula",
		DateCol:      "Fecha",
		DescCol:      "Descripción",
		TypeCol:      "Tipo",
		QuantityMode: quantitySplit,
		DaysCol:      "Días",
		HoursCol:     "Horas",
		MoneyCol:     "Monto",
		RecurringCol: "Recurrente",
	},
	{
		Name:         "novedades",
		Layout:       LayoutNovelties,
		CedulaCol:    "Cédula",
		DateCol:      "Fecha",
		DescCol:      "Descripción",
		TypeCol:      "Tipo",
		QuantityMode: quantitySingle,
		ValueCol:     "Valor",
		RecurringCol: "Recurrente",
	},
	{
		Name:      "adelantos",
		Layout:    LayoutAdvances,
		CedulaCol: "Cédula",
		DateCol:   "Fecha",
		DescCol:   "Descripción",
		AmountCol: "Monto",
		MonthCol:  "Mes",
	},
}
