package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/MrJamesThe3rd/nomina/internal/encoding"
	"github.com/MrJamesThe3rd/nomina/internal/fold"
	"github.com/MrJamesThe3rd/nomina/internal/novelty"
	"github.com/MrJamesThe3rd/nomina/internal/period"
)

var ErrUnknownLayout = errors.New("no matching spreadsheet layout found")

// Warning reports a cell that could not be used as typed. The row is still
// imported unless the warning says otherwise.
type Warning struct {
	Row     int    `json:"row"`
	Column  string `json:"column"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("fila %d, %s %q: %s", w.Row, w.Column, w.Value, w.Message)
}

// NoveltyRow is a novelty as read from a spreadsheet, before the employee is resolved.
type NoveltyRow struct {
	Row         int
	Cedula      string
	Type        novelty.Type
	Date        time.Time
	Quantity    novelty.Quantity
	Description string
	Recurring   bool
}

// AdvanceRow is an advance as read from a spreadsheet, before the employee is resolved.
type AdvanceRow struct {
	Row         int
	Cedula      string
	Amount      decimal.Decimal
	Date        time.Time
	Month       period.Month
	Description string
}

// ParseNovelties reads a novelties spreadsheet. Rows that cannot be turned
// into a novelty are skipped with a warning; malformed numbers become zero.
func ParseNovelties(r io.Reader) ([]NoveltyRow, []Warning, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, nil, err
	}

	profile, cols, headerIdx := detectProfile(rows, LayoutNovelties)
	if profile == nil {
		return nil, nil, fmt.Errorf("%w: expected columns Cédula, Tipo, Fecha and Valor", ErrUnknownLayout)
	}

	var (
		out      []NoveltyRow
		warnings []Warning
	)

	for _, row := range rows[headerIdx+1:] {
		if blank(row.fields) {
			continue
		}

		c := cursor{row: row.fields, cols: cols, rowNum: row.line}

		cedula := c.value(profile.CedulaCol)
		if cedula == "" {
			warnings = append(warnings, c.warn(profile.CedulaCol, "cédula vacía, fila omitida"))
			continue
		}

		typ, ok := novelty.ParseType(c.value(profile.TypeCol))
		if !ok {
			warnings = append(warnings, c.warn(profile.TypeCol, "tipo de novedad desconocido, fila omitida"))
			continue
		}

		date, ok := parseDate(c.value(profile.DateCol))
		if !ok {
			warnings = append(warnings, c.warn(profile.DateCol, "fecha inválida, fila omitida"))
			continue
		}

		out = append(out, NoveltyRow{
			Row:         row.line,
			Cedula:      cedula,
			Type:        typ,
			Date:        date,
			Quantity:    typ.Quantity(c.number(quantityCol(profile, typ), &warnings)),
			Description: c.value(profile.DescCol),
			Recurring:   parseBool(c.value(profile.RecurringCol)),
		})
	}

	return out, warnings, nil
}

// ParseAdvances reads an advances spreadsheet. When the month column is
// missing or empty, the advance is recovered in the month of its date.
func ParseAdvances(r io.Reader) ([]AdvanceRow, []Warning, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, nil, err
	}

	profile, cols, headerIdx := detectProfile(rows, LayoutAdvances)
	if profile == nil {
		return nil, nil, fmt.Errorf("%w: expected columns Cédula, Monto and Fecha", ErrUnknownLayout)
	}

	var (
		out      []AdvanceRow
		warnings []Warning
	)

	for _, row := range rows[headerIdx+1:] {
		if blank(row.fields) {
			continue
		}

		c := cursor{row: row.fields, cols: cols, rowNum: row.line}

		cedula := c.value(profile.CedulaCol)
		if cedula == "" {
			warnings = append(warnings, c.warn(profile.CedulaCol, "cédula vacía, fila omitida"))
			continue
		}

		date, ok := parseDate(c.value(profile.DateCol))
		if !ok {
			warnings = append(warnings, c.warn(profile.DateCol, "fecha inválida, fila omitida"))
			continue
		}

		month := period.Of(date)

		if s := c.value(profile.MonthCol); s != "" {
			m, err := period.Parse(s)
			if err != nil {
				warnings = append(warnings, c.warn(profile.MonthCol, "mes inválido, se usa el mes de la fecha"))
			} else {
				month = m
			}
		}

		out = append(out, AdvanceRow{
			Row:         row.line,
			Cedula:      cedula,
			Amount:      c.number(profile.AmountCol, &warnings),
			Date:        date,
			Month:       month,
			Description: c.value(profile.DescCol),
		})
	}

	return out, warnings, nil
}

func readRows(r io.Reader) ([]record, error) {
	utf8r, charset, err := enc.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	slog.Debug("decoding spreadsheet", "charset", charset)

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectComma(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows []record

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, record{fields: fields, line: line})
	}

	return rows, nil
}

// record is a csv row with the 1-based file line it starts on. The csv
// reader skips empty lines, so the index of a row is not its line.
type record struct {
	fields []string
	line   int
}

// detectComma picks ';' or ',' by counting them on the first non-empty line.
func detectComma(data []byte) rune {
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		if bytes.Count(line, []byte(",")) > bytes.Count(line, []byte(";")) {
			return ','
		}

		return ';'
	}

	return ';'
}

// colIndex maps folded column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile of layout.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows []record, layout Layout) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row.fields {
			name := fold.Key(cell)
			if _, seen := cols[name]; name != "" && !seen {
				cols[name] = i
			}
		}

		for i := range profiles {
			if profiles[i].Layout == layout && matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[fold.Key(name)]; !ok {
			return false
		}
	}

	return true
}

func quantityCol(p *Profile, t novelty.Type) string {
	if p.QuantityMode == quantitySingle {
		return p.ValueCol
	}

	switch t.Unit() {
	case novelty.UnitDays:
		return p.DaysCol
	case novelty.UnitHours:
		return p.HoursCol
	default:
		return p.MoneyCol
	}
}

type cursor struct {
	row    []string
	cols   colIndex
	rowNum int
}

// value safely gets a trimmed cell value by column name. Unknown or
// optional columns read as empty.
func (c cursor) value(col string) string {
	if col == "" {
		return ""
	}

	idx, ok := c.cols[fold.Key(col)]
	if !ok || idx >= len(c.row) {
		return ""
	}

	return strings.TrimSpace(c.row[idx])
}

func (c cursor) warn(col, msg string) Warning {
	return Warning{Row: c.rowNum, Column: col, Value: c.value(col), Message: msg}
}

// number parses a numeric cell. Empty cells are zero; malformed ones are
// zero with a warning.
func (c cursor) number(col string, warnings *[]Warning) decimal.Decimal {
	s := c.value(col)
	if s == "" {
		return decimal.Zero
	}

	d, err := parseAmount(s)
	if err != nil {
		*warnings = append(*warnings, c.warn(col, "número inválido, se usa 0"))
		return decimal.Zero
	}

	return d
}

var dateLayouts = []string{"2006-01-02", "02/01/2006", "2/1/2006", "02-01-2006"}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func parseBool(s string) bool {
	switch fold.Key(s) {
	case "si", "s", "x", "true", "1", "yes":
		return true
	}

	return false
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
