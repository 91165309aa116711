package period

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const layout = "2006-01"

var ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Month is a calendar month used as the unit of a payroll run.
// The zero value is not a valid month.
type Month struct {
	Year  int
	Month time.Month
}

func New(year int, month time.Month) Month {
	return Month{Year: year, Month: month}
}

// Of returns the month containing t.
func Of(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func Current() Month {
	return Of(time.Now())
}

// Parse reads a month in YYYY-MM form.
func Parse(s string) (Month, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}

	return Of(t), nil
}

func MustParse(s string) Month {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return m
}

func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Label renders the month in Spanish, e.g. "Abril 2024".
func (m Month) Label() string {
	if m.Month < time.January || m.Month > time.December {
		return m.String()
	}

	return fmt.Sprintf("%s %d", monthNames[m.Month-1], m.Year)
}

// FirstDay returns midnight UTC of the first day of the month.
func (m Month) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight UTC of the last day of the month.
func (m Month) LastDay() time.Time {
	return m.FirstDay().AddDate(0, 1, -1)
}

// Days returns the number of calendar days in the month, leap years included.
func (m Month) Days() int {
	return m.LastDay().Day()
}

// Contains reports whether t falls on a calendar day inside the month.
// Only the date part of t in its own location is considered.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

func (m Month) Next() Month {
	return Of(m.FirstDay().AddDate(0, 1, 0))
}

func (m Month) Prev() Month {
	return Of(m.FirstDay().AddDate(0, -1, 0))
}

// Compare returns -1, 0 or +1 depending on whether m is before, equal to or after o.
func (m Month) Compare(o Month) int {
	switch {
	case m.Year < o.Year:
		return -1
	case m.Year > o.Year:
		return 1
	case m.Month < o.Month:
		return -1
	case m.Month > o.Month:
		return 1
	}

	return 0
}

func (m Month) Before(o Month) bool {
	return m.Compare(o) < 0
}

func (m Month) After(o Month) bool {
	return m.Compare(o) > 0
}

func (m Month) MarshalText() ([]byte, error) {
	if m.IsZero() {
		return []byte{}, nil
	}

	return []byte(m.String()), nil
}

func (m *Month) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*m = Month{}
		return nil
	}

	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

// Value stores the month as its YYYY-MM text. The zero month is stored as NULL.
func (m Month) Value() (driver.Value, error) {
	if m.IsZero() {
		return nil, nil
	}

	return m.String(), nil
}

func (m *Month) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = Month{}
		return nil
	case string:
		return m.UnmarshalText([]byte(v))
	case []byte:
		return m.UnmarshalText(v)
	case time.Time:
		*m = Of(v)
		return nil
	}

	return fmt.Errorf("scanning month: unsupported type %T", src)
}
