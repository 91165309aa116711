package novelty_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/nomina/internal/novelty"
	"github.com/MrJamesThe3rd/nomina/internal/settings"
)

func TestNovelty_Validate(t *testing.T) {
	empID := uuid.New()
	date := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name    string
		n       novelty.Novelty
		wantErr error
	}

	tests := []testCase{
		{
			name: "Absence In Days",
			n:    novelty.Novelty{EmployeeID: empID, Type: novelty.TypeAbsence, Date: date, Quantity: novelty.DaysOf(decimal.NewFromInt(2))},
		},
		{
			name: "Overtime In Hours",
			n:    novelty.Novelty{EmployeeID: empID, Type: novelty.TypeFixedOvertime, Date: date, Quantity: novelty.HoursOf(decimal.NewFromInt(10))},
		},
		{
			name: "Fine In Money",
			n:    novelty.Novelty{EmployeeID: empID, Type: novelty.TypeMultas, Date: date, Quantity: novelty.MoneyOf(decimal.NewFromInt(50000))},
		},
		{
			name:    "Absence In Money",
			n:       novelty.Novelty{EmployeeID: empID, Type: novelty.TypeAbsence, Date: date, Quantity: novelty.MoneyOf(decimal.NewFromInt(2))},
			wantErr: novelty.ErrUnitMismatch,
		},
		{
			name:    "Sunday Work In Hours",
			n:       novelty.Novelty{EmployeeID: empID, Type: novelty.TypeSundayWork, Date: date, Quantity: novelty.HoursOf(decimal.NewFromInt(8))},
			wantErr: novelty.ErrUnitMismatch,
		},
		{
			name:    "Missing Quantity",
			n:       novelty.Novelty{EmployeeID: empID, Type: novelty.TypeSalesBonus, Date: date},
			wantErr: novelty.ErrUnitMismatch,
		},
		{
			name:    "Negative",
			n:       novelty.Novelty{EmployeeID: empID, Type: novelty.TypeVacation, Date: date, Quantity: novelty.DaysOf(decimal.NewFromInt(-1))},
			wantErr: novelty.ErrNegativeQuantity,
		},
		{
			name:    "Unknown Type",
			n:       novelty.Novelty{EmployeeID: empID, Type: "BONUS", Date: date, Quantity: novelty.MoneyOf(decimal.NewFromInt(1))},
			wantErr: novelty.ErrUnknownType,
		},
		{
			name:    "No Employee",
			n:       novelty.Novelty{Type: novelty.TypeAbsence, Date: date, Quantity: novelty.DaysOf(decimal.NewFromInt(1))},
			wantErr: novelty.ErrMissingEmployee,
		},
		{
			name:    "No Date",
			n:       novelty.Novelty{EmployeeID: empID, Type: novelty.TypeAbsence, Quantity: novelty.DaysOf(decimal.NewFromInt(1))},
			wantErr: novelty.ErrMissingDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.n.Validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestNovelty_Accessors(t *testing.T) {
	absence := novelty.Novelty{Type: novelty.TypeAbsence, Quantity: novelty.DaysOf(decimal.NewFromInt(2))}
	assert.True(t, absence.DiscountDays().Equal(decimal.NewFromInt(2)))
	assert.True(t, absence.Days().IsZero())
	assert.True(t, absence.Hours().IsZero())
	assert.True(t, absence.BonusAmount().IsZero())

	sunday := novelty.Novelty{Type: novelty.TypeSundayWork, Quantity: novelty.DaysOf(decimal.NewFromInt(3))}
	assert.True(t, sunday.DiscountDays().IsZero())
	assert.True(t, sunday.Days().Equal(decimal.NewFromInt(3)))

	overtime := novelty.Novelty{Type: novelty.TypeOvertime, Quantity: novelty.HoursOf(decimal.NewFromInt(4))}
	assert.True(t, overtime.Hours().Equal(decimal.NewFromInt(4)))
	assert.True(t, overtime.BonusAmount().IsZero())

	// A quantity in the wrong unit never leaks through the accessors.
	broken := novelty.Novelty{Type: novelty.TypeAbsence, Quantity: novelty.HoursOf(decimal.NewFromInt(8))}
	assert.True(t, broken.DiscountDays().IsZero())
}

func TestNovelty_MoneyValue(t *testing.T) {
	rates := settings.Defaults()
	rates.OrdinaryHour = decimal.NewFromInt(6200)

	tests := []struct {
		name string
		n    novelty.Novelty
		want decimal.Decimal
	}{
		{
			name: "Fixed Overtime",
			n:    novelty.Novelty{Type: novelty.TypeFixedOvertime, Quantity: novelty.HoursOf(decimal.NewFromInt(10))},
			want: decimal.NewFromInt(62000),
		},
		{
			name: "Unexpected Overtime",
			n:    novelty.Novelty{Type: novelty.TypeOvertime, Quantity: novelty.HoursOf(decimal.NewFromInt(2))},
			want: decimal.NewFromInt(13542),
		},
		{
			name: "Night Surcharge",
			n:    novelty.Novelty{Type: novelty.TypeNightShift, Quantity: novelty.HoursOf(decimal.NewFromInt(5))},
			want: decimal.NewFromInt(9480),
		},
		{
			name: "Sunday Work",
			n:    novelty.Novelty{Type: novelty.TypeSundayWork, Quantity: novelty.DaysOf(decimal.NewFromInt(2))},
			want: decimal.NewFromInt(151666),
		},
		{
			name: "Gas Allowance",
			n:    novelty.Novelty{Type: novelty.TypeGasAllowance, Quantity: novelty.MoneyOf(decimal.NewFromInt(80000))},
			want: decimal.NewFromInt(80000),
		},
		{
			name: "Fund Withholding",
			n:    novelty.Novelty{Type: novelty.TypeFondoEmpleados, Quantity: novelty.MoneyOf(decimal.NewFromInt(30000))},
			want: decimal.NewFromInt(30000),
		},
		{
			name: "Absence",
			n:    novelty.Novelty{Type: novelty.TypeAbsence, Quantity: novelty.DaysOf(decimal.NewFromInt(2))},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.n.MoneyValue(rates)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input  string
		want   novelty.Type
		wantOK bool
	}{
		{input: "ABSENCE", want: novelty.TypeAbsence, wantOK: true},
		{input: "absence", want: novelty.TypeAbsence, wantOK: true},
		{input: "Ausencia", want: novelty.TypeAbsence, wantOK: true},
		{input: "  incapacidad medica ", want: novelty.TypeMedicalLeave, wantOK: true},
		{input: "Incapacidad Médica", want: novelty.TypeMedicalLeave, wantOK: true},
		{input: "BONIFICACIÓN EN VENTA", want: novelty.TypeSalesBonus, wantOK: true},
		{input: "horas extra fijas", want: novelty.TypeFixedOvertime, wantOK: true},
		{input: "unexpected-overtime", want: novelty.TypeOvertime, wantOK: true},
		{input: "Inventarios y cruces", want: novelty.TypeInventariosCruces, wantOK: true},
		{input: "bono", wantOK: false},
		{input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := novelty.ParseType(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypeCatalog(t *testing.T) {
	assert.Len(t, novelty.Types(), 19)
	assert.Equal(t, []novelty.Type{
		novelty.TypeAbsence, novelty.TypeLate, novelty.TypeEarlyLeave,
		novelty.TypeMedicalLeave, novelty.TypeVacation, novelty.TypeStudyLicense,
	}, novelty.TypesOfKind(novelty.KindDiscount))
	assert.Len(t, novelty.TypesOfKind(novelty.KindDeduction), 6)

	for _, typ := range novelty.Types() {
		assert.NotEmpty(t, typ.Label(), typ)
		assert.NotEmpty(t, typ.Unit(), typ)
		assert.NotEmpty(t, typ.Kind(), typ)
	}

	assert.Equal(t, "Festivos", novelty.TypeSundayWork.Label())
	assert.Equal(t, novelty.UnitHours, novelty.TypeNightShift.Unit())
	assert.False(t, novelty.Type("OTHER").Valid())
}
