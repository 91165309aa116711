package novelty

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/fold"
	"github.com/MrJamesThe3rd/nomina/internal/settings"
)

// Type is the closed set of novelty categories.
type Type string

const (
	TypeAbsence       Type = "ABSENCE"
	TypeLate          Type = "LATE"
	TypeEarlyLeave    Type = "EARLY_LEAVE"
	TypeMedicalLeave  Type = "MEDICAL_LEAVE"
	TypeVacation      Type = "VACATION"
	TypeStudyLicense  Type = "STUDY_LICENSE"
	TypeFixedComp     Type = "FIXED_COMPENSATION"
	TypeSalesBonus    Type = "SALES_BONUS"
	TypeFixedOvertime Type = "FIXED_OVERTIME"
	TypeOvertime      Type = "UNEXPECTED_OVERTIME"
	TypeNightShift    Type = "NIGHT_SURCHARGE"
	TypeSundayWork    Type = "SUNDAY_WORK"
	TypeGasAllowance  Type = "GAS_ALLOWANCE"

	TypePlanCorporativo   Type = "PLAN_CORPORATIVO"
	TypeRecordar          Type = "RECORDAR"
	TypeInventariosCruces Type = "INVENTARIOS_CRUCES"
	TypeMultas            Type = "MULTAS"
	TypeFondoEmpleados    Type = "FONDO_EMPLEADOS"
	TypeCarteraEmpleados  Type = "CARTERA_EMPLEADOS"
)

// Unit is what a novelty's quantity is measured in.
type Unit string

const (
	UnitDays  Unit = "days"
	UnitHours Unit = "hours"
	UnitMoney Unit = "money"
)

// Kind is the effect a novelty has on pay.
type Kind string

const (
	// KindDiscount reduces worked days.
	KindDiscount Kind = "discount"
	// KindAddition adds to pay.
	KindAddition Kind = "addition"
	// KindDeduction is subtracted from pay as its own line item.
	KindDeduction Kind = "deduction"
)

type typeInfo struct {
	typ   Type
	label string
	unit  Unit
	kind  Kind
	rate  func(r settings.Rates) decimal.Decimal
}

func ordinaryHour(r settings.Rates) decimal.Decimal   { return r.OrdinaryHour }
func overtimeHour(r settings.Rates) decimal.Decimal   { return r.OvertimeHour }
func nightSurcharge(r settings.Rates) decimal.Decimal { return r.NightSurcharge }
func holidayDay(r settings.Rates) decimal.Decimal     { return r.HolidayDay }

// catalog order is the order used for itemized lines in reports.
var catalog = []typeInfo{
	{typ: TypeAbsence, label: "Ausencia", unit: UnitDays, kind: KindDiscount},
	{typ: TypeLate, label: "Llegada tarde", unit: UnitDays, kind: KindDiscount},
	{typ: TypeEarlyLeave, label: "Salida temprana", unit: UnitDays, kind: KindDiscount},
	{typ: TypeMedicalLeave, label: "Incapacidad médica", unit: UnitDays, kind: KindDiscount},
	{typ: TypeVacation, label: "Vacaciones", unit: UnitDays, kind: KindDiscount},
	{typ: TypeStudyLicense, label: "Licencia de estudio", unit: UnitDays, kind: KindDiscount},
	{typ: TypeFixedComp, label: "Compensatorios fijos", unit: UnitMoney, kind: KindAddition},
	{typ: TypeSalesBonus, label: "Bonificación en venta", unit: UnitMoney, kind: KindAddition},
	{typ: TypeFixedOvertime, label: "Horas extra fijas", unit: UnitHours, kind: KindAddition, rate: ordinaryHour},
	{typ: TypeOvertime, label: "Horas extra NE", unit: UnitHours, kind: KindAddition, rate: overtimeHour},
	{typ: TypeNightShift, label: "Recargos nocturnos", unit: UnitHours, kind: KindAddition, rate: nightSurcharge},
	{typ: TypeSundayWork, label: "Festivos", unit: UnitDays, kind: KindAddition, rate: holidayDay},
	{typ: TypeGasAllowance, label: "Auxilio de gasolina", unit: UnitMoney, kind: KindAddition},
	{typ: TypePlanCorporativo, label: "Plan corporativo", unit: UnitMoney, kind: KindDeduction},
	{typ: TypeRecordar, label: "Recordar", unit: UnitMoney, kind: KindDeduction},
	{typ: TypeInventariosCruces, label: "Inventarios y cruces", unit: UnitMoney, kind: KindDeduction},
	{typ: TypeMultas, label: "Multas", unit: UnitMoney, kind: KindDeduction},
	{typ: TypeFondoEmpleados, label: "Fondo de empleados", unit: UnitMoney, kind: KindDeduction},
	{typ: TypeCarteraEmpleados, label: "Cartera empleados", unit: UnitMoney, kind: KindDeduction},
}

var byType = func() map[Type]*typeInfo {
	m := make(map[Type]*typeInfo, len(catalog))
	for i := range catalog {
		m[catalog[i].typ] = &catalog[i]
	}

	return m
}()

// Types lists every known type in catalog order.
func Types() []Type {
	types := make([]Type, len(catalog))
	for i, info := range catalog {
		types[i] = info.typ
	}

	return types
}

// TypesOfKind lists the known types with the given kind, in catalog order.
func TypesOfKind(k Kind) []Type {
	var types []Type

	for _, info := range catalog {
		if info.kind == k {
			types = append(types, info.typ)
		}
	}

	return types
}

func (t Type) Valid() bool {
	_, ok := byType[t]
	return ok
}

// Label is the Spanish display name. Unknown types render as their code.
func (t Type) Label() string {
	if info, ok := byType[t]; ok {
		return info.label
	}

	return string(t)
}

func (t Type) Unit() Unit {
	if info, ok := byType[t]; ok {
		return info.unit
	}

	return ""
}

func (t Type) Kind() Kind {
	if info, ok := byType[t]; ok {
		return info.kind
	}

	return ""
}

// Rate returns the configured price of one hour or day of this type.
// Money and discount types have no rate and return zero.
func (t Type) Rate(r settings.Rates) decimal.Decimal {
	if info, ok := byType[t]; ok && info.rate != nil {
		return info.rate(r)
	}

	return decimal.Zero
}

// Quantity builds a quantity in this type's unit.
func (t Type) Quantity(v decimal.Decimal) Quantity {
	return Quantity{unit: t.Unit(), value: v}
}

// ParseType matches a type by code or Spanish label, ignoring case, accents,
// and the separators used in spreadsheets ("horas extra fijas", "Horas_Extra_Fijas").
func ParseType(s string) (Type, bool) {
	key := fold.Key(s)
	if key == "" {
		return "", false
	}

	for _, info := range catalog {
		if fold.Key(string(info.typ)) == key || fold.Key(info.label) == key {
			return info.typ, true
		}
	}

	return "", false
}
